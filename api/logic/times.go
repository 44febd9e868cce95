/* times.go
 * Match time validation. A match time is a bare "HH:MM" wall clock value
 * with no date attached.
 */

package logic

import "regexp"

var matchTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidMatchTime reports whether s is a well-formed 24h "HH:MM" value.
func ValidMatchTime(s string) bool {
	return matchTimePattern.MatchString(s)
}
