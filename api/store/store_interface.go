/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"

	"matchday-bot/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	SaveMatch(ctx context.Context, match shared.MatchRecord) error
	DeleteMatch(ctx context.Context, id string) error
	UpdateMatchScore(ctx context.Context, id string, score shared.Score) error
	FetchMatches(ctx context.Context) ([]shared.MatchRecord, error)
	WatchMatches(onChange func([]shared.MatchRecord)) (func(), error)
	Disconnect(ctx context.Context) error
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)
