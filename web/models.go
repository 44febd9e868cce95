/* models.go
 * Contains the configuration and server structs for the web package.
 */

package web

import (
	"matchday-bot/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the read-only HTTP view over the match collection. All
// mutations go through the bot; this surface only renders the mirror.
type Server struct {
	api *api.API
}
