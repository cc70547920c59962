// Package migrations embeds the schema migration files for every supported
// database backend. The storage layer selects its backend's subdirectory
// with fs.Sub.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
