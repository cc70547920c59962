package storage

import (
	"net/url"
	"strings"

	"github.com/stride-cli/stride/internal/storage/postgres"
	"github.com/stride-cli/stride/internal/storage/sqlite"
)

// NewSQLiteStore creates a SQLite-backed provider at the given file path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a PostgreSQL-backed provider from a connection
// string (URI or DSN form).
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgresConnString reports whether a config value selects the
// PostgreSQL backend.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Such strings are rejected at startup; the keyring or
// environment supplies the real credentials instead.
func HasEmbeddedCredentials(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.User != nil {
		if _, set := u.User.Password(); set {
			return true
		}
	}

	// DSN form: space-separated key=value pairs.
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") && kv[1] != "" {
			return true
		}
	}
	return false
}
