// Package dbmanager provides the PostgreSQL connection pool for the
// inventory service. Each request checks out a dedicated connection so
// session-level settings apply for the lifetime of the request.
package dbmanager

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog/log"
)

type Pool interface {
	// Conn returns a new connection to the database.
	Conn(ctx context.Context) (PooledConn, error)
	// Stats returns the number of connection requests and returns.
	Stats() (requests, returns uint64)
}

type PooledConn interface {
	// Conn returns the underlying *sql.Conn. Do not close this directly.
	// Use PooledConn.Close(ctx) to return the connection to the pool.
	Conn() *sql.Conn
	// Close returns the connection back to the pool.
	Close(ctx context.Context)
}

// NewPool creates a connection pool for the given database type. The
// connection is not concurrency safe and must be used in a single
// goroutine; the service uses one connection per request and does not
// spawn further goroutines against it.
func NewPool(ctx context.Context, dbtype string) Pool {
	switch dbtype {
	case "postgresql":
		db, err := NewPostgresqlPool()
		if err != nil || db == nil {
			log.Ctx(ctx).Error().Err(err).Msg("Failed to create PostgreSQL pool")
			return nil
		}
		return db
	}
	return nil
}
