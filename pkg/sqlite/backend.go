// Package sqlite provides the public API for the SQLite questions backend.
// It exposes the factory while keeping the table accessors internal.
package sqlite

import (
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/questions/internal/sqlite"
	"github.com/mesh-intelligence/questions/pkg/types"
)

// Backend is an attachable store. Callers construct one, attach it, pass it
// wherever finders are needed, and detach it when done.
type Backend interface {
	types.Store
	Attach(config types.Config) error
	Detach() error
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to open the file.
//
// Example:
//
//	backend := sqlite.NewBackend(zerolog.Nop())
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".questions-db",
//	})
//	defer backend.Detach()
//	user, err := backend.Users().FindByID(1)
func NewBackend(log zerolog.Logger) Backend {
	return sqlite.NewBackend(sqlite.WithLogger(log))
}
