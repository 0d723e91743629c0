// Package sqlite implements the SQLite storage backend for the questions
// data-access layer. A Backend owns one database handle; table accessors
// issue one parameterized statement per finder and map each result row
// into a record type.
package sqlite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/questions/pkg/types"
)

// driverName is the database/sql name registered by modernc.org/sqlite.
const driverName = "sqlite"

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements types.Store on a single SQLite file.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sqlx.DB
	log      zerolog.Logger

	users     *usersTable
	questions *questionsTable
	replies   *repliesTable
	follows   *questionFollowsTable
	likes     *questionLikesTable
}

// Option configures a Backend.
type Option func(*Backend)

// WithLogger sets the logger used for lifecycle and query events.
func WithLogger(log zerolog.Logger) Option {
	return func(b *Backend) {
		b.log = log
	}
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to open the file.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(b)
	}
	b.users = &usersTable{backend: b}
	b.questions = &questionsTable{backend: b}
	b.replies = &repliesTable{backend: b}
	b.follows = &questionFollowsTable{backend: b}
	b.likes = &questionLikesTable{backend: b}
	return b
}

// Attach opens the database file named by config. With config.CreateSchema
// set, it creates DataDir and the file as needed and bootstraps the tables.
// Otherwise the file must already exist and is opened read-only.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	dbPath := filepath.Join(dataDir, config.DatabaseFile())

	dsn := dbPath
	if config.CreateSchema {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	} else {
		if _, err := os.Stat(dbPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", types.ErrStoreNotFound, dbPath)
			}
			return fmt.Errorf("checking %s: %w", dbPath, err)
		}
		dsn = "file:" + dbPath + "?mode=ro"
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}

	// One connection for the life of the backend; no pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("connecting to %s: %w", dbPath, err)
	}

	if config.CreateSchema {
		if err := createSchema(db); err != nil {
			db.Close()
			return err
		}
	}

	b.db = db
	b.config = config
	b.attached = true

	b.log.Info().
		Str("path", dbPath).
		Bool("create_schema", config.CreateSchema).
		Bool("read_only", !config.CreateSchema).
		Msg("store attached")
	return nil
}

// Detach closes the database handle. After Detach, all finders return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false

	b.log.Info().Msg("store detached")
	return nil
}

// Users returns the users table accessor.
func (b *Backend) Users() types.UserTable { return b.users }

// Questions returns the questions table accessor.
func (b *Backend) Questions() types.QuestionTable { return b.questions }

// Replies returns the replies table accessor.
func (b *Backend) Replies() types.ReplyTable { return b.replies }

// QuestionFollows returns the question_follows table accessor.
func (b *Backend) QuestionFollows() types.QuestionFollowTable { return b.follows }

// QuestionLikes returns the question_likes table accessor.
func (b *Backend) QuestionLikes() types.QuestionLikeTable { return b.likes }

// createSchema executes the bootstrap DDL.
func createSchema(db *sqlx.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}
	return nil
}
