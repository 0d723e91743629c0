// Package cli implements the questions command-line interface: a read-only
// browser over the finders of a questions database.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/questions/internal/paths"
	"github.com/mesh-intelligence/questions/internal/sqlite"
	"github.com/mesh-intelligence/questions/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app holds global flag values and state shared by all subcommands.
type app struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string

	// Loaded by PersistentPreRunE.
	settings settings
	log      zerolog.Logger
}

// NewRootCmd creates the top-level "questions" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "questions",
		Short: "Browse a questions database",
		Long: `Questions reads users, questions, replies, follows, and likes from a
SQLite database and prints them as tables or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: $(CWD)/.questions-db)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default: warn)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newUserCmd(a))
	root.AddCommand(newQuestionCmd(a))
	root.AddCommand(newReplyCmd(a))
	root.AddCommand(newFollowCmd(a))
	root.AddCommand(newLikeCmd(a))

	return root
}

// Execute runs the root command and exits with the code carried by the error.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// load reads config.yaml and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	s, err := loadSettings(configDir)
	if err != nil {
		return sysError(err)
	}
	if a.logLevel != "" {
		s.LogLevel = a.logLevel
	}
	a.settings = s

	log, err := newLogger(cmd.ErrOrStderr(), s.LogLevel)
	if err != nil {
		return userErrorf("%v", err)
	}
	a.log = log.With().Str("command", cmd.CommandPath()).Logger()
	return nil
}

// storeConfig returns the backend config for the resolved data directory.
func (a *app) storeConfig(createSchema bool) (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(a.dataDir, a.settings.DataDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}
	return types.Config{
		Backend:      a.settings.Backend,
		DataDir:      dataDir,
		DBFile:       a.settings.DBFile,
		CreateSchema: createSchema,
	}, nil
}

// withStore attaches a backend, runs fn against it, and detaches.
func (a *app) withStore(fn func(s types.Store) error) error {
	cfg, err := a.storeConfig(false)
	if err != nil {
		return sysError(err)
	}

	backend := sqlite.NewBackend(sqlite.WithLogger(a.log))
	if err := backend.Attach(cfg); err != nil {
		if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) {
			return userErrorf("attach store: %w", err)
		}
		return sysError(fmt.Errorf("attach store: %w", err))
	}
	defer a.detach(backend)

	if err := fn(backend); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return err
		}
		return sysError(err)
	}
	return nil
}

// detach closes a store after a command. The command's result is already
// decided, so a close failure is logged rather than returned.
func (a *app) detach(store interface{ Detach() error }) {
	if err := store.Detach(); err != nil {
		a.log.Warn().Err(err).Msg("detach store")
	}
}
