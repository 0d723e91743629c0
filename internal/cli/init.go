package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/questions/internal/sqlite"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the data directory and database tables",
		Long: `Init creates the data directory and, inside it, the database file with the
users, questions, replies, question_follows, and question_likes tables.
Existing tables and rows are left untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.storeConfig(true)
			if err != nil {
				return sysError(err)
			}

			backend := sqlite.NewBackend(sqlite.WithLogger(a.log))
			if err := backend.Attach(cfg); err != nil {
				return sysError(fmt.Errorf("initialize storage: %w", err))
			}
			if err := backend.Detach(); err != nil {
				return sysError(fmt.Errorf("finalize storage: %w", err))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", filepath.Join(cfg.DataDir, cfg.DatabaseFile()))
			return nil
		},
	}
}
