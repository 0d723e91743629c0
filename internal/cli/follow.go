package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/questions/pkg/types"
)

func newFollowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "follow",
		Short: "Look up question follows",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a follow by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID[types.FollowID](args[0], "follow")
			if err != nil {
				return err
			}
			return a.withStore(func(s types.Store) error {
				f, err := s.QuestionFollows().FindByID(id)
				if err != nil {
					return err
				}
				if f == nil {
					return notFound("follow", id)
				}
				return printOne(a, cmd.OutOrStdout(), f, a.printFollows)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every follow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s types.Store) error {
				follows, err := s.QuestionFollows().All()
				if err != nil {
					return err
				}
				return a.printFollows(cmd.OutOrStdout(), follows)
			})
		},
	})

	return cmd
}
