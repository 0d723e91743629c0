package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/questions/pkg/types"
)

func newLikeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "like",
		Short: "Look up question likes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a like by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID[types.LikeID](args[0], "like")
			if err != nil {
				return err
			}
			return a.withStore(func(s types.Store) error {
				l, err := s.QuestionLikes().FindByID(id)
				if err != nil {
					return err
				}
				if l == nil {
					return notFound("like", id)
				}
				return printOne(a, cmd.OutOrStdout(), l, a.printLikes)
			})
		},
	})

	return cmd
}
