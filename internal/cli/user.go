package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/questions/pkg/types"
)

func newUserCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Look up users and what they wrote or follow",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a user by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withUser(args[0], func(s types.Store, u *types.User) error {
				return printOne(a, cmd.OutOrStdout(), u, a.printUsers)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "find <first> <last>",
		Short: "Find a user by first and last name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s types.Store) error {
				u, err := s.Users().FindByName(args[0], args[1])
				if err != nil {
					return err
				}
				if u == nil {
					return notFound("user", args[0]+" "+args[1])
				}
				return printOne(a, cmd.OutOrStdout(), u, a.printUsers)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s types.Store) error {
				users, err := s.Users().All()
				if err != nil {
					return err
				}
				return a.printUsers(cmd.OutOrStdout(), users)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "questions <id>",
		Short: "List the questions a user asked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withUser(args[0], func(s types.Store, u *types.User) error {
				questions, err := u.AuthoredQuestions(s)
				if err != nil {
					return err
				}
				return a.printQuestions(cmd.OutOrStdout(), questions)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "replies <id>",
		Short: "List the replies a user wrote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withUser(args[0], func(s types.Store, u *types.User) error {
				replies, err := u.AuthoredReplies(s)
				if err != nil {
					return err
				}
				return a.printReplies(cmd.OutOrStdout(), replies)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "followed <id>",
		Short: "List the questions a user follows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withUser(args[0], func(s types.Store, u *types.User) error {
				questions, err := u.FollowedQuestions(s)
				if err != nil {
					return err
				}
				return a.printQuestions(cmd.OutOrStdout(), questions)
			})
		},
	})

	return cmd
}

// withUser resolves the user named by arg and runs fn with it.
func (a *app) withUser(arg string, fn func(types.Store, *types.User) error) error {
	id, err := parseID[types.UserID](arg, "user")
	if err != nil {
		return err
	}
	return a.withStore(func(s types.Store) error {
		u, err := s.Users().FindByID(id)
		if err != nil {
			return err
		}
		if u == nil {
			return notFound("user", id)
		}
		return fn(s, u)
	})
}
