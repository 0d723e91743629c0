package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/questions/pkg/types"
)

func newReplyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reply",
		Short: "Look up replies and reply threads",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a reply by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReply(args[0], func(s types.Store, r *types.Reply) error {
				return printOne(a, cmd.OutOrStdout(), r, a.printReplies)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "by-user <user-id>",
		Short: "List the replies written by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := parseID[types.UserID](args[0], "user")
			if err != nil {
				return err
			}
			return a.withStore(func(s types.Store) error {
				replies, err := s.Replies().FindByUserID(user)
				if err != nil {
					return err
				}
				return a.printReplies(cmd.OutOrStdout(), replies)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "by-question <question-id>",
		Short: "List the replies to a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question, err := parseID[types.QuestionID](args[0], "question")
			if err != nil {
				return err
			}
			return a.withStore(func(s types.Store) error {
				replies, err := s.Replies().FindByQuestionID(question)
				if err != nil {
					return err
				}
				return a.printReplies(cmd.OutOrStdout(), replies)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "children <id>",
		Short: "List the direct answers to a reply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReply(args[0], func(s types.Store, r *types.Reply) error {
				children, err := r.Children(s)
				if err != nil {
					return err
				}
				return a.printReplies(cmd.OutOrStdout(), children)
			})
		},
	})

	return cmd
}

// withReply resolves the reply named by arg and runs fn with it.
func (a *app) withReply(arg string, fn func(types.Store, *types.Reply) error) error {
	id, err := parseID[types.ReplyID](arg, "reply")
	if err != nil {
		return err
	}
	return a.withStore(func(s types.Store) error {
		r, err := s.Replies().FindByID(id)
		if err != nil {
			return err
		}
		if r == nil {
			return notFound("reply", id)
		}
		return fn(s, r)
	})
}
