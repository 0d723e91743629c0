package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/questions/pkg/types"
)

func newQuestionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Look up questions, their replies, and followers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show a question by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withQuestion(args[0], func(s types.Store, q *types.Question) error {
				return printOne(a, cmd.OutOrStdout(), q, a.printQuestions)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List every question",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(s types.Store) error {
				questions, err := s.Questions().All()
				if err != nil {
					return err
				}
				return a.printQuestions(cmd.OutOrStdout(), questions)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "by-author <user-id>",
		Short: "List the questions asked by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			author, err := parseID[types.UserID](args[0], "user")
			if err != nil {
				return err
			}
			return a.withStore(func(s types.Store) error {
				questions, err := s.Questions().FindByAuthorID(author)
				if err != nil {
					return err
				}
				return a.printQuestions(cmd.OutOrStdout(), questions)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "replies <id>",
		Short: "List the replies to a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withQuestion(args[0], func(s types.Store, q *types.Question) error {
				replies, err := q.Replies(s)
				if err != nil {
					return err
				}
				return a.printReplies(cmd.OutOrStdout(), replies)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "followers <id>",
		Short: "List the users following a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withQuestion(args[0], func(s types.Store, q *types.Question) error {
				users, err := q.Followers(s)
				if err != nil {
					return err
				}
				return a.printUsers(cmd.OutOrStdout(), users)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "most-followed <n>",
		Short: "List the n questions with the most followers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return userErrorf("invalid count %q", args[0])
			}
			return a.withStore(func(s types.Store) error {
				questions, err := s.QuestionFollows().MostFollowedQuestions(n)
				if err != nil {
					return err
				}
				return a.printQuestions(cmd.OutOrStdout(), questions)
			})
		},
	})

	return cmd
}

// withQuestion resolves the question named by arg and runs fn with it.
func (a *app) withQuestion(arg string, fn func(types.Store, *types.Question) error) error {
	id, err := parseID[types.QuestionID](arg, "question")
	if err != nil {
		return err
	}
	return a.withStore(func(s types.Store) error {
		q, err := s.Questions().FindByID(id)
		if err != nil {
			return err
		}
		if q == nil {
			return notFound("question", id)
		}
		return fn(s, q)
	})
}
