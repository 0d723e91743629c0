package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/questions/pkg/types"
)

// Compile-time interface check: questionFollowsTable must implement QuestionFollowTable.
var _ types.QuestionFollowTable = (*questionFollowsTable)(nil)

// questionFollowsTable reads question_follows and joins it to users and
// questions. Joins select only the target table's columns so the mapped id
// is the user's or question's, not the follow row's.
type questionFollowsTable struct {
	backend *Backend
}

func (ft *questionFollowsTable) FindByID(id types.FollowID) (*types.QuestionFollow, error) {
	return findOne(ft.backend, types.TableQuestionFollows, "find_by_id", types.QuestionFollowFromRow,
		"SELECT * FROM question_follows WHERE id = ?", int64(id))
}

func (ft *questionFollowsTable) All() ([]types.QuestionFollow, error) {
	return findMany(ft.backend, types.TableQuestionFollows, "all", types.QuestionFollowFromRow,
		"SELECT * FROM question_follows")
}

// FollowersForQuestionID returns the users following question, each once.
func (ft *questionFollowsTable) FollowersForQuestionID(question types.QuestionID) ([]types.User, error) {
	return findMany(ft.backend, types.TableQuestionFollows, "followers_for_question_id", types.UserFromRow, `
		SELECT DISTINCT users.*
		FROM question_follows
		JOIN users ON question_follows.follower = users.id
		WHERE question_follows.question_id = ?`,
		int64(question))
}

// FollowedQuestionsForUserID returns the questions user follows, each once.
func (ft *questionFollowsTable) FollowedQuestionsForUserID(user types.UserID) ([]types.Question, error) {
	return findMany(ft.backend, types.TableQuestionFollows, "followed_questions_for_user_id", types.QuestionFromRow, `
		SELECT DISTINCT questions.*
		FROM question_follows
		JOIN questions ON question_follows.question_id = questions.id
		WHERE question_follows.follower = ?`,
		int64(user))
}

// MostFollowedQuestions ranks questions by distinct follower count and
// loads the top n through the questions table. n <= 0 returns an empty
// slice without touching the store.
func (ft *questionFollowsTable) MostFollowedQuestions(n int) ([]types.Question, error) {
	if n <= 0 {
		return []types.Question{}, nil
	}

	ranked, err := ft.backend.queryRows(types.TableQuestionFollows, "most_followed_questions", `
		SELECT questions.id
		FROM question_follows
		JOIN questions ON question_follows.question_id = questions.id
		GROUP BY questions.id
		ORDER BY COUNT(DISTINCT question_follows.follower) DESC, questions.id ASC
		LIMIT ?`,
		n)
	if err != nil {
		return nil, err
	}

	result := make([]types.Question, 0, len(ranked))
	for _, row := range ranked {
		top, err := types.QuestionFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s most_followed_questions: %w", types.TableQuestionFollows, err)
		}
		q, err := ft.backend.questions.FindByID(top.ID)
		if err != nil {
			return nil, err
		}
		if q == nil {
			continue
		}
		result = append(result, *q)
	}
	return result, nil
}
