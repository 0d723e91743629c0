package sqlite

import "github.com/mesh-intelligence/questions/pkg/types"

// Compile-time interface check: questionLikesTable must implement QuestionLikeTable.
var _ types.QuestionLikeTable = (*questionLikesTable)(nil)

type questionLikesTable struct {
	backend *Backend
}

func (lt *questionLikesTable) FindByID(id types.LikeID) (*types.QuestionLike, error) {
	return findOne(lt.backend, types.TableQuestionLikes, "find_by_id", types.QuestionLikeFromRow,
		"SELECT * FROM question_likes WHERE id = ?", int64(id))
}
