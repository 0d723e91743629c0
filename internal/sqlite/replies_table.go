package sqlite

import "github.com/mesh-intelligence/questions/pkg/types"

// Compile-time interface check: repliesTable must implement ReplyTable.
var _ types.ReplyTable = (*repliesTable)(nil)

// repliesTable reads the replies table, including the parent self-reference.
type repliesTable struct {
	backend *Backend
}

func (rt *repliesTable) FindByID(id types.ReplyID) (*types.Reply, error) {
	return findOne(rt.backend, types.TableReplies, "find_by_id", types.ReplyFromRow,
		"SELECT * FROM replies WHERE id = ?", int64(id))
}

func (rt *repliesTable) FindByUserID(user types.UserID) ([]types.Reply, error) {
	return findMany(rt.backend, types.TableReplies, "find_by_user_id", types.ReplyFromRow,
		"SELECT * FROM replies WHERE user_id = ?", int64(user))
}

func (rt *repliesTable) FindByQuestionID(question types.QuestionID) ([]types.Reply, error) {
	return findMany(rt.backend, types.TableReplies, "find_by_question_id", types.ReplyFromRow,
		"SELECT * FROM replies WHERE question_id = ?", int64(question))
}

// ChildReplies returns the direct answers to parent. Deeper descendants are
// reached by calling ChildReplies on each child.
func (rt *repliesTable) ChildReplies(parent types.ReplyID) ([]types.Reply, error) {
	return findMany(rt.backend, types.TableReplies, "child_replies", types.ReplyFromRow,
		"SELECT * FROM replies WHERE parent = ?", int64(parent))
}
