package sqlite

import "github.com/mesh-intelligence/questions/pkg/types"

// Compile-time interface check: questionsTable must implement QuestionTable.
var _ types.QuestionTable = (*questionsTable)(nil)

// questionsTable reads the questions table.
type questionsTable struct {
	backend *Backend
}

// FindByID returns the question with the given id, or nil if there is none.
func (qt *questionsTable) FindByID(id types.QuestionID) (*types.Question, error) {
	return findOne(qt.backend, types.TableQuestions, "find_by_id", types.QuestionFromRow,
		"SELECT * FROM questions WHERE id = ?", int64(id))
}

// FindByAuthorID returns the questions asked by author. An author with no
// questions yields an empty slice.
func (qt *questionsTable) FindByAuthorID(author types.UserID) ([]types.Question, error) {
	return findMany(qt.backend, types.TableQuestions, "find_by_author_id", types.QuestionFromRow,
		"SELECT * FROM questions WHERE author = ?", int64(author))
}

// All returns every question.
func (qt *questionsTable) All() ([]types.Question, error) {
	return findMany(qt.backend, types.TableQuestions, "all", types.QuestionFromRow,
		"SELECT * FROM questions")
}
