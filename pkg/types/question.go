package types

// Question is a row of the questions table.
type Question struct {
	ID     QuestionID `json:"id"`
	Title  string     `json:"title"`
	Body   string     `json:"body"`
	Author UserID     `json:"author"`
}

// QuestionFromRow copies the questions columns of row into a Question.
func QuestionFromRow(row Row) (Question, error) {
	r := rowReader{row: row}
	q := Question{
		ID:     QuestionID(r.intCol("id")),
		Title:  r.textCol("title"),
		Body:   r.textCol("body"),
		Author: UserID(r.intCol("author")),
	}
	if r.err != nil {
		return Question{}, r.err
	}
	return q, nil
}

// AuthorID returns the id of the user who asked the question. The user is
// not loaded; resolve it with Users().FindByID when needed.
func (q *Question) AuthorID() UserID {
	return q.Author
}

// Replies returns every reply posted to q.
func (q *Question) Replies(s Store) ([]Reply, error) {
	return s.Replies().FindByQuestionID(q.ID)
}

// Followers returns the users following q.
func (q *Question) Followers(s Store) ([]User, error) {
	return s.QuestionFollows().FollowersForQuestionID(q.ID)
}
