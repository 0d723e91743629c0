package types

// User is a row of the users table.
type User struct {
	ID        UserID `json:"id"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
}

// UserFromRow copies the users columns of row into a User.
func UserFromRow(row Row) (User, error) {
	r := rowReader{row: row}
	u := User{
		ID:        UserID(r.intCol("id")),
		FirstName: r.textCol("fname"),
		LastName:  r.textCol("lname"),
	}
	if r.err != nil {
		return User{}, r.err
	}
	return u, nil
}

// AuthoredQuestions returns the questions whose author is u.
func (u *User) AuthoredQuestions(s Store) ([]Question, error) {
	return s.Questions().FindByAuthorID(u.ID)
}

// AuthoredReplies returns the replies written by u.
func (u *User) AuthoredReplies(s Store) ([]Reply, error) {
	return s.Replies().FindByUserID(u.ID)
}

// FollowedQuestions returns the questions u follows.
func (u *User) FollowedQuestions(s Store) ([]Question, error) {
	return s.QuestionFollows().FollowedQuestionsForUserID(u.ID)
}
