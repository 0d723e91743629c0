package types

// QuestionFollow links a follower to a question.
type QuestionFollow struct {
	ID         FollowID   `json:"id"`
	QuestionID QuestionID `json:"question_id"`
	Follower   UserID     `json:"follower"`
}

// QuestionFollowFromRow copies the question_follows columns of row.
func QuestionFollowFromRow(row Row) (QuestionFollow, error) {
	r := rowReader{row: row}
	f := QuestionFollow{
		ID:         FollowID(r.intCol("id")),
		QuestionID: QuestionID(r.intCol("question_id")),
		Follower:   UserID(r.intCol("follower")),
	}
	if r.err != nil {
		return QuestionFollow{}, r.err
	}
	return f, nil
}
