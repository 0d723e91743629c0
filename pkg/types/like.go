package types

// QuestionLike records that a user liked a question.
type QuestionLike struct {
	ID         LikeID     `json:"id"`
	UserID     UserID     `json:"user_id"`
	QuestionID QuestionID `json:"question_id"`
}

// QuestionLikeFromRow copies the question_likes columns of row.
func QuestionLikeFromRow(row Row) (QuestionLike, error) {
	r := rowReader{row: row}
	l := QuestionLike{
		ID:         LikeID(r.intCol("id")),
		UserID:     UserID(r.intCol("user_id")),
		QuestionID: QuestionID(r.intCol("question_id")),
	}
	if r.err != nil {
		return QuestionLike{}, r.err
	}
	return l, nil
}
