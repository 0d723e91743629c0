package types

// Reply is a row of the replies table. Parent is nil for a top-level reply.
type Reply struct {
	ID         ReplyID    `json:"id"`
	QuestionID QuestionID `json:"question_id"`
	Parent     *ReplyID   `json:"parent"`
	UserID     UserID     `json:"user_id"`
	Body       string     `json:"body"`
}

// ReplyFromRow copies the replies columns of row into a Reply.
func ReplyFromRow(row Row) (Reply, error) {
	r := rowReader{row: row}
	rep := Reply{
		ID:         ReplyID(r.intCol("id")),
		QuestionID: QuestionID(r.intCol("question_id")),
		UserID:     UserID(r.intCol("user_id")),
		Body:       r.textCol("body"),
	}
	if p := r.optIntCol("parent"); p != nil {
		parent := ReplyID(*p)
		rep.Parent = &parent
	}
	if r.err != nil {
		return Reply{}, r.err
	}
	return rep, nil
}

// The accessors below return identifiers only. Callers resolve the related
// record through the matching table if they need it.

// Author returns the id of the user who wrote the reply.
func (r *Reply) Author() UserID {
	return r.UserID
}

// Question returns the id of the question the reply belongs to.
func (r *Reply) Question() QuestionID {
	return r.QuestionID
}

// ParentReply returns the id of the reply being answered. ok is false for a
// top-level reply.
func (r *Reply) ParentReply() (id ReplyID, ok bool) {
	if r.Parent == nil {
		return 0, false
	}
	return *r.Parent, true
}

// Children returns the replies whose parent is r.
func (r *Reply) Children(s Store) ([]Reply, error) {
	return s.Replies().ChildReplies(r.ID)
}
