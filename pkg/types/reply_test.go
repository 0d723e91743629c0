package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyAccessorsReturnIDs(t *testing.T) {
	parent := ReplyID(1)
	r := &Reply{ID: 2, QuestionID: 9, Parent: &parent, UserID: 4, Body: "child"}

	assert.Equal(t, UserID(4), r.Author())
	assert.Equal(t, QuestionID(9), r.Question())

	id, ok := r.ParentReply()
	assert.True(t, ok)
	assert.Equal(t, ReplyID(1), id)
}

func TestReplyParentReplyTopLevel(t *testing.T) {
	r := &Reply{ID: 1, QuestionID: 9, UserID: 4}

	id, ok := r.ParentReply()
	assert.False(t, ok)
	assert.Zero(t, id)
}

func TestQuestionAuthorID(t *testing.T) {
	q := &Question{ID: 1, Author: 12}
	assert.Equal(t, UserID(12), q.AuthorID())
}
