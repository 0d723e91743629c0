package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/questions/pkg/types"
)

func TestQuestionsFindByID(t *testing.T) {
	b := setupSeededBackend(t)

	for _, id := range []types.QuestionID{1, 2, 3, 4} {
		got, err := b.Questions().FindByID(id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID)
	}

	got, err := b.Questions().FindByID(404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestQuestionsFindByIDCopiesColumns(t *testing.T) {
	b := setupSeededBackend(t)

	got, err := b.Questions().FindByID(4)
	require.NoError(t, err)
	assert.Equal(t, &types.Question{ID: 4, Title: "Machines", Body: "Can machines think?", Author: 3}, got)
	assert.Equal(t, types.UserID(3), got.AuthorID())
}

func TestQuestionsFindByAuthorID(t *testing.T) {
	b := setupSeededBackend(t)

	tests := []struct {
		name   string
		author types.UserID
		want   []types.QuestionID
	}{
		{name: "author with two questions", author: 1, want: []types.QuestionID{1, 3}},
		{name: "author with one question", author: 3, want: []types.QuestionID{4}},
		{name: "author with none", author: 4, want: []types.QuestionID{}},
		{name: "unknown author", author: 99, want: []types.QuestionID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Questions().FindByAuthorID(tt.author)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.ElementsMatch(t, tt.want, questionIDs(got))
			for _, q := range got {
				assert.Equal(t, tt.author, q.Author)
			}
		})
	}
}

func TestQuestionsAll(t *testing.T) {
	b := setupSeededBackend(t)

	got, err := b.Questions().All()
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.QuestionID{1, 2, 3, 4}, questionIDs(got))
}

func TestQuestionRelationshipsThroughBackend(t *testing.T) {
	b := setupSeededBackend(t)

	q, err := b.Questions().FindByID(1)
	require.NoError(t, err)
	require.NotNil(t, q)

	replies, err := q.Replies(b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.ReplyID{1, 2, 3, 5}, replyIDs(replies))

	followers, err := q.Followers(b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.UserID{2, 3, 4}, userIDs(followers))
}
