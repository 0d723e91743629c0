package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/questions/pkg/types"
)

func TestQuestionFollowsFindByID(t *testing.T) {
	b := setupSeededBackend(t)

	got, err := b.QuestionFollows().FindByID(12)
	require.NoError(t, err)
	assert.Equal(t, &types.QuestionFollow{ID: 12, QuestionID: 1, Follower: 3}, got)

	missing, err := b.QuestionFollows().FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQuestionFollowsAll(t *testing.T) {
	b := setupSeededBackend(t)

	got, err := b.QuestionFollows().All()
	require.NoError(t, err)
	assert.Len(t, got, 7)
}

func TestFollowersForQuestionID(t *testing.T) {
	b := setupSeededBackend(t)

	tests := []struct {
		name     string
		question types.QuestionID
		want     []types.UserID
	}{
		{name: "three followers", question: 1, want: []types.UserID{2, 3, 4}},
		{name: "two followers", question: 2, want: []types.UserID{1, 3}},
		{name: "duplicate follow rows yield one user", question: 3, want: []types.UserID{2}},
		{name: "no followers", question: 4, want: []types.UserID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.QuestionFollows().FollowersForQuestionID(tt.question)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.ElementsMatch(t, tt.want, userIDs(got))
		})
	}
}

func TestFollowersForQuestionIDMapsUserColumns(t *testing.T) {
	b := setupSeededBackend(t)

	got, err := b.QuestionFollows().FollowersForQuestionID(2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.User{
		{ID: 1, FirstName: "Ada", LastName: "Lovelace"},
		{ID: 3, FirstName: "Alan", LastName: "Turing"},
	}, got)
}

func TestFollowedQuestionsForUserID(t *testing.T) {
	b := setupSeededBackend(t)

	got, err := b.QuestionFollows().FollowedQuestionsForUserID(2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.QuestionID{1, 3}, questionIDs(got))
	for _, q := range got {
		assert.NotEmpty(t, q.Title, "question %d should carry its own columns", q.ID)
	}

	none, err := b.QuestionFollows().FollowedQuestionsForUserID(99)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMostFollowedQuestions(t *testing.T) {
	b := setupSeededBackend(t)

	tests := []struct {
		name string
		n    int
		want []types.QuestionID
	}{
		{name: "top one", n: 1, want: []types.QuestionID{1}},
		{name: "top two in order", n: 2, want: []types.QuestionID{1, 2}},
		{name: "distinct followers rank q3 last", n: 3, want: []types.QuestionID{1, 2, 3}},
		{name: "n larger than followed questions", n: 10, want: []types.QuestionID{1, 2, 3}},
		{name: "zero", n: 0, want: []types.QuestionID{}},
		{name: "negative", n: -1, want: []types.QuestionID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.QuestionFollows().MostFollowedQuestions(tt.n)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, questionIDs(got))
		})
	}
}

func TestMostFollowedQuestionsTieBreaksByID(t *testing.T) {
	b := setupBackend(t)
	for _, stmt := range []string{
		`INSERT INTO users (id, fname, lname) VALUES (1, 'A', 'A'), (2, 'B', 'B')`,
		`INSERT INTO questions (id, title, body, author) VALUES (7, 'x', 'x', 1), (3, 'y', 'y', 1), (5, 'z', 'z', 2)`,
		`INSERT INTO question_follows (id, question_id, follower) VALUES (1, 7, 1), (2, 3, 2), (3, 5, 1), (4, 5, 2)`,
	} {
		_, err := b.db.Exec(stmt)
		require.NoError(t, err)
	}

	got, err := b.QuestionFollows().MostFollowedQuestions(3)
	require.NoError(t, err)
	assert.Equal(t, []types.QuestionID{5, 3, 7}, questionIDs(got))
	assert.Equal(t, "z", got[0].Title, "ranked ids are re-fetched as full questions")
}
