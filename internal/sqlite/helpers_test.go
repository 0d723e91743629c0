package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/questions/pkg/types"
)

// setupBackend attaches a Backend to a fresh database in a temp dir with the
// schema bootstrapped. The backend is detached on cleanup.
func setupBackend(t *testing.T, opts ...Option) *Backend {
	t.Helper()
	b := NewBackend(opts...)
	config := types.Config{
		Backend:      types.BackendSQLite,
		DataDir:      t.TempDir(),
		CreateSchema: true,
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })
	return b
}

// fixtureSQL populates every table. Follow and reply ids are chosen to differ
// from the user and question ids they point at, so a join that leaks the
// wrong id column shows up in assertions.
//
// Followers: q1 <- u2, u3, u4; q2 <- u1, u3; q3 <- u2 (twice); q4 none.
// Replies on q1: r1 (top, u2) -> r2 (u3), r3 (u1); r2 -> r5 (u2).
var fixtureSQL = []string{
	`INSERT INTO users (id, fname, lname) VALUES
		(1, 'Ada', 'Lovelace'),
		(2, 'Grace', 'Hopper'),
		(3, 'Alan', 'Turing'),
		(4, 'Quiet', 'Reader')`,
	`INSERT INTO questions (id, title, body, author) VALUES
		(1, 'Engines', 'Can the engine compose music?', 1),
		(2, 'Compilers', 'Why not write programs in English?', 2),
		(3, 'Notes', 'Who reads footnotes?', 1),
		(4, 'Machines', 'Can machines think?', 3)`,
	`INSERT INTO replies (id, question_id, parent, user_id, body) VALUES
		(1, 1, NULL, 2, 'Given the right notation.'),
		(2, 1, 1, 3, 'Notation is the hard part.'),
		(3, 1, 1, 1, 'I wrote the notation.'),
		(4, 2, NULL, 1, 'English is ambiguous.'),
		(5, 1, 2, 2, 'So is every notation.')`,
	`INSERT INTO question_follows (id, question_id, follower) VALUES
		(11, 1, 2),
		(12, 1, 3),
		(13, 1, 4),
		(14, 2, 1),
		(15, 2, 3),
		(16, 3, 2),
		(17, 3, 2)`,
	`INSERT INTO question_likes (id, user_id, question_id) VALUES
		(21, 1, 2),
		(22, 3, 1)`,
}

// seedFixtures inserts fixtureSQL through the backend's handle.
func seedFixtures(t *testing.T, b *Backend) {
	t.Helper()
	for _, stmt := range fixtureSQL {
		_, err := b.db.Exec(stmt)
		require.NoError(t, err)
	}
}

// setupSeededBackend is setupBackend followed by seedFixtures.
func setupSeededBackend(t *testing.T) *Backend {
	t.Helper()
	b := setupBackend(t)
	seedFixtures(t, b)
	return b
}
