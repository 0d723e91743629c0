package sqlite

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/questions/pkg/types"
)

func TestNewBackendAttachAndFind(t *testing.T) {
	b := NewBackend(zerolog.Nop())
	require.NoError(t, b.Attach(types.Config{
		Backend:      types.BackendSQLite,
		DataDir:      t.TempDir(),
		CreateSchema: true,
	}))
	defer b.Detach()

	var s types.Store = b
	u, err := s.Users().FindByID(1)
	require.NoError(t, err)
	assert.Nil(t, u, "empty table has no user 1")

	users, err := s.Users().All()
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestNewBackendStartsDetached(t *testing.T) {
	b := NewBackend(zerolog.Nop())

	_, err := b.Questions().All()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.NoError(t, b.Detach())
}
