package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortranov/neoastrology/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "neoastro-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestStorage_SaveGetToken(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveToken(ctx, "token-abc"))

	token, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}

func TestStorage_GetToken_NotFound(t *testing.T) {
	s := newTestStorage(t)

	token, err := s.GetToken(context.Background())

	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
	assert.Empty(t, token)
}

func TestStorage_SaveToken_Overwrites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveToken(ctx, "first"))
	require.NoError(t, s.SaveToken(ctx, "second"))

	token, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestStorage_DeleteToken(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveToken(ctx, "token-abc"))
	require.NoError(t, s.DeleteToken(ctx))

	_, err := s.GetToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_DeleteToken_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Удаление отсутствующего токена не является ошибкой
	require.NoError(t, s.DeleteToken(ctx))
	require.NoError(t, s.DeleteToken(ctx))
}

func TestStorage_TokenSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "neoastro-test.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.SaveToken(ctx, "persistent-token"))
	require.NoError(t, s.Close())

	// Переоткрываем базу - токен должен пережить перезапуск процесса
	s2, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, s2.Close())
	}()

	token, err := s2.GetToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persistent-token", token)
}
