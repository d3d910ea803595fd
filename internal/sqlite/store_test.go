package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/SOC-Training-Tool/SOC-Server/internal/aws/storage"
	"github.com/SOC-Training-Tool/SOC-Server/internal/domains/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "catan.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestObjects(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.PutObject(ctx, "catan-movesets", "moveset-1-a", []byte("M1")))

	data, err := s.GetObject(ctx, "catan-movesets", "moveset-1-a")
	require.NoError(t, err)
	assert.Equal(t, []byte("M1"), data)

	_, err = s.GetObject(ctx, "catan-boards", "moveset-1-a")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)

	err = s.PutObject(ctx, "catan-movesets", "moveset-1-a", []byte("M2"))
	assert.ErrorIs(t, err, storage.ErrObjectExists)
}

func TestPlayerIndex(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	alice := entities.PlayerIndex{
		PlayerName:    "Alice",
		TimeStamp:     100,
		VictoryPoints: 10,
		Position:      1,
		BoardKey:      "board-100-a",
		MoveSetKey:    "moveset-100-a",
	}
	require.NoError(t, s.PutPlayerIndex(ctx, alice))
	assert.ErrorIs(t, s.PutPlayerIndex(ctx, alice), storage.ErrPlayerIndexExists)

	full, err := s.FetchPlayerIndexes(ctx, "Alice", "")
	require.NoError(t, err)
	assert.Equal(t, []entities.PlayerIndex{alice}, full)

	projected, err := s.FetchPlayerIndexes(ctx, "Alice", entities.BoardKeyAttribute)
	require.NoError(t, err)
	assert.Equal(t, []entities.PlayerIndex{{BoardKey: "board-100-a"}}, projected)

	none, err := s.FetchPlayerIndexes(ctx, "Nobody", entities.MoveSetKeyAttribute)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catan.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.PutObject(ctx, "b", "k", []byte("x")))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	data, err := s.GetObject(ctx, "b", "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckInserted(t *testing.T) {
	assert.NoError(t, checkInserted(fakeResult{rows: 1}, storage.ErrObjectExists))
	assert.ErrorIs(t, checkInserted(fakeResult{rows: 0}, storage.ErrObjectExists), storage.ErrObjectExists)

	driverErr := errors.New("rows affected unsupported")
	err := checkInserted(fakeResult{err: driverErr}, storage.ErrObjectExists)
	assert.ErrorIs(t, err, driverErr)
	assert.NotErrorIs(t, err, storage.ErrObjectExists)
}
