package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created")
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveSolve(Solve{LevelID: "bridge", Moves: 4})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	best, ok, err := store.BestMoves("bridge")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, best)
}

func TestSaveAndBestSolves(t *testing.T) {
	store := openTestStore(t)
	session := NewSessionID()

	for _, s := range []Solve{
		{SessionID: session, LevelID: "stairs", Moves: 5, Duration: 3 * time.Second},
		{SessionID: session, LevelID: "stairs", Moves: 3, Duration: 9 * time.Second},
		{SessionID: session, LevelID: "stairs", Moves: 3, Duration: 2 * time.Second},
		{SessionID: session, LevelID: "ledge", Moves: 2},
	} {
		_, err := store.SaveSolve(s)
		require.NoError(t, err)
	}

	best, err := store.BestSolves("stairs", 10)
	require.NoError(t, err)
	require.Len(t, best, 3)

	assert.Equal(t, 3, best[0].Moves)
	assert.Equal(t, 2*time.Second, best[0].Duration, "ties break on duration")
	assert.Equal(t, 3, best[1].Moves)
	assert.Equal(t, 5, best[2].Moves)
	assert.Equal(t, session, best[0].SessionID)
	assert.False(t, best[0].CreatedAt.IsZero())

	limited, err := store.BestSolves("stairs", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSaveSolveAssignsSession(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveSolve(Solve{LevelID: "tower", Moves: 7})
	require.NoError(t, err)

	best, err := store.BestSolves("tower", 1)
	require.NoError(t, err)
	require.Len(t, best, 1)
	_, err = uuid.Parse(best[0].SessionID)
	assert.NoError(t, err)
}

func TestSaveSolveRequiresLevel(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveSolve(Solve{Moves: 1})
	assert.Error(t, err)
}

func TestBestMovesEmpty(t *testing.T) {
	store := openTestStore(t)

	moves, ok, err := store.BestMoves("nothing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, moves)
}

func TestSolvedLevelsAndStats(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []Solve{
		{LevelID: "bridge", Moves: 2},
		{LevelID: "bridge", Moves: 4},
		{LevelID: "looped", Moves: 6},
	} {
		_, err := store.SaveSolve(s)
		require.NoError(t, err)
	}

	solved, err := store.SolvedLevels()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"bridge": true, "looped": true}, solved)

	stats, err := store.AllLevelStats()
	require.NoError(t, err)
	require.Contains(t, stats, "bridge")
	assert.Equal(t, 2, stats["bridge"].Solves)
	assert.Equal(t, 2, stats["bridge"].BestMoves)
	assert.InDelta(t, 3.0, stats["bridge"].AvgMoves, 1e-9)
	assert.Equal(t, 1, stats["looped"].Solves)
}

func TestSessionSolves(t *testing.T) {
	store := openTestStore(t)
	a, b := NewSessionID(), NewSessionID()
	require.NotEqual(t, a, b)

	_, err := store.SaveSolve(Solve{SessionID: a, LevelID: "bridge", Moves: 2})
	require.NoError(t, err)
	_, err = store.SaveSolve(Solve{SessionID: b, LevelID: "bridge", Moves: 3})
	require.NoError(t, err)
	_, err = store.SaveSolve(Solve{SessionID: a, LevelID: "ledge", Moves: 1})
	require.NoError(t, err)

	got, err := store.SessionSolves(a)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bridge", got[0].LevelID)
	assert.Equal(t, "ledge", got[1].LevelID)
}

func TestClearSolves(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveSolve(Solve{LevelID: "bridge", Moves: 2})
	require.NoError(t, err)
	_, err = store.SaveSolve(Solve{LevelID: "ledge", Moves: 2})
	require.NoError(t, err)

	require.NoError(t, store.ClearSolves("bridge"))

	_, ok, err := store.BestMoves("bridge")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = store.BestMoves("ledge")
	require.NoError(t, err)
	assert.True(t, ok)
}
