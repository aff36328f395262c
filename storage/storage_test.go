package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "runs.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i, outcome := range []string{"lost", "won", "playing"} {
		id, err := store.SaveRun(Run{Level: "meadow", Seed: int64(i), Outcome: outcome, Steps: 100 * (i + 1)})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), id)
	}

	runs, err := store.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "playing", runs[0].Outcome)
	assert.Equal(t, "won", runs[1].Outcome)
	assert.Equal(t, 200, runs[1].Steps)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestBestRun(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.BestRun("meadow")
	require.NoError(t, err)
	assert.False(t, found)

	runs := []Run{
		{Level: "meadow", Outcome: "won", ElapsedMs: 9000, Coins: 3},
		{Level: "meadow", Outcome: "lost", ElapsedMs: 1000},
		{Level: "meadow", Outcome: "won", ElapsedMs: 7000, Coins: 1},
		{Level: "ledges", Outcome: "won", ElapsedMs: 10},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	best, found, err := store.BestRun("meadow")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(7000), best.ElapsedMs)
	assert.Equal(t, 1, best.Coins)
}

func TestBestRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Level: "meadow", Outcome: "won", ElapsedMs: 9000, Coins: 3},
		{Level: "meadow", Outcome: "won", ElapsedMs: 7000, Coins: 1},
		{Level: "ledges", Outcome: "lost", ElapsedMs: 10},
		{Level: "caves", Outcome: "won", ElapsedMs: 12340, Coins: 4},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	best, err := store.BestRuns([]string{"caves", "ledges", "meadow"})
	require.NoError(t, err)
	require.Len(t, best, 2)
	assert.Equal(t, "7.00s with 1 coins", best["meadow"].Result())
	assert.Equal(t, "12.34s with 4 coins", best["caves"].Result())

	_, found := best["ledges"]
	assert.False(t, found, "a lost run is never a best")
}

type memItems map[string][]byte

func (m memItems) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memItems) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type failingItems struct{}

func (failingItems) LoadItem(string) ([]byte, error) { return nil, errors.New("disk on fire") }
func (failingItems) SaveItem(string, []byte) error   { return errors.New("disk on fire") }

func TestSettingsRoundTrip(t *testing.T) {
	s := &Settings{items: memItems{}}

	saved, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)

	want := &SavedSettings{SFXVolume: 0.3, Muted: true, LastLevel: "ledges"}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsFailures(t *testing.T) {
	var nilSettings *Settings
	saved, err := nilSettings.Load()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, nilSettings.Save(&SavedSettings{}))

	broken := &Settings{items: failingItems{}}
	saved, err = broken.Load()
	assert.NoError(t, err, "unreadable settings fall back to defaults")
	assert.Nil(t, saved)
	assert.Error(t, broken.Save(&SavedSettings{}))

	garbled := &Settings{items: memItems{settingsKey: []byte("{")}}
	_, err = garbled.Load()
	assert.Error(t, err)
}
