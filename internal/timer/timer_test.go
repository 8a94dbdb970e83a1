package timer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemaining_WallClockDelta(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewState(2, 60, start)

	assert.Equal(t, 60*time.Second, s.Remaining(start))
	assert.Equal(t, 35*time.Second, s.Remaining(start.Add(25*time.Second)))
	assert.Equal(t, time.Duration(0), s.Remaining(start.Add(60*time.Second)))
	assert.Equal(t, time.Duration(0), s.Remaining(start.Add(5*time.Minute)))
}

func TestExpired(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := NewState(1, 30, start)

	assert.False(t, s.Expired(start.Add(29*time.Second)))
	assert.True(t, s.Expired(start.Add(30*time.Second)))
}

func TestStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(NewState(3, 90, start)))

	got, err := store.Load(start.Add(10 * time.Second))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.SetIndex)
	assert.Equal(t, 80*time.Second, got.Remaining(start.Add(10*time.Second)))
}

func TestStore_LoadDiscardsExpired(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(NewState(1, 60, start)))

	got, err := store.Load(start.Add(2 * time.Minute))
	require.NoError(t, err)
	assert.Nil(t, got, "expired timers are discarded, not reconstructed")

	// The state file itself is gone.
	_, statErr := os.Stat(filepath.Join(dir, stateFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	got, err := store.Load(time.Now())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("{nope"), 0644))

	got, err := store.Load(time.Now())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Clear(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)
	require.NoError(t, store.Save(NewState(1, 60, time.Now())))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is fine")
}
