package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/schedo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "schedule.json"))
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	tasks := []domain.Task{
		{Name: "Write report", Duration: "1h"},
		{Name: "Email team", Duration: "15m"},
		{Name: "Lunch", Duration: "45m"},
		{Name: "Lunch", Duration: "45m"},
	}

	require.NoError(t, store.Save(tasks))
	assert.True(t, store.Exists())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestStore_LoadMissing(t *testing.T) {
	store := newTestStore(t)
	assert.False(t, store.Exists())

	_, err := store.Load()
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestStore_FileFormat(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]domain.Task{{Name: "Café <break>", Duration: "10m"}}))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	want := "[\n  {\n    \"name\": \"Café <break>\",\n    \"duration\": \"10m\"\n  }\n]\n"
	assert.Equal(t, want, string(content))
}

func TestStore_SaveEmpty(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(nil))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(content))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_LoadRejectsInvalidShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{oops"},
		{"object instead of array", `{"name": "a", "duration": "1h"}`},
		{"missing duration", `[{"name": "a"}]`},
		{"numeric duration", `[{"name": "a", "duration": 30}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			require.NoError(t, os.WriteFile(store.Path(), []byte(tt.content), 0o600))

			_, err := store.Load()
			assert.ErrorIs(t, err, domain.ErrInvalidSchedule)
		})
	}
}

func TestStore_LoadIgnoresExtraFields(t *testing.T) {
	store := newTestStore(t)
	content := `[{"name": "a", "duration": "1h", "note": "x"}]`
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o600))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{{Name: "a", Duration: "1h"}}, got)
}

func TestStore_Update(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(func(tasks []domain.Task) ([]domain.Task, error) {
		assert.Empty(t, tasks)
		return append(tasks, domain.Task{Name: "a", Duration: "1h"}), nil
	})
	require.NoError(t, err)

	err = store.Update(func(tasks []domain.Task) ([]domain.Task, error) {
		return append(tasks, domain.Task{Name: "b", Duration: "2h"}), nil
	})
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{{Name: "a", Duration: "1h"}, {Name: "b", Duration: "2h"}}, got)
}

func TestStore_UpdateErrorKeepsFile(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save([]domain.Task{{Name: "a", Duration: "1h"}}))

	err := store.Update(func([]domain.Task) ([]domain.Task, error) {
		return nil, domain.ErrIndexOutOfRange
	})
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_LockDirKeepsWorkingDirClean(t *testing.T) {
	workDir := t.TempDir()
	lockDir := filepath.Join(t.TempDir(), "state")
	store := NewWithLockDir(filepath.Join(workDir, "schedule.json"), lockDir)

	require.NoError(t, store.Save([]domain.Task{{Name: "Gym", Duration: "1h"}}))
	_, err := store.Load()
	require.NoError(t, err)

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "schedule.json", entries[0].Name())

	locks, err := filepath.Glob(filepath.Join(lockDir, "schedule-*.lock"))
	require.NoError(t, err)
	assert.Len(t, locks, 1)
}

func TestStore_LockNamePerSchedule(t *testing.T) {
	lockDir := t.TempDir()
	a := NewWithLockDir("/work/a/schedule.json", lockDir)
	b := NewWithLockDir("/work/b/schedule.json", lockDir)

	assert.NotEqual(t, a.lockPath, b.lockPath)
	assert.Equal(t, lockDir, filepath.Dir(a.lockPath))
}

func TestNewWithLockDir_EmptyDirFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")

	assert.Equal(t, path+".lock", NewWithLockDir(path, "").lockPath)
}
