package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func recID(r rec) string { return r.ID }

func TestFileStoreRoundTrip(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	_, ok := s.Get("token")
	assert.False(t, ok)

	require.NoError(t, s.Set("token", "user-data:a@b.co:A:1"))
	v, ok := s.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "user-data:a@b.co:A:1", v)

	require.NoError(t, s.Delete("token"))
	_, ok = s.Get("token")
	assert.False(t, ok)

	// deleting twice must not fail
	require.NoError(t, s.Delete("token"))
}

func TestFileStoreOverwriteIsWholeValue(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("k", "first value, long enough to notice truncation"))
	require.NoError(t, s.Set("k", "short"))
	v, _ := s.Get("k")
	assert.Equal(t, "short", v)
}

func TestCollectionAppendOrdering(t *testing.T) {
	c := NewCollection[rec](NewMemoryStore(), KeyMessages, recID)

	require.NoError(t, c.Append(rec{ID: "a", Text: "first"}))
	require.NoError(t, c.Append(rec{ID: "b", Text: "second"}))

	all := c.ReadAll()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID, "newest record must come first")
	assert.Equal(t, "a", all[1].ID)
}

func TestCollectionReadAllToleratesGarbage(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(KeyMessages, "{not json"))

	c := NewCollection[rec](s, KeyMessages, recID)
	assert.Empty(t, c.ReadAll())

	// null literal is also "empty", not a crash
	require.NoError(t, s.Set(KeyMessages, "null"))
	assert.Empty(t, c.ReadAll())
}

func TestCollectionRemoveByID(t *testing.T) {
	c := NewCollection[rec](NewMemoryStore(), KeyProjects, recID)
	require.NoError(t, c.WriteAll([]rec{{ID: "b"}, {ID: "a"}}))

	require.NoError(t, c.RemoveByID("a"))
	all := c.ReadAll()
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)

	// unknown id is a no-op
	require.NoError(t, c.RemoveByID("zzz"))
	assert.Len(t, c.ReadAll(), 1)
}

func TestCollectionSeedIfEmpty(t *testing.T) {
	s := NewMemoryStore()
	c := NewCollection[rec](s, KeyProjects, recID)

	samples := []rec{{ID: "s1"}, {ID: "s2"}}
	got := c.SeedIfEmpty(samples)
	assert.Equal(t, samples, got)

	// the seed must be persisted, and not re-applied once data exists
	assert.Equal(t, samples, c.ReadAll())
	require.NoError(t, c.Append(rec{ID: "n"}))
	got = c.SeedIfEmpty(samples)
	assert.Len(t, got, 3)
}
