package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a new in-memory database for testing.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err, "failed to open in-memory database")
	t.Cleanup(func() {
		assert.NoError(t, db.Close(), "failed to close database")
	})
	return db
}

// fakeClock hands out strictly increasing instants, one millisecond
// apart, so minted keys never collide and ordering is deterministic.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

type testRecord struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func TestDB_Open(t *testing.T) {
	t.Run("opens with InMemory flag", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		require.NoError(t, db.Close())
	})

	t.Run("empty Path defaults to in-memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		require.NoError(t, db.Close())
	})

	t.Run("opens on disk", func(t *testing.T) {
		db, err := Open(Options{Path: t.TempDir() + "/db"})
		require.NoError(t, err)
		require.NoError(t, db.Close())
	})
}

func TestDB_GetSet(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	in := testRecord{ID: "asset:1", Name: "Laptop", Value: 1200}
	require.NoError(t, db.Set(ctx, in.ID, in))

	var out testRecord
	require.NoError(t, db.Get(ctx, "asset:1", &out))
	assert.Equal(t, in, out)

	t.Run("missing key returns ErrKeyNotFound", func(t *testing.T) {
		var v testRecord
		err := db.Get(ctx, "asset:missing", &v)
		assert.True(t, IsErrKeyNotFound(err))
	})

	t.Run("set overwrites", func(t *testing.T) {
		in.Value = 900
		require.NoError(t, db.Set(ctx, in.ID, in))
		var v testRecord
		require.NoError(t, db.Get(ctx, in.ID, &v))
		assert.Equal(t, float64(900), v.Value)
	})

	t.Run("stores bare strings", func(t *testing.T) {
		require.NoError(t, db.Set(ctx, "lastseen:user1", "2025-06-15T12:00:00Z"))
		var marker string
		require.NoError(t, db.Get(ctx, "lastseen:user1", &marker))
		assert.Equal(t, "2025-06-15T12:00:00Z", marker)
	})
}

func TestDB_Delete(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Set(ctx, "asset:1", testRecord{ID: "asset:1"}))
	require.NoError(t, db.Delete(ctx, "asset:1"))

	var v testRecord
	assert.True(t, IsErrKeyNotFound(db.Get(ctx, "asset:1", &v)))

	t.Run("deleting an absent key succeeds", func(t *testing.T) {
		assert.NoError(t, db.Delete(ctx, "asset:never-existed"))
		assert.NoError(t, db.Delete(ctx, "asset:1"), "repeat delete is idempotent")
	})
}

func TestDB_ListByPrefix(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Set(ctx, "asset:1", testRecord{ID: "asset:1", Name: "Laptop"}))
	require.NoError(t, db.Set(ctx, "asset:2", testRecord{ID: "asset:2", Name: "Desk"}))
	require.NoError(t, db.Set(ctx, "liability:1", testRecord{ID: "liability:1", Name: "Loan"}))

	raw, err := db.ListByPrefix(ctx, "asset:")
	require.NoError(t, err)
	assert.Len(t, raw, 2)

	t.Run("no matches yields empty, not error", func(t *testing.T) {
		raw, err := db.ListByPrefix(ctx, "customer:")
		require.NoError(t, err)
		assert.Empty(t, raw)
	})

	t.Run("GetAllByPrefix decodes records", func(t *testing.T) {
		records, err := GetAllByPrefix[testRecord](ctx, db, "asset:")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Laptop", records[0].Name)
		assert.Equal(t, "Desk", records[1].Name)
	})
}
