package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

func TestFileStore_PutGet(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir(), ".json")
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "blogs", []byte(`[]`)))

	got, err := s.Get(ctx, "blogs")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), got)
}

func TestFileStore_MissingKeyIsNotFound(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), ".json")
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "blogs")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestFileStore_OverwriteIsAtomicReplacement(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir, ".json")
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "blogs", []byte("one")))
	require.NoError(t, s.Put(ctx, "blogs", []byte("two")))

	got, err := s.Get(ctx, "blogs")
	require.NoError(t, err)
	require.Equal(t, []byte("two"), got)

	// No temp files may survive the write.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFileStore_NestedKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewFileStore(dir, ".json")
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "records/1111114444", []byte("posts")))

	_, err = os.Stat(filepath.Join(dir, "records", "1111114444.json"))
	require.NoError(t, err)

	got, err := s.Get(ctx, "records/1111114444")
	require.NoError(t, err)
	require.Equal(t, []byte("posts"), got)
}

func TestFileStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir(), ".json")
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, "blogs", []byte("x")))
	require.NoError(t, s.Delete(ctx, "blogs"))
	require.NoError(t, s.Delete(ctx, "blogs"))

	_, err = s.Get(ctx, "blogs")
	require.ErrorIs(t, err, common.ErrNotFound)
}
