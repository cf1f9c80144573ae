package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogkeeper/internal/blob"
	"github.com/dmitrijs2005/blogkeeper/internal/codec"
	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

// tickingClock returns a clock that advances one minute per call, so
// UpdatedAt visibly moves past CreatedAt in tests.
func tickingClock() func() time.Time {
	ts := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)
	return func() time.Time {
		ts = ts.Add(time.Minute)
		return ts
	}
}

func newTestStore(t *testing.T, blog *models.Blog, blobs blob.Store) *Store {
	t.Helper()
	return NewStore(context.Background(), blog, blobs, codec.JSON{}, true, tickingClock(), logging.Nop())
}

func createSample(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()
	for _, p := range []struct{ title, text string }{
		{"Starting my journey", "Once upon a time\nThere was a kid..."},
		{"Second step", "Before one could think,\nA storm stroke."},
		{"Continuing my journey", "Along the way...\nThere were challenges."},
		{"Fourth step", "When less expected,\nAll worked fine."},
		{"Finishing my journey", "And that was it.\nEnd of story."},
	} {
		_, err := s.Create(ctx, p.title, p.text)
		require.NoError(t, err)
	}
}

func TestStore_CreateAllocatesSequentialCodes(t *testing.T) {
	blog := &models.Blog{ID: 1111114444}
	s := newTestStore(t, blog, blob.NewMemStore())
	createSample(t, s)

	require.Equal(t, int64(5), blog.PostCounter)

	list := s.List()
	require.Len(t, list, 5)
	require.Equal(t, int64(5), list[0].Code, "most recent post comes first")
	require.Equal(t, int64(1), list[4].Code)

	p, err := s.Search(1)
	require.NoError(t, err)
	require.Equal(t, "Starting my journey", p.Title)
	require.True(t, p.UpdatedAt.Equal(p.CreatedAt), "fresh post has equal timestamps")
}

func TestStore_SearchBoundaries(t *testing.T) {
	blog := &models.Blog{ID: 1}
	s := newTestStore(t, blog, blob.NewMemStore())

	_, err := s.Search(1)
	require.ErrorIs(t, err, common.ErrNotFound, "empty store")

	createSample(t, s)

	for _, code := range []int64{1, 3, 5} {
		p, err := s.Search(code)
		require.NoError(t, err)
		require.Equal(t, code, p.Code)
	}

	_, err = s.Search(6)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStore_RetrieveByText(t *testing.T) {
	blog := &models.Blog{ID: 1}
	s := newTestStore(t, blog, blob.NewMemStore())
	createSample(t, s)

	found := s.RetrieveByText("think")
	require.Len(t, found, 1)
	require.Equal(t, int64(2), found[0].Code)

	// Case-insensitive, matched on title or text, creation order preserved.
	found = s.RetrieveByText("Journey")
	require.Len(t, found, 3)
	require.Equal(t, int64(1), found[0].Code)
	require.Equal(t, int64(3), found[1].Code)
	require.Equal(t, int64(5), found[2].Code)

	require.Empty(t, s.RetrieveByText("travel"))
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	blog := &models.Blog{ID: 1}
	s := newTestStore(t, blog, blob.NewMemStore())
	createSample(t, s)

	p, err := s.Update(ctx, 3, "Continuing the journey", "Along the way...\nThere were new challenges.")
	require.NoError(t, err)
	require.Equal(t, "Continuing the journey", p.Title)
	require.True(t, p.UpdatedAt.After(p.CreatedAt))

	got, err := s.Search(3)
	require.NoError(t, err)
	require.Equal(t, "Continuing the journey", got.Title)

	_, err = s.Update(ctx, 42, "X", "y")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStore_DeleteDoesNotReuseCodes(t *testing.T) {
	ctx := context.Background()
	blog := &models.Blog{ID: 1}
	s := newTestStore(t, blog, blob.NewMemStore())
	createSample(t, s)

	require.NoError(t, s.Delete(ctx, 5))
	require.NoError(t, s.Delete(ctx, 3))
	require.ErrorIs(t, s.Delete(ctx, 3), common.ErrNotFound)

	p, err := s.Create(ctx, "New post", "text")
	require.NoError(t, err)
	require.Equal(t, int64(6), p.Code, "counter must not roll back on delete")
}

func TestStore_ListDescending(t *testing.T) {
	ctx := context.Background()
	blog := &models.Blog{ID: 1}
	s := newTestStore(t, blog, blob.NewMemStore())
	createSample(t, s)

	require.NoError(t, s.Delete(ctx, 3))
	require.NoError(t, s.Delete(ctx, 1))
	require.NoError(t, s.Delete(ctx, 5))

	list := s.List()
	require.Len(t, list, 2)
	require.Equal(t, int64(4), list[0].Code)
	require.Equal(t, int64(2), list[1].Code)
}

func TestStore_ReloadRestoresCounter(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemStore()
	blog := &models.Blog{ID: 1}
	s := newTestStore(t, blog, blobs)
	createSample(t, s)
	require.NoError(t, s.Delete(ctx, 5))

	// Simulated restart: a fresh blog record and a fresh store over the
	// same blob.
	reloadedBlog := &models.Blog{ID: 1}
	reloaded := newTestStore(t, reloadedBlog, blobs)

	require.Equal(t, int64(5), reloadedBlog.PostCounter, "counter restored from the envelope")
	require.Len(t, reloaded.List(), 4)

	p, err := reloaded.Create(ctx, "After restart", "text")
	require.NoError(t, err)
	require.Equal(t, int64(6), p.Code)
}

func TestStore_CorruptBlobStartsEmpty(t *testing.T) {
	ctx := context.Background()
	blobs := blob.NewMemStore()
	blog := &models.Blog{ID: 1}
	require.NoError(t, blobs.Put(ctx, BlobKey(1), []byte("not json")))

	s := newTestStore(t, blog, blobs)
	require.Empty(t, s.List())
	require.Equal(t, int64(0), blog.PostCounter)
}

func TestBlobKey(t *testing.T) {
	require.Equal(t, "records/1111114444", BlobKey(1111114444))
}
