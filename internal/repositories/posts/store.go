package posts

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/blob"
	"github.com/dmitrijs2005/blogkeeper/internal/codec"
	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
)

// BlobKey names the blob holding the post collection of one blog.
func BlobKey(blogID int64) string {
	return "records/" + strconv.FormatInt(blogID, 10)
}

func postCode(p *models.Post) int64 { return p.Code }

// record is the persistence envelope. Carrying the counter next to the
// posts is what keeps code allocation monotonic across process restarts,
// even after the highest-coded posts were deleted.
type record struct {
	Counter int64          `json:"counter"`
	Posts   []*models.Post `json:"posts"`
}

// Store is the Repository implementation for one blog: a slice of posts
// kept sorted ascending by code (insertion order, since codes only grow)
// and snapshotted into the blob store after every mutation.
type Store struct {
	blog     *models.Blog
	blobs    blob.Store
	codec    codec.Codec
	log      logging.Logger
	autosave bool
	now      func() time.Time
	items    []*models.Post
}

// NewStore loads the persisted collection of the given blog and restores
// the blog's post counter from the envelope. A missing blob means an empty
// collection; a corrupt blob is logged and treated as empty.
func NewStore(ctx context.Context, blog *models.Blog, blobs blob.Store, c codec.Codec, autosave bool, now func() time.Time, log logging.Logger) *Store {
	if now == nil {
		now = time.Now
	}
	s := &Store{
		blog:     blog,
		blobs:    blobs,
		codec:    c,
		log:      log.With("component", "poststore", "blog_id", blog.ID),
		autosave: autosave,
		now:      now,
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.blobs.Get(ctx, BlobKey(s.blog.ID))
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "cannot read posts blob, starting empty", "error", err)
		}
		return
	}
	var rec record
	if err := s.codec.Decode(data, &rec); err != nil {
		s.log.Warn(ctx, "posts blob is corrupt, starting empty", "error", err)
		return
	}

	s.items = rec.Posts
	s.blog.PostCounter = rec.Counter
	// An envelope written before a crash may lag behind the highest code.
	if n := len(s.items); n > 0 && s.items[n-1].Code > s.blog.PostCounter {
		s.blog.PostCounter = s.items[n-1].Code
	}
}

func (s *Store) persist(ctx context.Context) {
	if !s.autosave {
		return
	}
	data, err := s.codec.Encode(record{Counter: s.blog.PostCounter, Posts: s.items})
	if err != nil {
		s.log.Warn(ctx, "cannot encode posts collection", "error", err)
		return
	}
	if err := s.blobs.Put(ctx, BlobKey(s.blog.ID), data); err != nil {
		s.log.Warn(ctx, "cannot persist posts collection, keeping in memory", "error", err)
	}
}

func (s *Store) Create(ctx context.Context, title, text string) (*models.Post, error) {
	s.blog.PostCounter++
	ts := s.now()
	p := &models.Post{
		Code:      s.blog.PostCounter,
		Title:     title,
		Text:      text,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	// Codes are monotonic, so appending keeps the collection sorted.
	s.items = append(s.items, p)

	s.persist(ctx)
	s.log.Info(ctx, "post created", "code", p.Code)
	return p, nil
}

func (s *Store) Search(code int64) (*models.Post, error) {
	p, ok := common.SearchByKey(s.items, code, postCode)
	if !ok {
		return nil, fmt.Errorf("post %d: %w", code, common.ErrNotFound)
	}
	return p, nil
}

func (s *Store) RetrieveByText(needle string) []*models.Post {
	needle = strings.ToLower(needle)
	found := make([]*models.Post, 0)
	for _, p := range s.items {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Text), needle) {
			found = append(found, p)
		}
	}
	return found
}

func (s *Store) Update(ctx context.Context, code int64, title, text string) (*models.Post, error) {
	p, ok := common.SearchByKey(s.items, code, postCode)
	if !ok {
		return nil, fmt.Errorf("post %d: %w", code, common.ErrNotFound)
	}

	p.Title = title
	p.Text = text
	p.UpdatedAt = s.now()

	s.persist(ctx)
	s.log.Info(ctx, "post updated", "code", code)
	return p, nil
}

func (s *Store) Delete(ctx context.Context, code int64) error {
	i := common.IndexByKey(s.items, code, postCode)
	if i < 0 {
		return fmt.Errorf("post %d: %w", code, common.ErrNotFound)
	}
	s.items = slices.Delete(s.items, i, i+1)

	s.persist(ctx)
	s.log.Info(ctx, "post deleted", "code", code)
	return nil
}

func (s *Store) List() []*models.Post {
	out := make([]*models.Post, len(s.items))
	for i, p := range s.items {
		out[len(s.items)-1-i] = p
	}
	return out
}
