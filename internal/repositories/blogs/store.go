package blogs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/blogkeeper/internal/blob"
	"github.com/dmitrijs2005/blogkeeper/internal/codec"
	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
	"github.com/dmitrijs2005/blogkeeper/internal/repositories/posts"
)

// blobKey is the single blob holding the whole blog collection.
const blobKey = "blogs"

func blogID(b *models.Blog) int64 { return b.ID }

// Store is the Repository implementation: a slice of blogs kept sorted
// ascending by id, snapshotted whole into the blob store after every
// mutation when autosave is on.
type Store struct {
	blobs    blob.Store
	codec    codec.Codec
	log      logging.Logger
	autosave bool
	items    []*models.Blog
}

// NewStore loads the persisted collection. A missing blob means an empty
// collection; a corrupt blob is logged and likewise treated as empty.
func NewStore(ctx context.Context, blobs blob.Store, c codec.Codec, autosave bool, log logging.Logger) *Store {
	s := &Store{
		blobs:    blobs,
		codec:    c,
		log:      log.With("component", "blogstore"),
		autosave: autosave,
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	data, err := s.blobs.Get(ctx, blobKey)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "cannot read blogs blob, starting empty", "error", err)
		}
		return
	}
	var items []*models.Blog
	if err := s.codec.Decode(data, &items); err != nil {
		s.log.Warn(ctx, "blogs blob is corrupt, starting empty", "error", err)
		return
	}
	slices.SortFunc(items, func(a, b *models.Blog) int {
		return cmp.Compare(a.ID, b.ID)
	})
	s.items = items
}

// persist re-encodes the full collection and overwrites the blob. Write
// failures are degraded to a warning: the mutation stays applied in memory
// and the caller may re-attempt it later.
func (s *Store) persist(ctx context.Context) {
	if !s.autosave {
		return
	}
	if err := s.writeSnapshot(ctx, s.blobs); err != nil {
		s.log.Warn(ctx, "cannot persist blogs collection, keeping in memory", "error", err)
	}
}

func (s *Store) writeSnapshot(ctx context.Context, dst blob.Store) error {
	data, err := s.codec.Encode(s.items)
	if err != nil {
		return fmt.Errorf("encode blogs collection: %w", err)
	}
	return dst.Put(ctx, blobKey, data)
}

func (s *Store) Create(ctx context.Context, id int64, name, url, email string) (*models.Blog, error) {
	if common.IndexByKey(s.items, id, blogID) >= 0 {
		return nil, fmt.Errorf("blog %d: %w", id, common.ErrConflict)
	}

	b := &models.Blog{ID: id, Name: name, URL: url, Email: email}
	at := common.InsertionIndex(s.items, id, blogID)
	s.items = slices.Insert(s.items, at, b)

	s.persist(ctx)
	s.log.Info(ctx, "blog created", "id", id)
	return b, nil
}

func (s *Store) Search(id int64) (*models.Blog, error) {
	b, ok := common.SearchByKey(s.items, id, blogID)
	if !ok {
		return nil, fmt.Errorf("blog %d: %w", id, common.ErrNotFound)
	}
	return b, nil
}

func (s *Store) RetrieveByName(needle string) []*models.Blog {
	found := make([]*models.Blog, 0)
	for _, b := range s.items {
		if strings.Contains(b.Name, needle) {
			found = append(found, b)
		}
	}
	return found
}

func (s *Store) Update(ctx context.Context, searchID, newID int64, name, url, email string) error {
	i := common.IndexByKey(s.items, searchID, blogID)
	if i < 0 {
		return fmt.Errorf("blog %d: %w", searchID, common.ErrNotFound)
	}
	if newID != searchID && common.IndexByKey(s.items, newID, blogID) >= 0 {
		return fmt.Errorf("blog %d: %w", newID, common.ErrConflict)
	}

	s.items[i].SetValues(newID, name, url, email)
	if newID != 0 && newID != searchID {
		slices.SortFunc(s.items, func(a, b *models.Blog) int {
			return cmp.Compare(a.ID, b.ID)
		})
	}

	s.persist(ctx)
	s.log.Info(ctx, "blog updated", "id", searchID, "new_id", newID)
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	i := common.IndexByKey(s.items, id, blogID)
	if i < 0 {
		return fmt.Errorf("blog %d: %w", id, common.ErrNotFound)
	}
	s.items = slices.Delete(s.items, i, i+1)

	s.cascade(ctx, id)
	s.log.Info(ctx, "blog deleted", "id", id)
	return nil
}

// cascade removes the deleted blog's post blob and snapshots the remaining
// collection. Backends with transactions apply both writes atomically.
func (s *Store) cascade(ctx context.Context, id int64) {
	if tx, ok := s.blobs.(blob.Batch); ok && s.autosave {
		err := tx.Apply(ctx, func(bs blob.Store) error {
			if err := bs.Delete(ctx, posts.BlobKey(id)); err != nil {
				return err
			}
			return s.writeSnapshot(ctx, bs)
		})
		if err != nil {
			s.log.Warn(ctx, "cannot persist blog deletion, keeping in memory", "blog_id", id, "error", err)
		}
		return
	}

	if err := s.blobs.Delete(ctx, posts.BlobKey(id)); err != nil {
		s.log.Warn(ctx, "cannot delete posts blob", "blog_id", id, "error", err)
	}
	s.persist(ctx)
}

func (s *Store) List() []*models.Blog {
	return slices.Clone(s.items)
}
