package memory

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

type GalleryRepository struct {
	s *Store
}

var _ contract.IGalleryRepository = (*GalleryRepository)(nil)

func (r *GalleryRepository) CreateGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = r.s.nextID("gallery_items")
	r.s.gallery[item.ID] = clone(item)
	return nil
}

func (r *GalleryRepository) GetGalleryItemByID(ctx context.Context, id int64) (*entity.GalleryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.gallery[id]
	if !ok {
		return nil, notFound("gallery item", id)
	}
	return clone(g), nil
}

func (r *GalleryRepository) ListGalleryItems(ctx context.Context, opts contract.GalleryFilterOptions, page contract.Page) ([]*entity.GalleryItem, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	match := func(g *entity.GalleryItem) bool {
		if opts.ActiveOnly && !g.Active {
			return false
		}
		return eqOptional(opts.Category, g.Category) && eqPtr(opts.Type, g.Type)
	}
	less := func(a, b *entity.GalleryItem) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	}
	all := collect(r.s.gallery, match, less)
	return window(all, page), int64(len(all)), nil
}

func (r *GalleryRepository) UpdateGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.gallery[item.ID]; !ok {
		return notFound("gallery item", item.ID)
	}
	r.s.gallery[item.ID] = clone(item)
	return nil
}

func (r *GalleryRepository) DeleteGalleryItem(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.gallery[id]; !ok {
		return notFound("gallery item", id)
	}
	delete(r.s.gallery, id)
	return nil
}

func (r *GalleryRepository) CountGalleryItems(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.gallery)), nil
}
