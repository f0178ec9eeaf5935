package contract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

// GalleryFilterOptions holds database-agnostic parameters for filtering gallery items.
type GalleryFilterOptions struct {
	Category   *string
	Type       *string
	ActiveOnly bool
}

// IGalleryRepository lists gallery items newest first.
type IGalleryRepository interface {
	CreateGalleryItem(ctx context.Context, item *entity.GalleryItem) error
	GetGalleryItemByID(ctx context.Context, id int64) (*entity.GalleryItem, error)
	ListGalleryItems(ctx context.Context, opts GalleryFilterOptions, page Page) ([]*entity.GalleryItem, int64, error)
	UpdateGalleryItem(ctx context.Context, item *entity.GalleryItem) error
	DeleteGalleryItem(ctx context.Context, id int64) error
	CountGalleryItems(ctx context.Context) (int64, error)
}
