package usecasecontract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/utils"
)

type GalleryItemInput struct {
	Title       *string
	Type        *string
	URL         *string
	Description *string
	Category    *string
	Alt         *string
	Active      *bool
}

type GalleryQuery struct {
	Category *string
	Type     *string
	Page     int
	Limit    int
}

type GalleryPage struct {
	Items      []*entity.GalleryItem
	Pagination utils.PageMeta
}

type IGalleryUseCase interface {
	ListGalleryItems(ctx context.Context, caller entity.Caller, q GalleryQuery) (*GalleryPage, error)
	GetGalleryItem(ctx context.Context, caller entity.Caller, id int64) (*entity.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, caller entity.Caller, in GalleryItemInput) (*entity.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, caller entity.Caller, id int64, in GalleryItemInput) (*entity.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, caller entity.Caller, id int64) error
}
