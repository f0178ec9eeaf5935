package contract

import (
	"context"
	"time"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

// NewsFilterOptions holds database-agnostic filters for news listings.
// When UpcomingAfter is set only news whose event date is strictly after it match.
type NewsFilterOptions struct {
	Category      *string
	UpcomingAfter *time.Time
}

// INewsRepository lists news newest first.
type INewsRepository interface {
	CreateNews(ctx context.Context, news *entity.News) error
	GetNewsByID(ctx context.Context, id int64) (*entity.News, error)
	ListNews(ctx context.Context, opts NewsFilterOptions, page Page) ([]*entity.News, int64, error)
	UpdateNews(ctx context.Context, news *entity.News) error
	DeleteNews(ctx context.Context, id int64) error
	CountNews(ctx context.Context) (int64, error)
}
