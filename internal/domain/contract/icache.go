package contract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

// NewsListKeyPrefix namespaces every cached news listing page.
const NewsListKeyPrefix = "news:list:"

// CachedNewsPage is the cached payload for the public news listing.
type CachedNewsPage struct {
	News  []*entity.News `json:"news"`
	Total int64          `json:"total"`
}

// INewsCache defines caching operations for news.
type INewsCache interface {
	// Detail (by id)
	GetNews(ctx context.Context, id int64) (*entity.News, bool, error)
	SetNews(ctx context.Context, news *entity.News) error
	InvalidateNews(ctx context.Context, id int64) error

	// List pages (key built by usecase)
	GetNewsPage(ctx context.Context, key string) (*CachedNewsPage, bool, error)
	SetNewsPage(ctx context.Context, key string, page *CachedNewsPage) error
	InvalidateNewsLists(ctx context.Context) error
}
