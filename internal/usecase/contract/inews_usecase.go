package usecasecontract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/utils"
)

// NewsInput carries a news write. Tags is nil when absent.
type NewsInput struct {
	Title     *string
	Content   *string
	Excerpt   *string
	ImageURL  *string
	Category  *string
	Important *bool
	Author    *string
	Tags      []string
	EventDate *string
}

type NewsQuery struct {
	Category *string
	Upcoming bool
	Page     int
	Limit    int
}

type NewsPage struct {
	News       []*entity.News
	Pagination utils.PageMeta
}

type INewsUseCase interface {
	ListNews(ctx context.Context, caller entity.Caller, q NewsQuery) (*NewsPage, error)
	GetNews(ctx context.Context, caller entity.Caller, id int64) (*entity.News, error)
	CreateNews(ctx context.Context, caller entity.Caller, in NewsInput) (*entity.News, error)
	UpdateNews(ctx context.Context, caller entity.Caller, id int64, in NewsInput) (*entity.News, error)
	DeleteNews(ctx context.Context, caller entity.Caller, id int64) error
}
