package memory

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

type NewsRepository struct {
	s *Store
}

var _ contract.INewsRepository = (*NewsRepository)(nil)

func cloneNews(n *entity.News) *entity.News {
	c := clone(n)
	c.Tags = append([]string(nil), n.Tags...)
	return c
}

// newest first, id breaks ties
func newsLess(a, b *entity.News) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func (r *NewsRepository) CreateNews(ctx context.Context, news *entity.News) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	news.ID = r.s.nextID("news")
	r.s.news[news.ID] = cloneNews(news)
	return nil
}

func (r *NewsRepository) GetNewsByID(ctx context.Context, id int64) (*entity.News, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	n, ok := r.s.news[id]
	if !ok {
		return nil, notFound("news", id)
	}
	return cloneNews(n), nil
}

func (r *NewsRepository) ListNews(ctx context.Context, opts contract.NewsFilterOptions, page contract.Page) ([]*entity.News, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	match := func(n *entity.News) bool {
		if !eqOptional(opts.Category, n.Category) {
			return false
		}
		if opts.UpcomingAfter != nil && (n.EventDate == nil || !n.EventDate.After(*opts.UpcomingAfter)) {
			return false
		}
		return true
	}
	all := collect(r.s.news, match, newsLess)
	items := window(all, page)
	for i, n := range items {
		items[i] = cloneNews(n)
	}
	return items, int64(len(all)), nil
}

func (r *NewsRepository) UpdateNews(ctx context.Context, news *entity.News) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.news[news.ID]; !ok {
		return notFound("news", news.ID)
	}
	r.s.news[news.ID] = cloneNews(news)
	return nil
}

func (r *NewsRepository) DeleteNews(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.news[id]; !ok {
		return notFound("news", id)
	}
	delete(r.s.news, id)
	return nil
}

func (r *NewsRepository) CountNews(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.news)), nil
}
