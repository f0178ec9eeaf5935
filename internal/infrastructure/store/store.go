package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

type NewsCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

var _ contract.INewsCache = (*NewsCacheStore)(nil)

// NewNewsCacheStore caches list pages for ttl and single articles for twice as long.
func NewNewsCacheStore(rdb *redis.Client, ttl time.Duration) *NewsCacheStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &NewsCacheStore{
		rdb:       rdb,
		detailTTL: 2 * ttl,
		listTTL:   ttl,
	}
}

func newsDetailKey(id int64) string { return fmt.Sprintf("news:id:%d", id) }

func (c *NewsCacheStore) GetNews(ctx context.Context, id int64) (*entity.News, bool, error) {
	b, err := c.rdb.Get(ctx, newsDetailKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var news entity.News
	if err := json.Unmarshal(b, &news); err != nil {
		return nil, false, nil
	}
	return &news, true, nil
}

func (c *NewsCacheStore) SetNews(ctx context.Context, news *entity.News) error {
	data, err := json.Marshal(news)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, newsDetailKey(news.ID), data, c.detailTTL).Err()
}

func (c *NewsCacheStore) InvalidateNews(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, newsDetailKey(id)).Err()
}

func (c *NewsCacheStore) GetNewsPage(ctx context.Context, key string) (*contract.CachedNewsPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedNewsPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *NewsCacheStore) SetNewsPage(ctx context.Context, key string, page *contract.CachedNewsPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

func (c *NewsCacheStore) InvalidateNewsLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, contract.NewsListKeyPrefix+"*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
