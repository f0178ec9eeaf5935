package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*NewsCacheStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewNewsCacheStore(rdb, time.Minute), mr
}

func TestNewsDetailCache(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestStore(t)

	_, found, err := c.GetNews(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	news := &entity.News{ID: 1, Title: "Reprise des cours", Content: "...", Tags: []string{"rentree"}, CreatedAt: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, c.SetNews(ctx, news))
	assert.Equal(t, 2*time.Minute, mr.TTL("news:id:1"))

	got, found, err := c.GetNews(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, news.Title, got.Title)
	assert.True(t, news.CreatedAt.Equal(got.CreatedAt))

	require.NoError(t, c.InvalidateNews(ctx, 1))
	_, found, err = c.GetNews(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewsListCacheInvalidation(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestStore(t)

	page := &contract.CachedNewsPage{News: []*entity.News{{ID: 3, Title: "Stage"}}, Total: 1}
	require.NoError(t, c.SetNewsPage(ctx, contract.NewsListKeyPrefix+"p=1:l=10", page))
	require.NoError(t, c.SetNewsPage(ctx, contract.NewsListKeyPrefix+"p=2:l=10", page))
	require.NoError(t, c.SetNews(ctx, &entity.News{ID: 3}))

	got, found, err := c.GetNewsPage(ctx, contract.NewsListKeyPrefix+"p=1:l=10")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(1), got.Total)
	assert.Equal(t, "Stage", got.News[0].Title)

	require.NoError(t, c.InvalidateNewsLists(ctx))
	assert.False(t, mr.Exists(contract.NewsListKeyPrefix+"p=1:l=10"))
	assert.False(t, mr.Exists(contract.NewsListKeyPrefix+"p=2:l=10"))
	// detail entries survive list invalidation
	assert.True(t, mr.Exists("news:id:3"))
}

func TestCorruptEntryIsAMiss(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestStore(t)
	require.NoError(t, mr.Set(contract.NewsListKeyPrefix+"bad", "{not json"))

	_, found, err := c.GetNewsPage(ctx, contract.NewsListKeyPrefix+"bad")
	require.NoError(t, err)
	assert.False(t, found)
}
