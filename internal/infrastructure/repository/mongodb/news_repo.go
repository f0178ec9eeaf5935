package mongodb

import (
	"context"
	"fmt"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewsRepository represents the MongoDB implementation of the INewsRepository interface.
type NewsRepository struct {
	collection *mongo.Collection
	seq        *Sequence
}

var _ contract.INewsRepository = (*NewsRepository)(nil)

// NewNewsRepository creates and returns a new NewsRepository instance.
func NewNewsRepository(db *mongo.Database, seq *Sequence) *NewsRepository {
	return &NewsRepository{collection: db.Collection("news"), seq: seq}
}

var newsSort = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

// buildNewsFilter creates a BSON filter based on NewsFilterOptions.
func buildNewsFilter(opts contract.NewsFilterOptions) bson.M {
	filter := bson.M{}
	if opts.Category != nil {
		filter["category"] = *opts.Category
	}
	if opts.UpcomingAfter != nil {
		filter["event_date"] = bson.M{"$gt": *opts.UpcomingAfter}
	}
	return filter
}

// CreateNews inserts a new news record into the database.
func (r *NewsRepository) CreateNews(ctx context.Context, news *entity.News) error {
	id, err := r.seq.Next(ctx, "news")
	if err != nil {
		return err
	}
	news.ID = id
	if news.Tags == nil {
		news.Tags = []string{}
	}
	if _, err := r.collection.InsertOne(ctx, news); err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}

// GetNewsByID retrieves a single news item by its id.
func (r *NewsRepository) GetNewsByID(ctx context.Context, id int64) (*entity.News, error) {
	return findByID[entity.News](ctx, r.collection, "news", id)
}

// ListNews returns one page of news, newest first, with the filtered total.
func (r *NewsRepository) ListNews(ctx context.Context, opts contract.NewsFilterOptions, page contract.Page) ([]*entity.News, int64, error) {
	return findPage[entity.News](ctx, r.collection, "news", buildNewsFilter(opts), newsSort, page)
}

func (r *NewsRepository) UpdateNews(ctx context.Context, news *entity.News) error {
	if news.Tags == nil {
		news.Tags = []string{}
	}
	return replaceByID(ctx, r.collection, "news", news.ID, news)
}

func (r *NewsRepository) DeleteNews(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.collection, "news", id)
}

func (r *NewsRepository) CountNews(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count news: %w", err)
	}
	return n, nil
}
