package mongodb

import (
	"context"
	"fmt"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GalleryRepository implements contract.IGalleryRepository using MongoDB.
type GalleryRepository struct {
	collection *mongo.Collection
	seq        *Sequence
}

var _ contract.IGalleryRepository = (*GalleryRepository)(nil)

// NewGalleryRepository creates a new GalleryRepository.
func NewGalleryRepository(db *mongo.Database, seq *Sequence) *GalleryRepository {
	return &GalleryRepository{collection: db.Collection("gallery_items"), seq: seq}
}

func (r *GalleryRepository) CreateGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	id, err := r.seq.Next(ctx, "gallery_items")
	if err != nil {
		return err
	}
	item.ID = id
	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create gallery item: %w", err)
	}
	return nil
}

func (r *GalleryRepository) GetGalleryItemByID(ctx context.Context, id int64) (*entity.GalleryItem, error) {
	return findByID[entity.GalleryItem](ctx, r.collection, "gallery item", id)
}

// ListGalleryItems retrieves gallery items based on filter options.
func (r *GalleryRepository) ListGalleryItems(ctx context.Context, opts contract.GalleryFilterOptions, page contract.Page) ([]*entity.GalleryItem, int64, error) {
	filter := bson.M{}
	if opts.ActiveOnly {
		filter["active"] = true
	}
	if opts.Category != nil {
		filter["category"] = *opts.Category
	}
	if opts.Type != nil {
		filter["type"] = *opts.Type
	}
	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	return findPage[entity.GalleryItem](ctx, r.collection, "gallery items", filter, sort, page)
}

func (r *GalleryRepository) UpdateGalleryItem(ctx context.Context, item *entity.GalleryItem) error {
	return replaceByID(ctx, r.collection, "gallery item", item.ID, item)
}

func (r *GalleryRepository) DeleteGalleryItem(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.collection, "gallery item", id)
}

func (r *GalleryRepository) CountGalleryItems(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count gallery items: %w", err)
	}
	return n, nil
}
