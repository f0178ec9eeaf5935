package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Sequence hands out increasing int64 ids per collection from a counters
// collection.
type Sequence struct {
	collection *mongo.Collection
}

func NewSequence(db *mongo.Database) *Sequence {
	return &Sequence{collection: db.Collection("counters")}
}

func (s *Sequence) Next(ctx context.Context, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": int64(1)}}, opts).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate %s id: %w", name, err)
	}
	return doc.Seq, nil
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, kind string, id int64) (*T, error) {
	var out T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s %d: %w", kind, id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get %s %d: %w", kind, id, err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, kind string, filter interface{}, opts *options.FindOptions) ([]*T, error) {
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	defer cursor.Close(ctx)

	out := []*T{}
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", kind, err)
		}
		out = append(out, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error listing %s: %w", kind, err)
	}
	return out, nil
}

// findPage counts and fetches with the same filter so the total matches the page.
func findPage[T any](ctx context.Context, coll *mongo.Collection, kind string, filter bson.M, sort bson.D, page contract.Page) ([]*T, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", kind, err)
	}
	if page.Offset < 0 || int64(page.Offset) >= total {
		return []*T{}, total, nil
	}
	opts := options.Find().SetSort(sort).SetSkip(int64(page.Offset))
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}
	items, err := findAll[T](ctx, coll, kind, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func replaceByID(ctx context.Context, coll *mongo.Collection, kind string, id int64, doc interface{}) error {
	result, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s %d: %w", kind, id, entity.ErrDuplicate)
		}
		return fmt.Errorf("failed to update %s %d: %w", kind, id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, entity.ErrNotFound)
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, kind string, id int64) error {
	result, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", kind, id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, entity.ErrNotFound)
	}
	return nil
}

// countByField groups the whole collection by field.
func countByField(ctx context.Context, coll *mongo.Collection, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$" + field}, {Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}}}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	out := map[string]int64{}
	for cursor.Next(ctx) {
		var row struct {
			ID    string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode %s count: %w", field, err)
		}
		out[row.ID] = row.Count
	}
	return out, cursor.Err()
}

func idsFilter(ids []int64) bson.M {
	return bson.M{"_id": bson.M{"$in": ids}}
}
