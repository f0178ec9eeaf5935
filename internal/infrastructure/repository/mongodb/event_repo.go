package mongodb

import (
	"context"
	"fmt"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository struct {
	collection *mongo.Collection
	seq        *Sequence
}

var _ contract.IEventRepository = (*EventRepository)(nil)

func NewEventRepository(db *mongo.Database, seq *Sequence) *EventRepository {
	return &EventRepository{collection: db.Collection("events"), seq: seq}
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	id, err := r.seq.Next(ctx, "events")
	if err != nil {
		return err
	}
	event.ID = id
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id int64) (*entity.Event, error) {
	return findByID[entity.Event](ctx, r.collection, "event", id)
}

func (r *EventRepository) ListEvents(ctx context.Context, opts contract.EventFilterOptions) ([]*entity.Event, error) {
	filter := bson.M{}
	if opts.Type != nil {
		filter["type"] = *opts.Type
	}
	if opts.UpcomingAfter != nil {
		filter["date"] = bson.M{"$gt": *opts.UpcomingAfter}
	}
	sort := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	return findAll[entity.Event](ctx, r.collection, "events", filter, sort)
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	return replaceByID(ctx, r.collection, "event", event.ID, event)
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.collection, "event", id)
}
