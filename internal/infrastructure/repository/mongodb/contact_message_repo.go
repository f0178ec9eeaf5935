package mongodb

import (
	"context"
	"fmt"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ContactMessageRepository struct {
	collection *mongo.Collection
	seq        *Sequence
}

var _ contract.IContactMessageRepository = (*ContactMessageRepository)(nil)

func NewContactMessageRepository(db *mongo.Database, seq *Sequence) *ContactMessageRepository {
	return &ContactMessageRepository{collection: db.Collection("contact_messages"), seq: seq}
}

func (r *ContactMessageRepository) CreateContactMessage(ctx context.Context, message *entity.ContactMessage) error {
	id, err := r.seq.Next(ctx, "contact_messages")
	if err != nil {
		return err
	}
	message.ID = id
	if _, err := r.collection.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

func (r *ContactMessageRepository) GetContactMessageByID(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	return findByID[entity.ContactMessage](ctx, r.collection, "contact message", id)
}

func (r *ContactMessageRepository) ListContactMessages(ctx context.Context, opts contract.ContactMessageFilterOptions, page contract.Page) ([]*entity.ContactMessage, int64, error) {
	filter := bson.M{}
	if opts.Status != nil {
		filter["status"] = *opts.Status
	}
	sort := bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
	return findPage[entity.ContactMessage](ctx, r.collection, "contact messages", filter, sort, page)
}

func (r *ContactMessageRepository) UpdateContactMessage(ctx context.Context, message *entity.ContactMessage) error {
	return replaceByID(ctx, r.collection, "contact message", message.ID, message)
}

func (r *ContactMessageRepository) DeleteContactMessage(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.collection, "contact message", id)
}

func (r *ContactMessageRepository) CountContactMessagesByStatus(ctx context.Context) (map[entity.MessageStatus]int64, error) {
	raw, err := countByField(ctx, r.collection, "status")
	if err != nil {
		return nil, err
	}
	counts := make(map[entity.MessageStatus]int64, len(entity.MessageStatuses))
	for _, st := range entity.MessageStatuses {
		counts[st] = raw[string(st)]
	}
	return counts, nil
}
