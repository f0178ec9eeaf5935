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

type RegistrationRepository struct {
	collection *mongo.Collection
	seq        *Sequence
}

var _ contract.IRegistrationRepository = (*RegistrationRepository)(nil)

func NewRegistrationRepository(db *mongo.Database, seq *Sequence) *RegistrationRepository {
	return &RegistrationRepository{collection: db.Collection("registrations"), seq: seq}
}

var registrationSort = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

func buildRegistrationFilter(opts contract.RegistrationFilterOptions) bson.M {
	filter := bson.M{}
	if opts.Status != nil {
		filter["status"] = *opts.Status
	}
	if opts.UserID != nil {
		filter["user_id"] = *opts.UserID
	}
	if opts.ScheduleID != nil {
		filter["schedule_id"] = *opts.ScheduleID
	}
	return filter
}

func (r *RegistrationRepository) CreateRegistration(ctx context.Context, registration *entity.Registration) error {
	id, err := r.seq.Next(ctx, "registrations")
	if err != nil {
		return err
	}
	registration.ID = id
	if _, err := r.collection.InsertOne(ctx, registration); err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (r *RegistrationRepository) GetRegistrationByID(ctx context.Context, id int64) (*entity.Registration, error) {
	return findByID[entity.Registration](ctx, r.collection, "registration", id)
}

func (r *RegistrationRepository) ListRegistrations(ctx context.Context, opts contract.RegistrationFilterOptions) ([]*entity.Registration, error) {
	return findAll[entity.Registration](ctx, r.collection, "registrations", buildRegistrationFilter(opts), options.Find().SetSort(registrationSort))
}

func (r *RegistrationRepository) ListRegistrationsPage(ctx context.Context, opts contract.RegistrationFilterOptions, page contract.Page) ([]*entity.Registration, int64, error) {
	return findPage[entity.Registration](ctx, r.collection, "registrations", buildRegistrationFilter(opts), registrationSort, page)
}

func (r *RegistrationRepository) UpdateRegistration(ctx context.Context, registration *entity.Registration) error {
	return replaceByID(ctx, r.collection, "registration", registration.ID, registration)
}

func (r *RegistrationRepository) DeleteRegistration(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.collection, "registration", id)
}

func (r *RegistrationRepository) DeleteRegistrationsBySchedule(ctx context.Context, scheduleID int64) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"schedule_id": scheduleID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete registrations of schedule %d: %w", scheduleID, err)
	}
	return result.DeletedCount, nil
}

func (r *RegistrationRepository) CountRegistrationsByStatus(ctx context.Context) (map[entity.RegistrationStatus]int64, error) {
	raw, err := countByField(ctx, r.collection, "status")
	if err != nil {
		return nil, err
	}
	counts := make(map[entity.RegistrationStatus]int64, len(entity.RegistrationStatuses))
	for _, st := range entity.RegistrationStatuses {
		counts[st] = raw[string(st)]
	}
	return counts, nil
}
