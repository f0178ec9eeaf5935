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

// scheduleDocument stores the weekday position next to the schedule so the
// listing can sort in calendar order.
type scheduleDocument struct {
	entity.Schedule `bson:",inline"`
	DayIndex        int `bson:"day_index"`
}

func toScheduleDocument(s *entity.Schedule) *scheduleDocument {
	return &scheduleDocument{Schedule: *s, DayIndex: s.DayOfWeek.Index()}
}

type ScheduleRepository struct {
	collection *mongo.Collection
	seq        *Sequence
}

var _ contract.IScheduleRepository = (*ScheduleRepository)(nil)

func NewScheduleRepository(db *mongo.Database, seq *Sequence) *ScheduleRepository {
	return &ScheduleRepository{collection: db.Collection("schedules"), seq: seq}
}

var scheduleSort = bson.D{{Key: "day_index", Value: 1}, {Key: "start_time", Value: 1}, {Key: "_id", Value: 1}}

func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *entity.Schedule) error {
	id, err := r.seq.Next(ctx, "schedules")
	if err != nil {
		return err
	}
	schedule.ID = id
	if _, err := r.collection.InsertOne(ctx, toScheduleDocument(schedule)); err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, id int64) (*entity.Schedule, error) {
	doc, err := findByID[scheduleDocument](ctx, r.collection, "schedule", id)
	if err != nil {
		return nil, err
	}
	return &doc.Schedule, nil
}

func (r *ScheduleRepository) GetSchedulesByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Schedule, error) {
	out := make(map[int64]*entity.Schedule, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	docs, err := findAll[scheduleDocument](ctx, r.collection, "schedules", idsFilter(ids), nil)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		s := d.Schedule
		out[s.ID] = &s
	}
	return out, nil
}

func (r *ScheduleRepository) ListSchedules(ctx context.Context, opts contract.ScheduleFilterOptions) ([]*entity.Schedule, error) {
	filter := bson.M{}
	if opts.DayOfWeek != nil {
		filter["day_of_week"] = *opts.DayOfWeek
	}
	if opts.Level != nil {
		filter["level"] = *opts.Level
	}
	docs, err := findAll[scheduleDocument](ctx, r.collection, "schedules", filter, options.Find().SetSort(scheduleSort))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Schedule, len(docs))
	for i, d := range docs {
		s := d.Schedule
		out[i] = &s
	}
	return out, nil
}

func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, schedule *entity.Schedule) error {
	return replaceByID(ctx, r.collection, "schedule", schedule.ID, toScheduleDocument(schedule))
}

func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.collection, "schedule", id)
}

func (r *ScheduleRepository) DetachInstructor(ctx context.Context, instructorID int64) error {
	_, err := r.collection.UpdateMany(ctx, bson.M{"instructor_id": instructorID}, bson.M{"$unset": bson.M{"instructor_id": ""}})
	if err != nil {
		return fmt.Errorf("failed to detach instructor %d: %w", instructorID, err)
	}
	return nil
}
