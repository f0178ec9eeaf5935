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

type InstructorRepository struct {
	collection *mongo.Collection
	seq        *Sequence
}

var _ contract.IInstructorRepository = (*InstructorRepository)(nil)

func NewInstructorRepository(db *mongo.Database, seq *Sequence) *InstructorRepository {
	return &InstructorRepository{collection: db.Collection("instructors"), seq: seq}
}

func (r *InstructorRepository) CreateInstructor(ctx context.Context, instructor *entity.Instructor) error {
	id, err := r.seq.Next(ctx, "instructors")
	if err != nil {
		return err
	}
	instructor.ID = id
	if _, err := r.collection.InsertOne(ctx, instructor); err != nil {
		return fmt.Errorf("failed to create instructor: %w", err)
	}
	return nil
}

func (r *InstructorRepository) GetInstructorByID(ctx context.Context, id int64) (*entity.Instructor, error) {
	return findByID[entity.Instructor](ctx, r.collection, "instructor", id)
}

func (r *InstructorRepository) GetInstructorsByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Instructor, error) {
	out := make(map[int64]*entity.Instructor, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	items, err := findAll[entity.Instructor](ctx, r.collection, "instructors", idsFilter(ids), nil)
	if err != nil {
		return nil, err
	}
	for _, i := range items {
		out[i.ID] = i
	}
	return out, nil
}

func (r *InstructorRepository) ListInstructors(ctx context.Context) ([]*entity.Instructor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	return findAll[entity.Instructor](ctx, r.collection, "instructors", bson.M{}, opts)
}

func (r *InstructorRepository) UpdateInstructor(ctx context.Context, instructor *entity.Instructor) error {
	return replaceByID(ctx, r.collection, "instructor", instructor.ID, instructor)
}

func (r *InstructorRepository) DeleteInstructor(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.collection, "instructor", id)
}
