package contract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

// IInstructorRepository lists instructors by ascending id.
type IInstructorRepository interface {
	CreateInstructor(ctx context.Context, instructor *entity.Instructor) error
	GetInstructorByID(ctx context.Context, id int64) (*entity.Instructor, error)
	GetInstructorsByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Instructor, error)
	ListInstructors(ctx context.Context) ([]*entity.Instructor, error)
	UpdateInstructor(ctx context.Context, instructor *entity.Instructor) error
	DeleteInstructor(ctx context.Context, id int64) error
}
