package usecasecontract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

type InstructorInput struct {
	Name     *string
	Bio      *string
	BeltRank *string
	PhotoURL *string
}

type IInstructorUseCase interface {
	ListInstructors(ctx context.Context, caller entity.Caller) ([]*entity.Instructor, error)
	GetInstructor(ctx context.Context, caller entity.Caller, id int64) (*entity.Instructor, error)
	CreateInstructor(ctx context.Context, caller entity.Caller, in InstructorInput) (*entity.Instructor, error)
	UpdateInstructor(ctx context.Context, caller entity.Caller, id int64, in InstructorInput) (*entity.Instructor, error)
	DeleteInstructor(ctx context.Context, caller entity.Caller, id int64) error
}
