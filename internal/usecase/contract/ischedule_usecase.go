package usecasecontract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

// ScheduleInput carries a schedule write. Price is the decimal text as sent
// by the client.
type ScheduleInput struct {
	DayOfWeek    *string
	StartTime    *string
	EndTime      *string
	Level        *string
	Description  *string
	Price        *string
	InstructorID *int64
}

type ScheduleQuery struct {
	DayOfWeek *string
	Level     *string
}

// ScheduleDetail is a schedule with its instructor resolved, if any.
type ScheduleDetail struct {
	Schedule   *entity.Schedule
	Instructor *entity.Instructor
}

type IScheduleUseCase interface {
	ListSchedules(ctx context.Context, caller entity.Caller, q ScheduleQuery) ([]ScheduleDetail, error)
	GetSchedule(ctx context.Context, caller entity.Caller, id int64) (*ScheduleDetail, error)
	CreateSchedule(ctx context.Context, caller entity.Caller, in ScheduleInput) (*ScheduleDetail, error)
	UpdateSchedule(ctx context.Context, caller entity.Caller, id int64, in ScheduleInput) (*ScheduleDetail, error)
	DeleteSchedule(ctx context.Context, caller entity.Caller, id int64) error
}
