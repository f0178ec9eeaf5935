package contract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

// ScheduleFilterOptions is an exact-match conjunction. Nil fields do not filter.
type ScheduleFilterOptions struct {
	DayOfWeek *entity.DayOfWeek
	Level     *entity.ClassLevel
}

// IScheduleRepository orders schedules by weekday then start time.
type IScheduleRepository interface {
	CreateSchedule(ctx context.Context, schedule *entity.Schedule) error
	GetScheduleByID(ctx context.Context, id int64) (*entity.Schedule, error)
	GetSchedulesByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Schedule, error)
	ListSchedules(ctx context.Context, opts ScheduleFilterOptions) ([]*entity.Schedule, error)
	UpdateSchedule(ctx context.Context, schedule *entity.Schedule) error
	DeleteSchedule(ctx context.Context, id int64) error
	// DetachInstructor clears the instructor reference on every schedule taught by id.
	DetachInstructor(ctx context.Context, instructorID int64) error
}
