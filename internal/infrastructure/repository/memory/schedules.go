package memory

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

type ScheduleRepository struct {
	s *Store
}

var _ contract.IScheduleRepository = (*ScheduleRepository)(nil)

// scheduleLess orders by weekday, then start time, then id.
func scheduleLess(a, b *entity.Schedule) bool {
	if ai, bi := a.DayOfWeek.Index(), b.DayOfWeek.Index(); ai != bi {
		return ai < bi
	}
	if a.StartTime != b.StartTime {
		return a.StartTime < b.StartTime
	}
	return a.ID < b.ID
}

func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *entity.Schedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	schedule.ID = r.s.nextID("schedules")
	r.s.schedules[schedule.ID] = clone(schedule)
	return nil
}

func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, id int64) (*entity.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	s, ok := r.s.schedules[id]
	if !ok {
		return nil, notFound("schedule", id)
	}
	return clone(s), nil
}

func (r *ScheduleRepository) GetSchedulesByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[int64]*entity.Schedule, len(ids))
	for _, id := range ids {
		if s, ok := r.s.schedules[id]; ok {
			out[id] = clone(s)
		}
	}
	return out, nil
}

func (r *ScheduleRepository) ListSchedules(ctx context.Context, opts contract.ScheduleFilterOptions) ([]*entity.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	match := func(s *entity.Schedule) bool {
		return eqPtr(opts.DayOfWeek, s.DayOfWeek) && eqPtr(opts.Level, s.Level)
	}
	return collect(r.s.schedules, match, scheduleLess), nil
}

func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, schedule *entity.Schedule) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.schedules[schedule.ID]; !ok {
		return notFound("schedule", schedule.ID)
	}
	r.s.schedules[schedule.ID] = clone(schedule)
	return nil
}

func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.schedules[id]; !ok {
		return notFound("schedule", id)
	}
	delete(r.s.schedules, id)
	return nil
}

func (r *ScheduleRepository) DetachInstructor(ctx context.Context, instructorID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, s := range r.s.schedules {
		if s.InstructorID != nil && *s.InstructorID == instructorID {
			c := clone(s)
			c.InstructorID = nil
			r.s.schedules[id] = c
		}
	}
	return nil
}
