package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/domain/policy"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

const instructorMissingViolation = "instructorId: Instructor not found."

// ScheduleUseCaseImpl manages the weekly class timetable. Deleting a class
// also deletes the registrations made for it.
type ScheduleUseCaseImpl struct {
	scheduleRepo     contract.IScheduleRepository
	instructorRepo   contract.IInstructorRepository
	registrationRepo contract.IRegistrationRepository
	validator        usecasecontract.IValidator
	logger           usecasecontract.IAppLogger
}

var _ usecasecontract.IScheduleUseCase = (*ScheduleUseCaseImpl)(nil)

func NewScheduleUseCase(
	scheduleRepo contract.IScheduleRepository,
	instructorRepo contract.IInstructorRepository,
	registrationRepo contract.IRegistrationRepository,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *ScheduleUseCaseImpl {
	return &ScheduleUseCaseImpl{
		scheduleRepo:     scheduleRepo,
		instructorRepo:   instructorRepo,
		registrationRepo: registrationRepo,
		validator:        validator,
		logger:           logger,
	}
}

func (uc *ScheduleUseCaseImpl) ListSchedules(ctx context.Context, caller entity.Caller, q usecasecontract.ScheduleQuery) ([]usecasecontract.ScheduleDetail, error) {
	if err := policy.Authorize(caller, policy.ActionList, policy.ResourceSchedule); err != nil {
		return nil, err
	}
	var opts contract.ScheduleFilterOptions
	if q.DayOfWeek != nil && *q.DayOfWeek != "" {
		day := entity.DayOfWeek(strings.ToLower(*q.DayOfWeek))
		opts.DayOfWeek = &day
	}
	if q.Level != nil && *q.Level != "" {
		level := entity.ClassLevel(strings.ToLower(*q.Level))
		opts.Level = &level
	}
	schedules, err := uc.scheduleRepo.ListSchedules(ctx, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(schedules))
	for _, s := range schedules {
		if s.InstructorID != nil {
			ids = append(ids, *s.InstructorID)
		}
	}
	instructors, err := uc.instructorRepo.GetInstructorsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]usecasecontract.ScheduleDetail, len(schedules))
	for i, s := range schedules {
		out[i] = usecasecontract.ScheduleDetail{Schedule: s}
		if s.InstructorID != nil {
			out[i].Instructor = instructors[*s.InstructorID]
		}
	}
	return out, nil
}

func (uc *ScheduleUseCaseImpl) GetSchedule(ctx context.Context, caller entity.Caller, id int64) (*usecasecontract.ScheduleDetail, error) {
	if err := policy.Authorize(caller, policy.ActionRead, policy.ResourceSchedule); err != nil {
		return nil, err
	}
	schedule, err := uc.scheduleRepo.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Schedule", err)
	}
	return uc.detail(ctx, schedule)
}

func (uc *ScheduleUseCaseImpl) CreateSchedule(ctx context.Context, caller entity.Caller, in usecasecontract.ScheduleInput) (*usecasecontract.ScheduleDetail, error) {
	if err := policy.Authorize(caller, policy.ActionCreate, policy.ResourceSchedule); err != nil {
		return nil, err
	}
	schedule := &entity.Schedule{}
	if err := uc.merge(ctx, schedule, in); err != nil {
		return nil, err
	}
	if err := uc.scheduleRepo.CreateSchedule(ctx, schedule); err != nil {
		uc.logger.Errorf("failed to create schedule: %v", err)
		return nil, err
	}
	return uc.detail(ctx, schedule)
}

func (uc *ScheduleUseCaseImpl) UpdateSchedule(ctx context.Context, caller entity.Caller, id int64, in usecasecontract.ScheduleInput) (*usecasecontract.ScheduleDetail, error) {
	if err := policy.Authorize(caller, policy.ActionUpdate, policy.ResourceSchedule); err != nil {
		return nil, err
	}
	schedule, err := uc.scheduleRepo.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Schedule", err)
	}
	if err := uc.merge(ctx, schedule, in); err != nil {
		return nil, err
	}
	if err := uc.scheduleRepo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, orNotFound("Schedule", err)
	}
	return uc.detail(ctx, schedule)
}

func (uc *ScheduleUseCaseImpl) DeleteSchedule(ctx context.Context, caller entity.Caller, id int64) error {
	if err := policy.Authorize(caller, policy.ActionDelete, policy.ResourceSchedule); err != nil {
		return err
	}
	if _, err := uc.scheduleRepo.GetScheduleByID(ctx, id); err != nil {
		return orNotFound("Schedule", err)
	}
	// Schedule first: a failed cleanup leaves orphaned registrations, never a
	// visible class that lost its members.
	if err := uc.scheduleRepo.DeleteSchedule(ctx, id); err != nil {
		return orNotFound("Schedule", err)
	}
	removed, err := uc.registrationRepo.DeleteRegistrationsBySchedule(ctx, id)
	if err != nil {
		uc.logger.Errorf("schedule %d deleted but its registrations were not: %v", id, err)
		return err
	}
	uc.logger.Infof("schedule %d deleted with %d registrations", id, removed)
	return nil
}

// merge applies the present fields, then validates the result.
func (uc *ScheduleUseCaseImpl) merge(ctx context.Context, s *entity.Schedule, in usecasecontract.ScheduleInput) error {
	if in.DayOfWeek != nil {
		s.DayOfWeek = entity.DayOfWeek(*in.DayOfWeek)
	}
	if in.StartTime != nil {
		s.StartTime = normalizeTimeOfDay(*in.StartTime)
	}
	if in.EndTime != nil {
		s.EndTime = normalizeTimeOfDay(*in.EndTime)
	}
	if in.Level != nil {
		s.Level = entity.ClassLevel(*in.Level)
	}
	setOptional(&s.Description, in.Description)
	if in.Price != nil {
		price := normalizePrice(*in.Price)
		setOptional(&s.Price, &price)
	}
	if in.InstructorID != nil {
		id := *in.InstructorID
		s.InstructorID = &id
	}

	violations := uc.validator.Validate(scheduleRules(s))
	if s.InstructorID != nil {
		if _, err := uc.instructorRepo.GetInstructorByID(ctx, *s.InstructorID); err != nil {
			if !errors.Is(err, entity.ErrNotFound) {
				return err
			}
			violations = append(violations, instructorMissingViolation)
		}
	}
	return entity.NewValidationError(violations)
}

func (uc *ScheduleUseCaseImpl) detail(ctx context.Context, s *entity.Schedule) (*usecasecontract.ScheduleDetail, error) {
	d := &usecasecontract.ScheduleDetail{Schedule: s}
	if s.InstructorID == nil {
		return d, nil
	}
	instructor, err := uc.instructorRepo.GetInstructorByID(ctx, *s.InstructorID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return d, nil
		}
		return nil, err
	}
	d.Instructor = instructor
	return d, nil
}
