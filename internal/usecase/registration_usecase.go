package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/domain/policy"
	"github.com/judoclub/clubsite/internal/infrastructure/metrics"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/judoclub/clubsite/internal/utils"
)

const (
	DefaultRegistrationLimit = 20

	scheduleMissingViolation = "scheduleId: Schedule not found."
)

// RegistrationUseCaseImpl manages class registrations. Members see and edit
// their own; status and notes are reserved to administrators.
type RegistrationUseCaseImpl struct {
	registrationRepo contract.IRegistrationRepository
	scheduleRepo     contract.IScheduleRepository
	userRepo         contract.IUserRepository
	exporter         contract.IRegistrationExporter
	validator        usecasecontract.IValidator
	logger           usecasecontract.IAppLogger
	clock            func() time.Time
}

var _ usecasecontract.IRegistrationUseCase = (*RegistrationUseCaseImpl)(nil)

func NewRegistrationUseCase(
	registrationRepo contract.IRegistrationRepository,
	scheduleRepo contract.IScheduleRepository,
	userRepo contract.IUserRepository,
	exporter contract.IRegistrationExporter,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *RegistrationUseCaseImpl {
	return &RegistrationUseCaseImpl{
		registrationRepo: registrationRepo,
		scheduleRepo:     scheduleRepo,
		userRepo:         userRepo,
		exporter:         exporter,
		validator:        validator,
		logger:           logger,
		clock:            time.Now,
	}
}

// ListRegistrations pages through every registration for administrators and
// returns the caller's own registrations otherwise.
func (uc *RegistrationUseCaseImpl) ListRegistrations(ctx context.Context, caller entity.Caller, q usecasecontract.RegistrationQuery) (*usecasecontract.RegistrationList, error) {
	if err := policy.Authorize(caller, policy.ActionList, policy.ResourceRegistration); err != nil {
		return nil, err
	}

	if !policy.CanPerform(caller, policy.ActionListAll, policy.ResourceRegistration) {
		userID := caller.UserID
		registrations, err := uc.registrationRepo.ListRegistrations(ctx, contract.RegistrationFilterOptions{UserID: &userID})
		if err != nil {
			return nil, err
		}
		details, err := uc.details(ctx, registrations, false)
		if err != nil {
			return nil, err
		}
		return &usecasecontract.RegistrationList{Registrations: details}, nil
	}

	page, limit := utils.NormalizePage(q.Page, q.Limit)
	var opts contract.RegistrationFilterOptions
	if q.Status != nil && *q.Status != "" {
		status := entity.RegistrationStatus(*q.Status)
		opts.Status = &status
	}
	registrations, total, err := uc.registrationRepo.ListRegistrationsPage(ctx, opts, contract.Page{Offset: utils.Offset(page, limit), Limit: limit})
	if err != nil {
		uc.logger.Errorf("failed to list registrations: %v", err)
		return nil, err
	}
	details, err := uc.details(ctx, registrations, true)
	if err != nil {
		return nil, err
	}
	meta := utils.Paginate(page, limit, total)
	return &usecasecontract.RegistrationList{Registrations: details, Pagination: &meta}, nil
}

func (uc *RegistrationUseCaseImpl) GetRegistration(ctx context.Context, caller entity.Caller, id int64) (*usecasecontract.RegistrationDetail, error) {
	if err := policy.Authorize(caller, policy.ActionRead, policy.ResourceRegistration); err != nil {
		return nil, err
	}
	registration, err := uc.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return uc.detail(ctx, registration, nil, caller.IsAdmin())
}

// CreateRegistration registers the caller for a class. The owner is always
// the caller.
func (uc *RegistrationUseCaseImpl) CreateRegistration(ctx context.Context, caller entity.Caller, in usecasecontract.RegistrationInput) (*usecasecontract.RegistrationDetail, error) {
	if err := policy.Authorize(caller, policy.ActionCreate, policy.ResourceRegistration); err != nil {
		return nil, err
	}
	registration := &entity.Registration{
		UserID:    caller.UserID,
		Status:    entity.RegistrationPending,
		CreatedAt: now(),
	}
	schedule, err := uc.merge(ctx, caller, registration, in)
	if err != nil {
		return nil, err
	}
	if err := uc.registrationRepo.CreateRegistration(ctx, registration); err != nil {
		uc.logger.Errorf("failed to create registration: %v", err)
		return nil, err
	}
	go metrics.IncRegistration(string(schedule.Level))
	uc.logger.Infof("registration %d created by user %d for schedule %d", registration.ID, caller.UserID, registration.ScheduleID)
	return uc.detail(ctx, registration, schedule, caller.IsAdmin())
}

func (uc *RegistrationUseCaseImpl) UpdateRegistration(ctx context.Context, caller entity.Caller, id int64, in usecasecontract.RegistrationInput) (*usecasecontract.RegistrationDetail, error) {
	if err := policy.Authorize(caller, policy.ActionUpdate, policy.ResourceRegistration); err != nil {
		return nil, err
	}
	registration, err := uc.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	schedule, err := uc.merge(ctx, caller, registration, in)
	if err != nil {
		return nil, err
	}
	if err := uc.registrationRepo.UpdateRegistration(ctx, registration); err != nil {
		return nil, orNotFound("Registration", err)
	}
	return uc.detail(ctx, registration, schedule, caller.IsAdmin())
}

func (uc *RegistrationUseCaseImpl) DeleteRegistration(ctx context.Context, caller entity.Caller, id int64) error {
	if err := policy.Authorize(caller, policy.ActionDelete, policy.ResourceRegistration); err != nil {
		return err
	}
	if err := uc.registrationRepo.DeleteRegistration(ctx, id); err != nil {
		return orNotFound("Registration", err)
	}
	return nil
}

// ExportRegistrations renders every registration for the back office.
func (uc *RegistrationUseCaseImpl) ExportRegistrations(ctx context.Context, caller entity.Caller) (*usecasecontract.RegistrationExport, error) {
	if err := policy.Authorize(caller, policy.ActionExport, policy.ResourceRegistration); err != nil {
		return nil, err
	}
	registrations, err := uc.registrationRepo.ListRegistrations(ctx, contract.RegistrationFilterOptions{})
	if err != nil {
		return nil, err
	}
	details, err := uc.details(ctx, registrations, true)
	if err != nil {
		return nil, err
	}
	rows := make([]contract.ExportRow, len(details))
	for i, d := range details {
		rows[i] = contract.ExportRow{Registration: d.Registration, User: d.User, Schedule: d.Schedule}
	}
	content, err := uc.exporter.Export(rows)
	if err != nil {
		uc.logger.Errorf("failed to export registrations: %v", err)
		return nil, err
	}
	return &usecasecontract.RegistrationExport{
		Filename:    fmt.Sprintf("registrations-%s.xlsx", uc.clock().Format("20060102")),
		ContentType: uc.exporter.ContentType(),
		Content:     content,
	}, nil
}

// load fetches a registration and applies the ownership rule.
func (uc *RegistrationUseCaseImpl) load(ctx context.Context, caller entity.Caller, id int64) (*entity.Registration, error) {
	registration, err := uc.registrationRepo.GetRegistrationByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Registration", err)
	}
	if !policy.CanAccessRegistration(caller, registration) {
		return nil, entity.ErrForbidden
	}
	return registration, nil
}

// merge applies the present fields, validates, and resolves the schedule.
func (uc *RegistrationUseCaseImpl) merge(ctx context.Context, caller entity.Caller, r *entity.Registration, in usecasecontract.RegistrationInput) (*entity.Schedule, error) {
	if in.ScheduleID != nil {
		r.ScheduleID = *in.ScheduleID
	}
	if caller.IsAdmin() {
		if in.Status != nil {
			r.Status = entity.RegistrationStatus(*in.Status)
		}
		setOptional(&r.Notes, in.Notes)
	}
	setOptional(&r.MedicalCertificateFile, in.MedicalCertificateFile)
	setOptional(&r.Experience, in.Experience)
	setBool(&r.Newsletter, in.Newsletter)

	violations := uc.validator.Validate(registrationRules(r))
	var schedule *entity.Schedule
	if r.ScheduleID != 0 {
		s, err := uc.scheduleRepo.GetScheduleByID(ctx, r.ScheduleID)
		switch {
		case err == nil:
			schedule = s
		case errors.Is(err, entity.ErrNotFound):
			violations = append(violations, scheduleMissingViolation)
		default:
			return nil, err
		}
	}
	if err := entity.NewValidationError(violations); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (uc *RegistrationUseCaseImpl) detail(ctx context.Context, r *entity.Registration, schedule *entity.Schedule, withUser bool) (*usecasecontract.RegistrationDetail, error) {
	d := &usecasecontract.RegistrationDetail{Registration: r, Schedule: schedule}
	if schedule == nil {
		s, err := uc.scheduleRepo.GetScheduleByID(ctx, r.ScheduleID)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		d.Schedule = s
	}
	if withUser {
		u, err := uc.userRepo.GetUserByID(ctx, r.UserID)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		d.User = u
	}
	return d, nil
}

// details resolves schedules and, for the admin view, owners in two batch
// lookups.
func (uc *RegistrationUseCaseImpl) details(ctx context.Context, registrations []*entity.Registration, withUser bool) ([]usecasecontract.RegistrationDetail, error) {
	scheduleIDs := make([]int64, 0, len(registrations))
	userIDs := make([]int64, 0, len(registrations))
	for _, r := range registrations {
		scheduleIDs = append(scheduleIDs, r.ScheduleID)
		userIDs = append(userIDs, r.UserID)
	}
	schedules, err := uc.scheduleRepo.GetSchedulesByIDs(ctx, scheduleIDs)
	if err != nil {
		return nil, err
	}
	var users map[int64]*entity.User
	if withUser {
		if users, err = uc.userRepo.GetUsersByIDs(ctx, userIDs); err != nil {
			return nil, err
		}
	}

	out := make([]usecasecontract.RegistrationDetail, len(registrations))
	for i, r := range registrations {
		out[i] = usecasecontract.RegistrationDetail{Registration: r, Schedule: schedules[r.ScheduleID]}
		if withUser {
			out[i].User = users[r.UserID]
		}
	}
	return out, nil
}
