package usecase

import (
	"context"
	"time"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/domain/policy"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

type EventUseCaseImpl struct {
	eventRepo contract.IEventRepository
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
	clock     func() time.Time
}

var _ usecasecontract.IEventUseCase = (*EventUseCaseImpl)(nil)

func NewEventUseCase(eventRepo contract.IEventRepository, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *EventUseCaseImpl {
	return &EventUseCaseImpl{eventRepo: eventRepo, validator: validator, logger: logger, clock: time.Now}
}

func (uc *EventUseCaseImpl) ListEvents(ctx context.Context, caller entity.Caller, q usecasecontract.EventQuery) ([]*entity.Event, error) {
	if err := policy.Authorize(caller, policy.ActionList, policy.ResourceEvent); err != nil {
		return nil, err
	}
	var opts contract.EventFilterOptions
	if q.Type != nil && *q.Type != "" {
		opts.Type = q.Type
	}
	if q.Upcoming {
		t := uc.clock()
		opts.UpcomingAfter = &t
	}
	return uc.eventRepo.ListEvents(ctx, opts)
}

func (uc *EventUseCaseImpl) GetEvent(ctx context.Context, caller entity.Caller, id int64) (*entity.Event, error) {
	if err := policy.Authorize(caller, policy.ActionRead, policy.ResourceEvent); err != nil {
		return nil, err
	}
	event, err := uc.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Event", err)
	}
	return event, nil
}

func (uc *EventUseCaseImpl) CreateEvent(ctx context.Context, caller entity.Caller, in usecasecontract.EventInput) (*entity.Event, error) {
	if err := policy.Authorize(caller, policy.ActionCreate, policy.ResourceEvent); err != nil {
		return nil, err
	}
	event := &entity.Event{}
	if err := uc.merge(event, in); err != nil {
		return nil, err
	}
	if err := uc.eventRepo.CreateEvent(ctx, event); err != nil {
		uc.logger.Errorf("failed to create event: %v", err)
		return nil, err
	}
	return event, nil
}

func (uc *EventUseCaseImpl) UpdateEvent(ctx context.Context, caller entity.Caller, id int64, in usecasecontract.EventInput) (*entity.Event, error) {
	if err := policy.Authorize(caller, policy.ActionUpdate, policy.ResourceEvent); err != nil {
		return nil, err
	}
	event, err := uc.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Event", err)
	}
	if err := uc.merge(event, in); err != nil {
		return nil, err
	}
	if err := uc.eventRepo.UpdateEvent(ctx, event); err != nil {
		return nil, orNotFound("Event", err)
	}
	return event, nil
}

func (uc *EventUseCaseImpl) DeleteEvent(ctx context.Context, caller entity.Caller, id int64) error {
	if err := policy.Authorize(caller, policy.ActionDelete, policy.ResourceEvent); err != nil {
		return err
	}
	if err := uc.eventRepo.DeleteEvent(ctx, id); err != nil {
		return orNotFound("Event", err)
	}
	return nil
}

func (uc *EventUseCaseImpl) merge(e *entity.Event, in usecasecontract.EventInput) error {
	var violations []string
	setString(&e.Title, in.Title)
	setString(&e.Description, in.Description)
	setString(&e.Location, in.Location)
	setOptional(&e.ImageURL, in.ImageURL)
	setString(&e.Type, in.Type)
	if in.Date != nil {
		if t, ok := parseDateTime(*in.Date); ok {
			e.Date = t
		} else if *in.Date != "" {
			violations = append(violations, "date: This value is not a valid datetime.")
		}
	}
	violations = append(uc.validator.Validate(eventRules(e)), violations...)
	return entity.NewValidationError(violations)
}
