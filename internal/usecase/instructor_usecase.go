package usecase

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/domain/policy"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

type InstructorUseCaseImpl struct {
	instructorRepo contract.IInstructorRepository
	scheduleRepo   contract.IScheduleRepository
	validator      usecasecontract.IValidator
	logger         usecasecontract.IAppLogger
}

var _ usecasecontract.IInstructorUseCase = (*InstructorUseCaseImpl)(nil)

func NewInstructorUseCase(
	instructorRepo contract.IInstructorRepository,
	scheduleRepo contract.IScheduleRepository,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *InstructorUseCaseImpl {
	return &InstructorUseCaseImpl{
		instructorRepo: instructorRepo,
		scheduleRepo:   scheduleRepo,
		validator:      validator,
		logger:         logger,
	}
}

func (uc *InstructorUseCaseImpl) ListInstructors(ctx context.Context, caller entity.Caller) ([]*entity.Instructor, error) {
	if err := policy.Authorize(caller, policy.ActionList, policy.ResourceInstructor); err != nil {
		return nil, err
	}
	return uc.instructorRepo.ListInstructors(ctx)
}

func (uc *InstructorUseCaseImpl) GetInstructor(ctx context.Context, caller entity.Caller, id int64) (*entity.Instructor, error) {
	if err := policy.Authorize(caller, policy.ActionRead, policy.ResourceInstructor); err != nil {
		return nil, err
	}
	instructor, err := uc.instructorRepo.GetInstructorByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Instructor", err)
	}
	return instructor, nil
}

func (uc *InstructorUseCaseImpl) CreateInstructor(ctx context.Context, caller entity.Caller, in usecasecontract.InstructorInput) (*entity.Instructor, error) {
	if err := policy.Authorize(caller, policy.ActionCreate, policy.ResourceInstructor); err != nil {
		return nil, err
	}
	instructor := &entity.Instructor{}
	applyInstructorInput(instructor, in)
	if err := entity.NewValidationError(uc.validator.Validate(instructorRules(instructor))); err != nil {
		return nil, err
	}
	if err := uc.instructorRepo.CreateInstructor(ctx, instructor); err != nil {
		uc.logger.Errorf("failed to create instructor: %v", err)
		return nil, err
	}
	return instructor, nil
}

func (uc *InstructorUseCaseImpl) UpdateInstructor(ctx context.Context, caller entity.Caller, id int64, in usecasecontract.InstructorInput) (*entity.Instructor, error) {
	if err := policy.Authorize(caller, policy.ActionUpdate, policy.ResourceInstructor); err != nil {
		return nil, err
	}
	instructor, err := uc.instructorRepo.GetInstructorByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Instructor", err)
	}
	applyInstructorInput(instructor, in)
	if err := entity.NewValidationError(uc.validator.Validate(instructorRules(instructor))); err != nil {
		return nil, err
	}
	if err := uc.instructorRepo.UpdateInstructor(ctx, instructor); err != nil {
		return nil, orNotFound("Instructor", err)
	}
	return instructor, nil
}

// DeleteInstructor removes the instructor and leaves its classes without one.
func (uc *InstructorUseCaseImpl) DeleteInstructor(ctx context.Context, caller entity.Caller, id int64) error {
	if err := policy.Authorize(caller, policy.ActionDelete, policy.ResourceInstructor); err != nil {
		return err
	}
	if _, err := uc.instructorRepo.GetInstructorByID(ctx, id); err != nil {
		return orNotFound("Instructor", err)
	}
	if err := uc.scheduleRepo.DetachInstructor(ctx, id); err != nil {
		uc.logger.Errorf("failed to detach instructor %d from schedules: %v", id, err)
		return err
	}
	if err := uc.instructorRepo.DeleteInstructor(ctx, id); err != nil {
		return orNotFound("Instructor", err)
	}
	return nil
}

func applyInstructorInput(i *entity.Instructor, in usecasecontract.InstructorInput) {
	setString(&i.Name, in.Name)
	setOptional(&i.Bio, in.Bio)
	setString(&i.BeltRank, in.BeltRank)
	setOptional(&i.PhotoURL, in.PhotoURL)
}
