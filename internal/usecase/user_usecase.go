package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/domain/policy"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

const emailTakenViolation = "email: This value is already used."

// UserUsecase implements the UserUseCase interface.
type UserUsecase struct {
	userRepo   contract.IUserRepository
	hasher     contract.IHasher
	jwtService JWTService
	logger     usecasecontract.IAppLogger
	validator  usecasecontract.IValidator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
		validator:  validator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register handles user registration.
func (uc *UserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, error) {
	createdAt := now()
	user := &entity.User{
		Roles:     []entity.UserRole{entity.DefaultRole()},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	var violations []string
	if in.Email != nil {
		user.Email = strings.TrimSpace(*in.Email)
	}
	setString(&user.FirstName, in.FirstName)
	setString(&user.LastName, in.LastName)
	setOptional(&user.Phone, in.Phone)
	setOptional(&user.Address, in.Address)
	mergeDate("dateOfBirth", in.DateOfBirth, &user.DateOfBirth, &violations)

	rules := userRules(user)
	rules = append(rules, rule{Field: "password", Value: in.Password, Tags: "notblank,min=6"})
	violations = append(uc.validator.Validate(rules), violations...)

	// Check if user with same email already exists
	if user.Email != "" {
		existing, err := uc.userRepo.GetUserByEmail(ctx, user.Email)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Errorf("failed to check for existing user by email: %v", err)
			return nil, err
		}
		if existing != nil {
			violations = append(violations, emailTakenViolation)
		}
	}
	if err := entity.NewValidationError(violations); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.hasher.HashPassword(*in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process password: %w", err)
	}
	user.PasswordHash = hashedPassword

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return nil, entity.NewValidationError([]string{emailTakenViolation})
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, err
	}
	uc.logger.Infof("user registered: id=%d", user.ID)
	return user, nil
}

// Login checks the credentials and issues an access token.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", entity.ErrInvalidCredentials
		}
		return "", err
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID, user.Roles)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return "", err
	}
	return token, nil
}

// Authenticate resolves a bearer token into a caller. Roles are read from the
// stored account so a revoked admin loses access before the token expires.
func (uc *UserUsecase) Authenticate(ctx context.Context, accessToken string) (entity.Caller, error) {
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return entity.Anonymous(), fmt.Errorf("%w: %v", entity.ErrUnauthenticated, err)
	}
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Anonymous(), fmt.Errorf("%w: unknown user %d", entity.ErrUnauthenticated, claims.UserID)
		}
		return entity.Anonymous(), err
	}
	return user.Caller(), nil
}

func (uc *UserUsecase) GetProfile(ctx context.Context, caller entity.Caller) (*entity.User, error) {
	if err := policy.Authorize(caller, policy.ActionRead, policy.ResourceProfile); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetUserByID(ctx, caller.UserID)
	if err != nil {
		return nil, orNotFound("User", err)
	}
	return user, nil
}

// UpdateProfile merges the given fields into the caller's own account.
func (uc *UserUsecase) UpdateProfile(ctx context.Context, caller entity.Caller, in usecasecontract.ProfileInput) (*entity.User, error) {
	if err := policy.Authorize(caller, policy.ActionUpdate, policy.ResourceProfile); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetUserByID(ctx, caller.UserID)
	if err != nil {
		return nil, orNotFound("User", err)
	}

	var violations []string
	setString(&user.FirstName, in.FirstName)
	setString(&user.LastName, in.LastName)
	setOptional(&user.Phone, in.Phone)
	setOptional(&user.Address, in.Address)
	mergeDate("dateOfBirth", in.DateOfBirth, &user.DateOfBirth, &violations)

	violations = append(uc.validator.Validate(userRules(user)), violations...)
	if err := entity.NewValidationError(violations); err != nil {
		return nil, err
	}

	user.UpdatedAt = time.Now()
	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update profile of user %d: %v", user.ID, err)
		return nil, err
	}
	return updated, nil
}
