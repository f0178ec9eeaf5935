package mocks

import (
	"context"
	"errors"

	"github.com/judoclub/clubsite/internal/domain/entity"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegister      bool
	RegisterViolations      []string
	ShouldFailLogin         bool
	ShouldFailAuthenticate  bool
	ShouldFailUpdateProfile bool

	// Return values
	MockUser        entity.User
	MockAccessToken string

	// Recorded inputs
	LastRegisterInput usecasecontract.RegisterInput
	LastLoginEmail    string
	LastProfileCaller entity.Caller
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        2,
			Email:     "user@example.com",
			FirstName: "Jean",
			LastName:  "Dupont",
			Roles:     []entity.UserRole{entity.UserRoleUser},
		},
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.User, error) {
	m.LastRegisterInput = in
	if m.ShouldFailRegister {
		return nil, entity.NewValidationError(m.RegisterViolations)
	}
	user := m.MockUser
	if in.Email != nil {
		user.Email = *in.Email
	}
	return &user, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (string, error) {
	m.LastLoginEmail = email
	if m.ShouldFailLogin {
		return "", entity.ErrInvalidCredentials
	}
	return m.MockAccessToken, nil
}

func (m *MockUserUsecase) Authenticate(ctx context.Context, accessToken string) (entity.Caller, error) {
	if m.ShouldFailAuthenticate || accessToken != m.MockAccessToken {
		return entity.Anonymous(), entity.ErrUnauthenticated
	}
	return m.MockUser.Caller(), nil
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, caller entity.Caller) (*entity.User, error) {
	m.LastProfileCaller = caller
	if !caller.IsAuthenticated() {
		return nil, entity.ErrUnauthenticated
	}
	user := m.MockUser
	return &user, nil
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, caller entity.Caller, in usecasecontract.ProfileInput) (*entity.User, error) {
	m.LastProfileCaller = caller
	if !caller.IsAuthenticated() {
		return nil, entity.ErrUnauthenticated
	}
	if m.ShouldFailUpdateProfile {
		return nil, errors.New("mock update failure")
	}
	user := m.MockUser
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	return &user, nil
}
