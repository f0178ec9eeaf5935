package usecasecontract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

// RegisterInput carries an account creation request. Nil fields were absent.
type RegisterInput struct {
	Email       *string
	Password    *string
	FirstName   *string
	LastName    *string
	Phone       *string
	Address     *string
	DateOfBirth *string
}

// ProfileInput carries the fields a member may change on their own account.
type ProfileInput struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	Address     *string
	DateOfBirth *string
}

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, accessToken string) (entity.Caller, error)
	GetProfile(ctx context.Context, caller entity.Caller) (*entity.User, error)
	UpdateProfile(ctx context.Context, caller entity.Caller, in ProfileInput) (*entity.User, error)
}
