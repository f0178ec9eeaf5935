package contract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUsersByIDs resolves owners for registration listings. Unknown ids are skipped.
	GetUsersByIDs(ctx context.Context, ids []int64) (map[int64]*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
}
