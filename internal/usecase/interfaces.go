package usecase

import (
	"github.com/judoclub/clubsite/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID int64, roles []entity.UserRole) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
