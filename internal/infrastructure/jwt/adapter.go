package jwt

import (
	"fmt"
	"strconv"

	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
// It converts between numeric user ids and the string subject claim.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

var _ usecase.JWTService = (*JWTServiceAdapter)(nil)

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a user.
func (a *JWTServiceAdapter) GenerateAccessToken(userID int64, roles []entity.UserRole) (string, error) {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return a.mgr.GenerateAccessToken(strconv.FormatInt(userID, 10), names)
}

// ParseAccessToken validates an access token and returns Claims.
func (a *JWTServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	customClaims, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	userID, err := strconv.ParseInt(customClaims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	roles := make([]entity.UserRole, len(customClaims.Roles))
	for i, r := range customClaims.Roles {
		roles[i] = entity.UserRole(r)
	}
	return &entity.Claims{
		UserID:           userID,
		Roles:            roles,
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}
