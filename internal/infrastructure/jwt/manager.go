package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/judoclub/clubsite/internal/domain/contract"
)

var ErrInvalidToken = errors.New("invalid token")

// CustomClaims is the payload of an access token.
type CustomClaims struct {
	Roles []string `json:"roles"`
	jwtlib.RegisteredClaims
}

// JWTManager signs and verifies HS256 access tokens.
type JWTManager struct {
	secret    []byte
	accessTTL time.Duration
	ids       contract.IUUIDGenerator
	now       func() time.Time
}

func NewJWTManager(secret string, accessTTL time.Duration, ids contract.IUUIDGenerator) *JWTManager {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	return &JWTManager{
		secret:    []byte(secret),
		accessTTL: accessTTL,
		ids:       ids,
		now:       time.Now,
	}
}

// GenerateAccessToken issues a token for subject carrying roles.
func (m *JWTManager) GenerateAccessToken(subject string, roles []string) (string, error) {
	now := m.now()
	claims := CustomClaims{
		Roles: roles,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subject,
			ID:        m.ids.NewUUID(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(m.accessTTL)),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature, algorithm and expiry.
func (m *JWTManager) VerifyToken(tokenStr string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, func(t *jwtlib.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
