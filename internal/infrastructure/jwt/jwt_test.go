package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/infrastructure/uuidgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService(NewJWTManager("test-secret", time.Hour, uuidgen.NewGenerator()))

	token, err := svc.GenerateAccessToken(42, []entity.UserRole{entity.UserRoleUser, entity.UserRoleAdmin})
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, []entity.UserRole{entity.UserRoleUser, entity.UserRoleAdmin}, claims.Roles)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, "42", claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("one", time.Hour, uuidgen.NewGenerator())
	verifier := NewJWTManager("two", time.Hour, uuidgen.NewGenerator())

	token, err := issuer.GenerateAccessToken("1", []string{"user"})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	mgr := NewJWTManager("secret", time.Minute, uuidgen.NewGenerator())
	mgr.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := mgr.GenerateAccessToken("1", nil)
	require.NoError(t, err)

	mgr.now = time.Now
	_, err = mgr.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherAlgorithms(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour, uuidgen.NewGenerator())
	claims := CustomClaims{RegisteredClaims: jwtlib.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = mgr.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsNonNumericSubject(t *testing.T) {
	mgr := NewJWTManager("secret", time.Hour, uuidgen.NewGenerator())
	svc := NewJWTService(mgr)
	token, err := mgr.GenerateAccessToken("abc", nil)
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
