package usecase_test

import (
	"context"
	"testing"

	"github.com/judoclub/clubsite/internal/domain/entity"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerInput(email string) usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		Email:       strPtr(email),
		Password:    strPtr("secret123"),
		FirstName:   strPtr("Jean"),
		LastName:    strPtr("Dupont"),
		DateOfBirth: strPtr("1985-05-15"),
	}
}

func TestRegisterLoginAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Register(ctx, registerInput("jean@example.com"))
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, []entity.UserRole{entity.UserRoleUser}, user.Roles)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	require.NotNil(t, user.DateOfBirth)
	assert.Equal(t, "1985-05-15", user.DateOfBirth.Format("2006-01-02"))

	token, err := f.users.Login(ctx, "JEAN@example.com", "secret123")
	require.NoError(t, err)

	caller, err := f.users.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, caller.UserID)
	assert.Equal(t, entity.AccessUser, caller.Level())
}

func TestRegisterCollectsViolations(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Register(context.Background(), usecasecontract.RegisterInput{
		Email:    strPtr("nope"),
		Password: strPtr("abc"),
	})
	got := violations(t, err)
	assert.Contains(t, got, "email: This value is not a valid email address.")
	assert.Contains(t, got, "password: This value is too short. It should have 6 characters or more.")
	assert.Contains(t, got, "firstName: This value should not be blank.")
	assert.Contains(t, got, "lastName: This value should not be blank.")
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.users.Register(ctx, registerInput("jean@example.com"))
	require.NoError(t, err)

	_, err = f.users.Register(ctx, registerInput("Jean@Example.com"))
	assert.Equal(t, []string{"email: This value is already used."}, violations(t, err))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.users.Register(ctx, registerInput("jean@example.com"))
	require.NoError(t, err)

	_, err = f.users.Login(ctx, "jean@example.com", "wrong-password")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	_, err = f.users.Login(ctx, "ghost@example.com", "secret123")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.Authenticate(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestProfileRequiresLogin(t *testing.T) {
	f := newFixture(t)
	_, err := f.users.GetProfile(context.Background(), anon)
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
}

func TestUpdateProfileMergesPresentFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.users.Register(ctx, registerInput("jean@example.com"))
	require.NoError(t, err)
	caller := user.Caller()

	updated, err := f.users.UpdateProfile(ctx, caller, usecasecontract.ProfileInput{Phone: strPtr("0601020304")})
	require.NoError(t, err)
	assert.Equal(t, "Jean", updated.FirstName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "0601020304", *updated.Phone)

	_, err = f.users.UpdateProfile(ctx, caller, usecasecontract.ProfileInput{FirstName: strPtr(""), DateOfBirth: strPtr("yesterday")})
	got := violations(t, err)
	assert.Contains(t, got, "firstName: This value should not be blank.")
	assert.Contains(t, got, "dateOfBirth: This value is not a valid date.")

	stored, err := f.users.GetProfile(ctx, caller)
	require.NoError(t, err)
	assert.Equal(t, "Jean", stored.FirstName)
}
