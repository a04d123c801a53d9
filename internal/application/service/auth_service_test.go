package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pharmacore/pms-api/internal/domain/entity"
	infraRepo "github.com/pharmacore/pms-api/internal/infrastructure/repository"
	"github.com/pharmacore/pms-api/pkg/apperror"
	"github.com/pharmacore/pms-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(infraRepo.NewUserRepository(db), jwtManager)
}

func registerInput(email string) *RegisterInput {
	return &RegisterInput{
		FirstName: "Test",
		LastName:  "Pharmacist",
		Email:     email,
		Password:  "secret123",
		Role:      entity.RolePharmacist,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("staff@pharmacy.test"))
	require.NoError(t, err)
	assert.Equal(t, entity.RolePharmacist, user.Role)
	assert.NotEqual(t, "secret123", user.Password)

	loggedIn, tokens, err := svc.Login(ctx, "staff@pharmacy.test", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("staff@pharmacy.test"))
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerInput("staff@pharmacy.test"))
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := newAuthService(t)

	input := registerInput("staff@pharmacy.test")
	input.Role = "superuser"
	_, err := svc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("staff@pharmacy.test"))
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "staff@pharmacy.test", "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@pharmacy.test", "secret123")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput("staff@pharmacy.test"))
	require.NoError(t, err)
	_, tokens, err := svc.Login(ctx, "staff@pharmacy.test", "secret123")
	require.NoError(t, err)

	fresh, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	_, err = svc.RefreshToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, registerInput("staff@pharmacy.test"))
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong", "newpass456")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "secret123", "newpass456"))

	_, _, err = svc.Login(ctx, "staff@pharmacy.test", "newpass456")
	assert.NoError(t, err)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
