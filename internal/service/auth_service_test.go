package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"condo-settlement/internal/core/domain"
	"condo-settlement/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupAuthService(t *testing.T) (
	*AuthServiceImpl,
	*mocks.MockUserRepository,
	*mocks.MockHashService,
	*mocks.MockTokenService,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	hashSvc := mocks.NewMockHashService(ctrl)
	tokenSvc := mocks.NewMockTokenService(ctrl)

	svc := NewAuthService(userRepo, hashSvc, tokenSvc)
	return svc, userRepo, hashSvc, tokenSvc, ctrl
}

func activeOwner() *domain.User {
	return &domain.User{
		ID:           3,
		Name:         "Ana Torres",
		Email:        "ana@condo.example",
		PasswordHash: "$argon2id$hashed",
		Role:         domain.RoleOwner,
		Active:       true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo, hashSvc, tokenSvc, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	ctx := context.Background()
	user := activeOwner()
	expiry := time.Now().Add(24 * time.Hour)

	userRepo.EXPECT().GetByEmail(ctx, "ana@condo.example").Return(user, nil)
	hashSvc.EXPECT().Verify("correct-password", user.PasswordHash).Return(true, nil)
	tokenSvc.EXPECT().Generate(int64(3), domain.RoleOwner).Return("jwt-token", expiry, nil)

	res, err := svc.Login(ctx, "  Ana@Condo.example ", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
	assert.Equal(t, expiry, res.ExpiresAt)
	assert.Equal(t, user, res.User)
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	svc, userRepo, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	userRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@condo.example").Return(nil, nil)

	res, err := svc.Login(context.Background(), "nobody@condo.example", "pw")
	assert.Nil(t, res)
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	user := activeOwner()
	userRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	hashSvc.EXPECT().Verify("wrong", user.PasswordHash).Return(false, nil)

	_, err := svc.Login(context.Background(), user.Email, "wrong")
	assertAppError(t, err, "AUTH_001")
}

func TestAuthService_Login_Inactive(t *testing.T) {
	svc, userRepo, hashSvc, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	user := activeOwner()
	user.Active = false
	userRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
	hashSvc.EXPECT().Verify("pw", user.PasswordHash).Return(true, nil)

	_, err := svc.Login(context.Background(), user.Email, "pw")
	assertAppError(t, err, "AUTH_004")
}

func TestAuthService_Login_RepoError(t *testing.T) {
	svc, userRepo, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	userRepo.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := svc.Login(context.Background(), "ana@condo.example", "pw")
	assertAppError(t, err, "SYS_001")
}

func TestAuthService_Me(t *testing.T) {
	svc, userRepo, _, _, ctrl := setupAuthService(t)
	defer ctrl.Finish()

	userRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(activeOwner(), nil)
	userRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

	user, err := svc.Me(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Ana Torres", user.Name)

	_, err = svc.Me(context.Background(), 99)
	assertAppError(t, err, "USR_001")
}
