package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/auth"
	redismocks "github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/redis/mocks"
	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	repositorymocks "github.com/Antontokarchuk0302/Travelsite/internal/repository/mocks"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repositorymocks.NewMockUserRepository(ctrl)
	redisClient := redismocks.NewMockRedisClient(ctrl)

	ctx := context.Background()
	jwtSecret := "secret"
	service := NewAuthService(userRepo, redisClient, jwtSecret)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 1, Username: "admin", PasswordHash: string(hashedPassword), Role: models.RoleSuperAdmin}

	t.Run("successful login", func(t *testing.T) {
		userRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(user, nil)
		redisClient.EXPECT().Set(gomock.Any(), "user:1:token", gomock.Any(), time.Hour).Return(nil)

		token, err := service.Login(ctx, "admin", "testpass")
		require.NoError(t, err)

		actor, err := auth.ParseToken(token, jwtSecret)
		require.NoError(t, err)
		assert.Equal(t, models.Actor{ID: 1, Role: models.RoleSuperAdmin}, actor)
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, pkgerrors.ErrUserNotFound)

		token, err := service.Login(ctx, "ghost", "testpass")
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(user, nil)

		token, err := service.Login(ctx, "admin", "wrongpass")
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("token cache unavailable", func(t *testing.T) {
		userRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(user, nil)
		redisClient.EXPECT().Set(gomock.Any(), "user:1:token", gomock.Any(), time.Hour).Return(errors.New("redis down"))

		token, err := service.Login(ctx, "admin", "testpass")
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := repositorymocks.NewMockUserRepository(ctrl)
	service := NewAuthService(userRepo, redismocks.NewMockRedisClient(ctrl), "secret")

	userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin}, nil)
	user, err := service.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	userRepo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(nil, pkgerrors.ErrUserNotFound)
	_, err = service.Profile(context.Background(), 2)
	assert.ErrorIs(t, err, pkgerrors.ErrUserNotFound)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisClient := redismocks.NewMockRedisClient(ctrl)
	service := NewAuthService(repositorymocks.NewMockUserRepository(ctrl), redisClient, "secret")

	redisClient.EXPECT().Del(gomock.Any(), "user:5:token").Return(nil)
	assert.NoError(t, service.Logout(context.Background(), 5))

	redisClient.EXPECT().Del(gomock.Any(), "user:5:token").Return(errors.New("redis down"))
	assert.Error(t, service.Logout(context.Background(), 5))
}
