package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/auth"
	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/redis"
	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, userID int64) error
	Profile(ctx context.Context, userID int64) (*models.User, error)
}

type authService struct {
	users       repository.UserRepository
	redisClient redis.RedisClient
	jwtSecret   string
}

func NewAuthService(users repository.UserRepository, redisClient redis.RedisClient, jwtSecret string) *authService {
	return &authService{users: users, redisClient: redisClient, jwtSecret: jwtSecret}
}

func TokenKey(userID int64) string {
	return auth.TokenKey(userID)
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	tracer := otel.Tracer("auth-service")
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		slog.Error("failed to login", "username", username, "error", err)
		span.SetStatus(codes.Error, "user lookup failed")
		return "", pkgerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Error("invalid password", "username", username)
		span.SetStatus(codes.Error, "invalid password")
		return "", pkgerrors.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		slog.Error("failed to generate JWT", "error", err)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.redisClient.Set(ctx, TokenKey(user.ID), tokenString, tokenTTL); err != nil {
		slog.Error("failed to cache JWT", "user_id", user.ID, "error", err)
		return "", fmt.Errorf("failed to store token: %w", err)
	}

	slog.Info("user logged in", "username", username, "user_id", user.ID, "role", user.Role)
	return tokenString, nil
}

func (s *authService) Logout(ctx context.Context, userID int64) error {
	if err := s.redisClient.Del(ctx, TokenKey(userID)); err != nil {
		slog.Error("failed to revoke JWT", "user_id", userID, "error", err)
		return err
	}
	slog.Info("user logged out", "user_id", userID)
	return nil
}

func (s *authService) Profile(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
