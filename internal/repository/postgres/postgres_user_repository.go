package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
)

const userTracer = "user-repository"

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (_ *models.User, err error) {
	ctx, _, done := instrument(ctx, userTracer, "GetUserByID")
	defer done(&err)

	query := `SELECT id, username, role, created_at FROM users WHERE id = $1`
	var user models.User
	err = r.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Username, &user.Role, &user.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = pkgerrors.ErrUserNotFound
		return nil, err
	case err != nil:
		slog.Error("failed to get user by id", "method", "GetByID", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (_ *models.User, err error) {
	ctx, _, done := instrument(ctx, userTracer, "GetUserByUsername")
	defer done(&err)

	if username == "" {
		err = pkgerrors.ErrInvalidInput
		return nil, err
	}

	query := `SELECT id, username, password_hash, role, created_at FROM users WHERE username = $1`

	var user models.User
	err = r.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = pkgerrors.ErrUserNotFound
		return nil, err
	case err != nil:
		slog.Error("failed to get user by username", "method", "GetByUsername", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}
