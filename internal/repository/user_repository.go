package repository

import (
	"context"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
