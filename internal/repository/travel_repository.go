package repository

import (
	"context"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
)

// StatusComparison compares a package status against models.PackageStatusDraft.
type StatusComparison string

const (
	CompareEqual StatusComparison = "="
	CompareAbove StatusComparison = ">"
)

func (c StatusComparison) Operator() string {
	if c == CompareEqual {
		return "="
	}
	return ">"
}

type PackageFilter struct {
	Keyword string
	Compare StatusComparison
	Page    int
}

type TravelPackageRepository interface {
	FindAll(ctx context.Context, filter PackageFilter) ([]models.TravelPackage, int, error)
	Options(ctx context.Context, compare StatusComparison) ([]models.TravelPackage, error)
	FindBySlug(ctx context.Context, slug string) (*models.TravelPackage, error)
	FindByID(ctx context.Context, id int64) (*models.TravelPackage, error)
}

type TravelGalleryRepository interface {
	CountByPackage(ctx context.Context, packageID int64) (int, error)
	FindByPackage(ctx context.Context, packageID int64) ([]models.TravelGallery, error)
	FindBySlug(ctx context.Context, slug string) (*models.TravelGallery, error)
	Create(ctx context.Context, gallery *models.TravelGallery) error
	Delete(ctx context.Context, id int64) error
}
