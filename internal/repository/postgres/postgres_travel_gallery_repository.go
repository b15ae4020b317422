package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const travelGalleryTracer = "travel-gallery-repository"

type PostgresTravelGalleryRepository struct {
	db *sql.DB
}

func NewPostgresTravelGalleryRepository(db *sql.DB) *PostgresTravelGalleryRepository {
	return &PostgresTravelGalleryRepository{db: db}
}

func (r *PostgresTravelGalleryRepository) CountByPackage(ctx context.Context, packageID int64) (_ int, err error) {
	ctx, span, done := instrument(ctx, travelGalleryTracer, "CountTravelGalleries")
	defer done(&err)
	span.SetAttributes(attribute.Int64("travel_package_id", packageID))

	var count int
	query := `SELECT COUNT(*) FROM travel_galleries WHERE travel_package_id = $1`
	if err = conn(ctx, r.db).QueryRowContext(ctx, query, packageID).Scan(&count); err != nil {
		slog.Error("failed to count travel galleries", "method", "CountByPackage", "travel_package_id", packageID, "error", err)
		return 0, fmt.Errorf("failed to count travel galleries: %w", err)
	}
	return count, nil
}

func (r *PostgresTravelGalleryRepository) FindByPackage(ctx context.Context, packageID int64) (_ []models.TravelGallery, err error) {
	ctx, _, done := instrument(ctx, travelGalleryTracer, "FindTravelGalleriesByPackage")
	defer done(&err)

	query := `SELECT id, slug, travel_package_id, name, uploaded_by, created_at
		FROM travel_galleries WHERE travel_package_id = $1 ORDER BY created_at`
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, packageID)
	if err != nil {
		slog.Error("failed to list travel galleries", "method", "FindByPackage", "travel_package_id", packageID, "error", err)
		return nil, fmt.Errorf("failed to list travel galleries: %w", err)
	}
	defer rows.Close()

	var galleries []models.TravelGallery
	for rows.Next() {
		var g models.TravelGallery
		if err = rows.Scan(&g.ID, &g.Slug, &g.TravelPackageID, &g.Name, &g.UploadedBy, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan travel gallery: %w", err)
		}
		galleries = append(galleries, g)
	}
	return galleries, rows.Err()
}

func (r *PostgresTravelGalleryRepository) FindBySlug(ctx context.Context, slug string) (_ *models.TravelGallery, err error) {
	ctx, span, done := instrument(ctx, travelGalleryTracer, "FindTravelGalleryBySlug")
	defer done(&err)
	span.SetAttributes(attribute.String("slug", slug))

	var g models.TravelGallery
	query := `SELECT id, slug, travel_package_id, name, uploaded_by, created_at FROM travel_galleries WHERE slug = $1`
	err = conn(ctx, r.db).QueryRowContext(ctx, query, slug).Scan(&g.ID, &g.Slug, &g.TravelPackageID, &g.Name, &g.UploadedBy, &g.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		slog.Warn("travel gallery not found", "method", "FindBySlug", "slug", slug)
		err = pkgerrors.ErrTravelGalleryNotFound
		return nil, err
	}
	if err != nil {
		slog.Error("failed to get travel gallery", "method", "FindBySlug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get travel gallery by slug: %w", err)
	}
	return &g, nil
}

func (r *PostgresTravelGalleryRepository) Create(ctx context.Context, gallery *models.TravelGallery) (err error) {
	ctx, span, done := instrument(ctx, travelGalleryTracer, "CreateTravelGallery")
	defer done(&err)

	if gallery == nil {
		err = pkgerrors.ErrNilGallery
		slog.Error("failed to create travel gallery", "method", "Create", "error", err)
		return err
	}
	span.SetAttributes(attribute.Int64("travel_package_id", gallery.TravelPackageID), attribute.String("name", gallery.Name))

	query := `INSERT INTO travel_galleries (slug, travel_package_id, name, uploaded_by) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err = conn(ctx, r.db).QueryRowContext(ctx, query, gallery.Slug, gallery.TravelPackageID, gallery.Name, gallery.UploadedBy).
		Scan(&gallery.ID, &gallery.CreatedAt)
	if err != nil {
		slog.Error("failed to create travel gallery", "method", "Create", "travel_package_id", gallery.TravelPackageID, "name", gallery.Name, "error", err)
		err = writeError("failed to create travel gallery", err)
		return err
	}

	slog.Info("travel gallery created", "method", "Create", "id", gallery.ID, "slug", gallery.Slug, "travel_package_id", gallery.TravelPackageID)
	return nil
}

func (r *PostgresTravelGalleryRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, _, done := instrument(ctx, travelGalleryTracer, "DeleteTravelGallery")
	defer done(&err)

	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM travel_galleries WHERE id = $1`, id)
	if err != nil {
		slog.Error("failed to delete travel gallery", "method", "Delete", "id", id, "error", err)
		return writeError("failed to delete travel gallery", err)
	}
	if err = checkAffected("failed to delete travel gallery", res); err != nil {
		return err
	}

	slog.Info("travel gallery deleted", "method", "Delete", "id", id)
	return nil
}
