package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"go.opentelemetry.io/otel/attribute"
)

const travelPackageTracer = "travel-package-repository"

type PostgresTravelPackageRepository struct {
	db *sql.DB
}

func NewPostgresTravelPackageRepository(db *sql.DB) *PostgresTravelPackageRepository {
	return &PostgresTravelPackageRepository{db: db}
}

func (r *PostgresTravelPackageRepository) FindAll(ctx context.Context, filter repository.PackageFilter) (_ []models.TravelPackage, _ int, err error) {
	ctx, span, done := instrument(ctx, travelPackageTracer, "FindAllTravelPackages")
	defer done(&err)
	span.SetAttributes(attribute.String("keyword", filter.Keyword), attribute.Int("page", filter.Page))

	where := fmt.Sprintf(`tp.title ILIKE $1 AND tp.status %s $2`, filter.Compare.Operator())
	db := conn(ctx, r.db)

	var total int
	if err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM travel_packages tp WHERE `+where,
		likePattern(filter.Keyword), models.PackageStatusDraft).Scan(&total); err != nil {
		slog.Error("failed to count travel packages", "method", "FindAll", "error", err)
		return nil, 0, fmt.Errorf("failed to count travel packages: %w", err)
	}

	query := `SELECT tp.title, tp.slug, COUNT(tg.id) AS travel_galleries_count
		FROM travel_packages tp
		LEFT JOIN travel_galleries tg ON tg.travel_package_id = tp.id
		WHERE ` + where + `
		GROUP BY tp.id
		ORDER BY tp.created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := db.QueryContext(ctx, query, likePattern(filter.Keyword), models.PackageStatusDraft, models.PerPage, models.Offset(filter.Page))
	if err != nil {
		slog.Error("failed to list travel packages", "method", "FindAll", "error", err)
		return nil, 0, fmt.Errorf("failed to list travel packages: %w", err)
	}
	defer rows.Close()

	var packages []models.TravelPackage
	for rows.Next() {
		var p models.TravelPackage
		if err = rows.Scan(&p.Title, &p.Slug, &p.GalleriesCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan travel package: %w", err)
		}
		packages = append(packages, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate travel packages: %w", err)
	}
	return packages, total, nil
}

func (r *PostgresTravelPackageRepository) Options(ctx context.Context, compare repository.StatusComparison) (_ []models.TravelPackage, err error) {
	ctx, _, done := instrument(ctx, travelPackageTracer, "TravelPackageOptions")
	defer done(&err)

	query := fmt.Sprintf(`SELECT id, title FROM travel_packages WHERE status %s $1 ORDER BY created_at DESC`, compare.Operator())
	rows, err := conn(ctx, r.db).QueryContext(ctx, query, models.PackageStatusDraft)
	if err != nil {
		slog.Error("failed to list travel package options", "method", "Options", "error", err)
		return nil, fmt.Errorf("failed to list travel package options: %w", err)
	}
	defer rows.Close()

	var packages []models.TravelPackage
	for rows.Next() {
		var p models.TravelPackage
		if err = rows.Scan(&p.ID, &p.Title); err != nil {
			return nil, fmt.Errorf("failed to scan travel package: %w", err)
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (r *PostgresTravelPackageRepository) FindBySlug(ctx context.Context, slug string) (_ *models.TravelPackage, err error) {
	ctx, span, done := instrument(ctx, travelPackageTracer, "FindTravelPackageBySlug")
	defer done(&err)
	span.SetAttributes(attribute.String("slug", slug))

	var p models.TravelPackage
	query := `SELECT id, title, slug, status, created_at FROM travel_packages WHERE slug = $1`
	err = conn(ctx, r.db).QueryRowContext(ctx, query, slug).Scan(&p.ID, &p.Title, &p.Slug, &p.Status, &p.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		slog.Warn("travel package not found", "method", "FindBySlug", "slug", slug)
		err = pkgerrors.ErrTravelPackageNotFound
		return nil, err
	}
	if err != nil {
		slog.Error("failed to get travel package", "method", "FindBySlug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get travel package by slug: %w", err)
	}
	return &p, nil
}

func (r *PostgresTravelPackageRepository) FindByID(ctx context.Context, id int64) (_ *models.TravelPackage, err error) {
	ctx, span, done := instrument(ctx, travelPackageTracer, "FindTravelPackageByID")
	defer done(&err)
	span.SetAttributes(attribute.Int64("travel_package_id", id))

	var p models.TravelPackage
	query := `SELECT id, title, slug, status, created_at FROM travel_packages WHERE id = $1`
	err = conn(ctx, r.db).QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Slug, &p.Status, &p.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		slog.Warn("travel package not found", "method", "FindByID", "travel_package_id", id)
		err = pkgerrors.ErrTravelPackageNotFound
		return nil, err
	}
	if err != nil {
		slog.Error("failed to get travel package", "method", "FindByID", "travel_package_id", id, "error", err)
		return nil, fmt.Errorf("failed to get travel package by id: %w", err)
	}
	return &p, nil
}
