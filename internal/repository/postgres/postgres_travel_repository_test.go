package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository/postgres"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresTravelPackageRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTravelPackageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM travel_packages tp WHERE tp.title ILIKE $1 AND tp.status > $2`)).
		WithArgs("%bali%", 0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT tp\.title, tp\.slug, COUNT\(tg\.id\) AS travel_galleries_count .* LEFT JOIN travel_galleries tg .* GROUP BY tp\.id`).
		WithArgs("%bali%", 0, models.PerPage, 0).
		WillReturnRows(sqlmock.NewRows([]string{"title", "slug", "travel_galleries_count"}).
			AddRow("Bali Escape", "bali-escape", 4))

	items, total, err := repo.FindAll(context.Background(), repository.PackageFilter{
		Keyword: "bali",
		Compare: repository.CompareAbove,
		Page:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, []models.TravelPackage{{Title: "Bali Escape", Slug: "bali-escape", GalleriesCount: 4}}, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTravelPackageRepository_Options(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTravelPackageRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title FROM travel_packages WHERE status = $1 ORDER BY created_at DESC`)).
		WithArgs(0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(5, "Draft Trip"))

	options, err := repo.Options(context.Background(), repository.CompareEqual)
	require.NoError(t, err)
	assert.Equal(t, []models.TravelPackage{{ID: 5, Title: "Draft Trip"}}, options)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTravelPackageRepository_Find(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTravelPackageRepository(db)
	ctx := context.Background()
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "title", "slug", "status", "created_at"}

	t.Run("BySlug", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, slug, status, created_at FROM travel_packages WHERE slug = $1`)).
			WithArgs("bali-escape").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(3, "Bali Escape", "bali-escape", 1, created))

		pkg, err := repo.FindBySlug(ctx, "bali-escape")
		require.NoError(t, err)
		assert.Equal(t, &models.TravelPackage{ID: 3, Title: "Bali Escape", Slug: "bali-escape", Status: 1, CreatedAt: created}, pkg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ByIDNotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, slug, status, created_at FROM travel_packages WHERE id = $1`)).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		pkg, err := repo.FindByID(ctx, 99)
		assert.Nil(t, pkg)
		assert.ErrorIs(t, err, pkgerrors.ErrTravelPackageNotFound)
		assert.True(t, pkgerrors.IsNotFound(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTravelGalleryRepository_CountByPackage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTravelGalleryRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM travel_galleries WHERE travel_package_id = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountByPackage(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresTravelGalleryRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTravelGalleryRepository(db)
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO travel_galleries (slug, travel_package_id, name, uploaded_by) VALUES ($1, $2, $3, $4) RETURNING id, created_at`)

	t.Run("Success", func(t *testing.T) {
		created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		gallery := &models.TravelGallery{Slug: "bali-1", TravelPackageID: 3, Name: "bali-1.png", UploadedBy: 7}
		mock.ExpectQuery(query).
			WithArgs("bali-1", int64(3), "bali-1.png", int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, created))

		require.NoError(t, repo.Create(ctx, gallery))
		assert.Equal(t, int64(42), gallery.ID)
		assert.Equal(t, created, gallery.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NilGallery", func(t *testing.T) {
		assert.ErrorIs(t, repo.Create(ctx, nil), pkgerrors.ErrNilGallery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateName", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("bali-1", int64(3), "bali-1.png", int64(7)).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value"})

		err := repo.Create(ctx, &models.TravelGallery{Slug: "bali-1", TravelPackageID: 3, Name: "bali-1.png", UploadedBy: 7})
		assert.ErrorIs(t, err, pkgerrors.ErrConstraintViolation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DatabaseError", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(fmt.Errorf("database error"))

		err := repo.Create(ctx, &models.TravelGallery{Slug: "x", TravelPackageID: 3, Name: "x.png", UploadedBy: 7})
		assert.NotErrorIs(t, err, pkgerrors.ErrConstraintViolation)
		assert.Contains(t, err.Error(), "failed to create travel gallery")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresTravelGalleryRepository_FindAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := postgres.NewPostgresTravelGalleryRepository(db)
	ctx := context.Background()
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "slug", "travel_package_id", "name", "uploaded_by", "created_at"}

	t.Run("FindByPackage", func(t *testing.T) {
		mock.ExpectQuery(`FROM travel_galleries WHERE travel_package_id = \$1 ORDER BY created_at`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "a", 3, "a.png", 7, created).
				AddRow(2, "b", 3, "b.png", 7, created))

		galleries, err := repo.FindByPackage(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, galleries, 2)
		assert.Equal(t, "b.png", galleries[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("FindBySlugNotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM travel_galleries WHERE slug = $1`)).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		gallery, err := repo.FindBySlug(ctx, "missing")
		assert.Nil(t, gallery)
		assert.ErrorIs(t, err, pkgerrors.ErrTravelGalleryNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM travel_galleries WHERE id = $1`)).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 42))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM travel_galleries WHERE id = $1`)).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 42), pkgerrors.ErrNoRowsAffected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
