package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/kafka"
	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/observability"
	"github.com/Antontokarchuk0302/Travelsite/internal/infrastructure/storage"
	"github.com/Antontokarchuk0302/Travelsite/internal/models"
	"github.com/Antontokarchuk0302/Travelsite/internal/repository"
	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	DefaultGalleryCapacity = 5

	GalleryDir   = "travel-galleries"
	ThumbnailDir = "travel-galleries/thumbnails"

	fullWidth       = 1024
	fullHeight      = 683
	thumbnailWidth  = 400
	thumbnailHeight = 267
)

// UploadLocker serializes gallery uploads per travel package.
type UploadLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

type GalleryService interface {
	List(ctx context.Context, keyword string, page int) (models.Page[models.TravelPackage], error)
	PackageOptions(ctx context.Context) ([]models.TravelPackage, error)
	Show(ctx context.Context, slug string) (*models.TravelPackage, error)
	CreateGallery(ctx context.Context, input CreateGalleryInput, actor models.Actor) (Outcome, error)
	DeleteGallery(ctx context.Context, slug string, actor models.Actor) (Outcome, error)
}

type Upload struct {
	Filename string
	Content  io.Reader
}

type CreateGalleryInput struct {
	TravelPackageID int64 `validate:"required,gt=0"`
	Image           Upload
}

type galleryService struct {
	packages  repository.TravelPackageRepository
	galleries repository.TravelGalleryRepository
	store     storage.AssetStore
	runner    *Runner
	locker    UploadLocker
	producer  kafka.KafkaProducer
	capacity  int
}

// NewGalleryService wires the gallery manager. locker and producer may be nil;
// without a locker concurrent uploads for one package can overshoot capacity.
func NewGalleryService(
	packages repository.TravelPackageRepository,
	galleries repository.TravelGalleryRepository,
	store storage.AssetStore,
	runner *Runner,
	locker UploadLocker,
	producer kafka.KafkaProducer,
	capacity int,
) *galleryService {
	if capacity <= 0 {
		capacity = DefaultGalleryCapacity
	}
	return &galleryService{
		packages:  packages,
		galleries: galleries,
		store:     store,
		runner:    runner,
		locker:    locker,
		producer:  producer,
		capacity:  capacity,
	}
}

func GalleryPath(name string) string {
	return GalleryDir + "/" + name
}

func ThumbnailPath(name string) string {
	return ThumbnailDir + "/" + name
}

func (s *galleryService) List(ctx context.Context, keyword string, page int) (models.Page[models.TravelPackage], error) {
	if page < 1 {
		page = 1
	}
	items, total, err := s.packages.FindAll(ctx, repository.PackageFilter{
		Keyword: keyword,
		Compare: repository.CompareAbove,
		Page:    page,
	})
	if err != nil {
		return models.Page[models.TravelPackage]{}, err
	}
	return models.NewPage(items, total, page), nil
}

func (s *galleryService) PackageOptions(ctx context.Context) ([]models.TravelPackage, error) {
	return s.packages.Options(ctx, repository.CompareAbove)
}

func (s *galleryService) Show(ctx context.Context, slug string) (*models.TravelPackage, error) {
	pkg, err := s.packages.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	galleries, err := s.galleries.FindByPackage(ctx, pkg.ID)
	if err != nil {
		return nil, err
	}
	pkg.Galleries = galleries
	pkg.GalleriesCount = len(galleries)
	return pkg, nil
}

func (s *galleryService) CreateGallery(ctx context.Context, input CreateGalleryInput, actor models.Actor) (Outcome, error) {
	tracer := otel.Tracer("gallery-service")
	ctx, span := tracer.Start(ctx, "CreateGallery")
	defer span.End()
	span.SetAttributes(attribute.Int64("travel_package_id", input.TravelPackageID), attribute.String("filename", input.Image.Filename))

	if input.TravelPackageID <= 0 || input.Image.Content == nil || input.Image.Filename == "" {
		span.SetStatus(codes.Error, "invalid input")
		return Outcome{}, pkgerrors.ErrInvalidInput
	}

	var created *models.TravelGallery
	result := s.runner.Run(ctx, MsgTravelGalleryCreated, false, func(ctx context.Context) error {
		if s.locker != nil {
			release, err := s.locker.Acquire(ctx, fmt.Sprintf("gallery:package:%d:lock", input.TravelPackageID))
			if err != nil {
				if errors.Is(err, pkgerrors.ErrUploadInProgress) {
					return err
				}
				return failStep(MsgFailedCreateTravelGallery, err)
			}
			defer release()
		}

		if err := s.checkCapacity(ctx, input.TravelPackageID); err != nil {
			return err
		}

		name, err := s.createImage(ctx, input.Image)
		if err != nil {
			return err
		}

		gallery := &models.TravelGallery{
			Slug:            slugFromFileName(name),
			TravelPackageID: input.TravelPackageID,
			Name:            name,
			UploadedBy:      actor.ID,
		}
		if err := s.galleries.Create(ctx, gallery); err != nil {
			s.deleteImage(ctx, name, "create_failed")
			return failStep(MsgFailedCreateTravelGallery, err)
		}
		created = gallery
		return nil
	})

	if !result.OK {
		observability.GalleryUploads.WithLabelValues("failed").Inc()
		span.SetStatus(codes.Error, result.Message)
		return newOutcome(RouteTravelGalleriesIndex, result), nil
	}

	observability.GalleryUploads.WithLabelValues("success").Inc()
	slog.Info("travel gallery created", "slug", created.Slug, "travel_package_id", created.TravelPackageID, "uploaded_by", actor.ID)
	kafka.PublishAudit(ctx, s.producer, kafka.AuditEvent{
		EventType: "travel_gallery.created",
		Subject:   created.Slug,
		ActorID:   actor.ID,
		Message:   result.Message,
	})
	return newOutcome(RouteTravelGalleriesIndex, result), nil
}

func (s *galleryService) DeleteGallery(ctx context.Context, slug string, actor models.Actor) (Outcome, error) {
	tracer := otel.Tracer("gallery-service")
	ctx, span := tracer.Start(ctx, "DeleteGallery")
	defer span.End()
	span.SetAttributes(attribute.String("slug", slug))

	gallery, err := s.galleries.FindBySlug(ctx, slug)
	if err != nil {
		span.RecordError(err)
		return Outcome{}, err
	}

	result := s.runner.Run(ctx, MsgTravelGalleryDeleted, false, func(ctx context.Context) error {
		name := gallery.Name

		if err := s.galleries.Delete(ctx, gallery.ID); err != nil {
			return failStep(MsgFailedDeleteTravelGallery, err)
		}

		s.deleteImage(ctx, name, "gallery_deleted")
		return nil
	})

	if result.OK {
		slog.Info("travel gallery deleted", "slug", slug, "actor_id", actor.ID)
		kafka.PublishAudit(ctx, s.producer, kafka.AuditEvent{
			EventType: "travel_gallery.deleted",
			Subject:   slug,
			ActorID:   actor.ID,
			Message:   result.Message,
		})
	}
	return newOutcome(RouteTravelGalleriesIndex, result), nil
}

// checkCapacity fails once the package holds capacity galleries or more.
func (s *galleryService) checkCapacity(ctx context.Context, packageID int64) error {
	if _, err := s.packages.FindByID(ctx, packageID); err != nil {
		return err
	}

	count, err := s.galleries.CountByPackage(ctx, packageID)
	if err != nil {
		return failStep(MsgFailedCreateTravelGallery, err)
	}
	if count >= s.capacity {
		return failStep(fmt.Sprintf(MsgCapacityExceeded, s.capacity), pkgerrors.ErrCapacityExceeded)
	}
	return nil
}

// createImage writes the full size image and its thumbnail and returns the
// stored file name shared by both.
func (s *galleryService) createImage(ctx context.Context, upload Upload) (string, error) {
	img, err := s.store.Decode(upload.Content)
	if err != nil {
		return "", failStep(MsgFailedCreateTravelGallery, err)
	}

	name := storedFileName(upload.Filename)

	if err := s.store.ResizeAndSave(ctx, img, fullWidth, fullHeight, GalleryPath(name)); err != nil {
		return "", failStep(MsgFailedCreateTravelGallery, err)
	}
	if err := s.store.ResizeAndSave(ctx, img, thumbnailWidth, thumbnailHeight, ThumbnailPath(name)); err != nil {
		s.deleteImage(ctx, name, "create_failed")
		return "", failStep(MsgFailedCreateTravelGallery, err)
	}
	return name, nil
}

// deleteImage removes both files of a gallery. Failures are logged, counted
// and reported for later cleanup; they never fail the caller.
func (s *galleryService) deleteImage(ctx context.Context, name, reason string) {
	var orphans []string
	for _, path := range []string{GalleryPath(name), ThumbnailPath(name)} {
		if err := s.store.Delete(ctx, path); err != nil {
			slog.Error("failed to delete gallery image", "path", path, "reason", reason, "error", err)
			observability.OrphanedFiles.WithLabelValues(reason).Inc()
			orphans = append(orphans, path)
		}
	}
	kafka.PublishOrphans(ctx, s.producer, reason, orphans...)
}

// storedFileName keeps a sanitized base of the client file name and its
// extension, with a UUID in between so names never collide.
func storedFileName(original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(base))
	stem := sanitize(strings.TrimSuffix(base, filepath.Ext(base)))
	if stem == "" {
		stem = "image"
	}
	return fmt.Sprintf("%s-%s%s", stem, uuid.NewString(), ext)
}

func slugFromFileName(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
}

func sanitize(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
