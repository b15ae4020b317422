package models

import "time"

type PackageStatus int

// PackageStatusDraft is the baseline status; anything above it is visible in the admin gallery views.
const PackageStatusDraft PackageStatus = 0

type TravelPackage struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Slug           string          `json:"slug"`
	Status         PackageStatus   `json:"status"`
	GalleriesCount int             `json:"travel_galleries_count"`
	Galleries      []TravelGallery `json:"travel_galleries,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type TravelGallery struct {
	ID              int64     `json:"-"`
	Slug            string    `json:"slug"`
	TravelPackageID int64     `json:"travel_package_id"`
	Name            string    `json:"name"`
	UploadedBy      int64     `json:"uploaded_by"`
	CreatedAt       time.Time `json:"created_at"`
}
