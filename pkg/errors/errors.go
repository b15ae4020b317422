package errors

import (
	"errors"
	"fmt"
)

var (
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrTravelPackageNotFound = errors.New("travel package not found")
	ErrTravelGalleryNotFound = errors.New("travel gallery not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrNilGallery            = errors.New("travel gallery is nil")
	ErrInvalidStatus         = errors.New("invalid transaction status")
	ErrNoRowsAffected        = errors.New("no rows affected")
	ErrConstraintViolation   = errors.New("constraint violation")
	ErrCapacityExceeded      = errors.New("travel gallery capacity exceeded")
	ErrUploadInProgress      = errors.New("another upload for this travel package is in progress")
	ErrInvalidCredentials    = fmt.Errorf("invalid credentials")
	ErrForbidden             = fmt.Errorf("forbidden")
	ErrInvalidInput          = fmt.Errorf("invalid input")
)

// IsNotFound reports whether err is one of the lookup misses.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrTravelPackageNotFound) ||
		errors.Is(err, ErrTravelGalleryNotFound) ||
		errors.Is(err, ErrUserNotFound)
}
