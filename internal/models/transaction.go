package models

import "time"

type Transaction struct {
	ID                 int64             `json:"-"`
	InvoiceNumber      string            `json:"invoice_number"`
	TravelPackageID    int64             `json:"travel_package_id"`
	TravelPackageTitle string            `json:"travel_package_title,omitempty"`
	Total              int64             `json:"total"`
	Status             TransactionStatus `json:"status"`
	DeletedAt          *time.Time        `json:"deleted_at,omitempty"`
	DeletedBy          *int64            `json:"deleted_by,omitempty"`
	UpdatedBy          *int64            `json:"updated_by,omitempty"`
	DetailsCount       int               `json:"transaction_details_count,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type TransactionStatus string

const (
	StatusInCart  TransactionStatus = "IN_CART"
	StatusPending TransactionStatus = "PENDING"
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusCancel  TransactionStatus = "CANCEL"
	StatusFailed  TransactionStatus = "FAILED"
)

// TransactionStatuses lists every status an admin may assign, in display order.
var TransactionStatuses = []TransactionStatus{StatusInCart, StatusPending, StatusSuccess, StatusCancel, StatusFailed}

func (s TransactionStatus) Valid() bool {
	for _, status := range TransactionStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type State int

const (
	StateActive State = iota
	StateTrashed
)

func (s State) String() string {
	if s == StateTrashed {
		return "trashed"
	}
	return "active"
}

// Tombstone marks a soft-deleted transaction.
type Tombstone struct {
	At time.Time
	By *int64
}

func (t *Transaction) State() State {
	if t.DeletedAt != nil {
		return StateTrashed
	}
	return StateActive
}

func (t *Transaction) Tombstone() (Tombstone, bool) {
	if t.DeletedAt == nil {
		return Tombstone{}, false
	}
	return Tombstone{At: *t.DeletedAt, By: t.DeletedBy}, true
}
