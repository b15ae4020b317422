package repository

import "context"

type Tx interface {
	Commit() error
	Rollback() error
}

// Transactor starts database transactions. Repository calls made with the
// returned context run inside the transaction until it is committed or rolled back.
type Transactor interface {
	Begin(ctx context.Context) (context.Context, Tx, error)
}
