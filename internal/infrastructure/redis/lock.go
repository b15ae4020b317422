package redis

import (
	"context"
	"log/slog"
	"time"

	pkgerrors "github.com/Antontokarchuk0302/Travelsite/pkg/errors"
	"github.com/google/uuid"
)

// Locker hands out short-lived exclusive keys. A lock that is never released
// expires after ttl.
type Locker struct {
	client RedisClient
	ttl    time.Duration
}

func NewLocker(client RedisClient, ttl time.Duration) *Locker {
	return &Locker{client: client, ttl: ttl}
}

// Acquire returns pkgerrors.ErrUploadInProgress when key is already held.
// The returned release only deletes the key while it still carries this
// holder's token, so a holder that outlived ttl cannot free a successor's lock.
func (l *Locker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, key, token, l.ttl)
	if err != nil {
		slog.Error("failed to acquire lock", "lock_key", key, "error", err)
		return nil, err
	}
	if !ok {
		slog.Warn("lock is held", "lock_key", key)
		return nil, pkgerrors.ErrUploadInProgress
	}

	return func() {
		released, err := l.client.CompareAndDelete(context.WithoutCancel(ctx), key, token)
		if err != nil {
			slog.Error("failed to release lock", "lock_key", key, "error", err)
			return
		}
		if !released {
			slog.Warn("lock expired before release", "lock_key", key, "ttl", l.ttl)
		}
	}, nil
}
