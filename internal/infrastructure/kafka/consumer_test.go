package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeleter struct {
	deleted []string
	fail    map[string]error
}

func (d *fakeDeleter) Delete(ctx context.Context, path string) error {
	if err, ok := d.fail[path]; ok {
		return err
	}
	d.deleted = append(d.deleted, path)
	return nil
}

func TestOrphanConsumer_Handle(t *testing.T) {
	ctx := context.Background()
	value, err := json.Marshal(OrphanEvent{
		Paths:  []string{"travel-galleries/a.png", "travel-galleries/thumbnails/a.png"},
		Reason: "create_failed",
	})
	require.NoError(t, err)

	t.Run("deletes every path", func(t *testing.T) {
		files := &fakeDeleter{}
		consumer := &OrphanConsumer{files: files}

		require.NoError(t, consumer.Handle(ctx, value))
		assert.Equal(t, []string{"travel-galleries/a.png", "travel-galleries/thumbnails/a.png"}, files.deleted)
	})

	t.Run("continues past a failure", func(t *testing.T) {
		busy := errors.New("device busy")
		files := &fakeDeleter{fail: map[string]error{"travel-galleries/a.png": busy}}
		consumer := &OrphanConsumer{files: files}

		err := consumer.Handle(ctx, value)
		assert.ErrorIs(t, err, busy)
		assert.Equal(t, []string{"travel-galleries/thumbnails/a.png"}, files.deleted)
	})

	t.Run("malformed payload", func(t *testing.T) {
		consumer := &OrphanConsumer{files: &fakeDeleter{}}
		assert.Error(t, consumer.Handle(ctx, []byte("{")))
	})
}
