package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-tracker/internal/core/domain"
)

func TestDialogLifecycle(t *testing.T) {
	d := NewDialog()
	assert.False(t, d.View().Open())

	d.Open(domain.Campaign{ID: 4, Name: "Spring Sale"})
	v := d.View()
	require.True(t, v.Open())
	assert.False(t, v.Loading())
	assert.Equal(t, "Delete Campaign", v.Title)
	assert.Equal(t, `Are you sure you want to delete "Spring Sale"? This action cannot be undone.`, v.Description)

	var seen int64
	require.NoError(t, d.Confirm(context.Background(), func(_ context.Context, c domain.Campaign) error {
		seen = c.ID
		assert.True(t, d.View().Loading())
		return nil
	}))
	assert.Equal(t, int64(4), seen)
	assert.False(t, d.View().Open())
}

func TestDialogConfirmWhenClosed(t *testing.T) {
	d := NewDialog()
	err := d.Confirm(context.Background(), func(context.Context, domain.Campaign) error {
		t.Fatal("action must not run")
		return nil
	})
	assert.ErrorIs(t, err, ErrDialogClosed)
}

// TestDialogRejectsDoubleConfirm ensures the confirm action cannot be
// re-invoked while the first one is in flight.
func TestDialogRejectsDoubleConfirm(t *testing.T) {
	d := NewDialog()
	d.Open(domain.Campaign{ID: 1, Name: "A"})

	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- d.Confirm(context.Background(), func(context.Context, domain.Campaign) error {
			calls.Add(1)
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	err := d.Confirm(context.Background(), func(context.Context, domain.Campaign) error {
		calls.Add(1)
		return nil
	})
	assert.ErrorIs(t, err, ErrDialogBusy)

	// cancel and re-open are ignored while confirming
	d.Cancel()
	d.Open(domain.Campaign{ID: 2, Name: "B"})
	assert.True(t, d.View().Loading())
	assert.Equal(t, int64(1), d.View().Target.ID)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.View().Open())
}

func TestDialogFailureReturnsToOpen(t *testing.T) {
	d := NewDialog()
	d.Open(domain.Campaign{ID: 1, Name: "A"})

	boom := errors.New("boom")
	err := d.Confirm(context.Background(), func(context.Context, domain.Campaign) error { return boom })
	assert.ErrorIs(t, err, boom)

	v := d.View()
	assert.True(t, v.Open())
	assert.False(t, v.Loading())

	d.Cancel()
	assert.False(t, d.View().Open())
}
