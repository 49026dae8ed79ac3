package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"campaign-tracker/internal/core/domain"
)

var (
	// ErrDialogClosed is returned when confirming a dialog that is not open.
	ErrDialogClosed = errors.New("dialog is not open")
	// ErrDialogBusy is returned when confirming while a previous confirm is
	// still in flight.
	ErrDialogBusy = errors.New("dialog confirmation already in flight")
)

// DialogState is the lifecycle of a confirmation dialog.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
	DialogConfirming
)

const deleteDialogTitle = "Delete Campaign"

// DialogView is what renderers need to draw the dialog.
type DialogView struct {
	State       DialogState
	Title       string
	Description string
	Target      domain.Campaign
}

// Open reports whether the dialog is visible.
func (v DialogView) Open() bool { return v.State != DialogClosed }

// Loading reports whether the confirm action is in flight.
func (v DialogView) Loading() bool { return v.State == DialogConfirming }

// Dialog gates a destructive action behind an explicit confirmation:
// closed -> open -> confirming -> closed. While confirming, further
// confirms are refused so the same action cannot run twice.
type Dialog struct {
	mu     sync.Mutex
	state  DialogState
	target domain.Campaign
}

// NewDialog returns a closed dialog.
func NewDialog() *Dialog {
	return &Dialog{}
}

// Open shows the dialog for target. It is a no-op while confirming.
func (d *Dialog) Open(target domain.Campaign) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogConfirming {
		return
	}
	d.state = DialogOpen
	d.target = target
}

// Cancel closes the dialog unless a confirm is in flight.
func (d *Dialog) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogConfirming {
		return
	}
	d.state = DialogClosed
	d.target = domain.Campaign{}
}

// Confirm runs action for the current target. On success the dialog closes;
// on failure it returns to the open state and the error is handed back to
// the caller. The dialog never retries.
func (d *Dialog) Confirm(ctx context.Context, action func(context.Context, domain.Campaign) error) error {
	d.mu.Lock()
	switch d.state {
	case DialogClosed:
		d.mu.Unlock()
		return ErrDialogClosed
	case DialogConfirming:
		d.mu.Unlock()
		return ErrDialogBusy
	}
	d.state = DialogConfirming
	target := d.target
	d.mu.Unlock()

	err := action(ctx, target)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.state = DialogOpen
		return err
	}
	d.state = DialogClosed
	d.target = domain.Campaign{}
	return nil
}

// View returns the render state of the dialog.
func (d *Dialog) View() DialogView {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := DialogView{State: d.state, Title: deleteDialogTitle, Target: d.target}
	if d.state == DialogClosed {
		v.Description = "Are you sure you want to delete this campaign? This action cannot be undone."
	} else {
		v.Description = fmt.Sprintf("Are you sure you want to delete \"%s\"? This action cannot be undone.", d.target.Name)
	}
	return v
}
