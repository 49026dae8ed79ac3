package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"campaign-tracker/internal/adapter/usecase"
	"campaign-tracker/internal/core/domain"
)

// errTargetMismatch is returned when the open dialog targets another
// campaign than the one being confirmed.
var errTargetMismatch = errors.New("dialog targets another campaign")

// handleCreate processes the "Add New Campaign" form. The draft is reset
// whatever the outcome; a failed create surfaces through the page banner.
// Every outcome redirects back to the page.
func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	err := h.form.SubmitValues(r.Context(),
		r.PostFormValue("name"), r.PostFormValue("budget"), r.PostFormValue("spend"),
		func(ctx context.Context, data domain.CreateCampaignData) error {
			_, err := h.list.Create(ctx, data)
			return err
		})
	if err == nil {
		h.logger.Debug("campaign created")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDelete confirms the open delete dialog. The dialog must be open for
// the campaign named in the path; a second submit while the first delete is
// still in flight is ignored.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}

	err = h.dialog.Confirm(r.Context(), func(ctx context.Context, c domain.Campaign) error {
		if c.ID != id {
			return errTargetMismatch
		}
		// a failed delete is reported by the banner; the dialog still closes
		_ = h.list.Remove(ctx, c.ID)
		return nil
	})
	switch {
	case errors.Is(err, usecase.ErrDialogBusy):
		h.logger.Warn("duplicate delete confirmation ignored", slog.Int64("id", id))
	case errors.Is(err, usecase.ErrDialogClosed), errors.Is(err, errTargetMismatch):
		http.Error(w, "campaign is not awaiting confirmation", http.StatusConflict)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleReload re-fetches the whole list from the API.
func (h *Handler) handleReload(w http.ResponseWriter, r *http.Request) {
	_ = h.list.Load(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	h.list.DismissError()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
