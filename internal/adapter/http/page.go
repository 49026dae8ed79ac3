package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"campaign-tracker/internal/adapter/http/view"
)

// handlePage renders the campaign page. The first visit performs the
// initial load, and so does every visit after a failed load; otherwise the
// local sequence is rendered as patched by create and delete. A `confirm` query parameter naming a known campaign
// opens the delete confirmation dialog.
func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	if s := h.list.Snapshot(); !s.Loaded || s.LoadFailed {
		// failure is reflected in the banner
		_ = h.list.Load(r.Context())
	}

	if raw := r.URL.Query().Get("confirm"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			http.Error(w, "invalid campaign id", http.StatusBadRequest)
			return
		}
		c, ok := h.list.Find(id)
		if !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		h.dialog.Open(c)
	} else {
		h.dialog.Cancel()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := view.Page(view.PageData{
		State:  h.list.Snapshot(),
		Dialog: h.dialog.View(),
	})
	if err := page.Render(r.Context(), w); err != nil {
		h.logger.Error("render page error", slog.Any("error", err))
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
