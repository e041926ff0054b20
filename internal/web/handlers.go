package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pudottapommin/pastebin-lite/pkg/clock"
	"github.com/pudottapommin/pastebin-lite/pkg/pastes"
	"github.com/pudottapommin/pastebin-lite/pkg/storage"
	"github.com/pudottapommin/pastebin-lite/pkg/ui"
)

func (h *handlers) indexGET(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ui.Index.ExecutePage(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// pasteGET renders a paste without consuming its view quota; the JSON API is
// the quota-consuming path.
func (h *handlers) pasteGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		h.renderError(w, "paste not found")
		return
	}

	at, err := clock.ParseOverride(r.Header.Get(clock.OverrideHeader))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.svc.ReadExempt(ctx, id, at)
	if err != nil {
		var unavailable *pastes.UnavailableError
		switch {
		case errors.Is(err, storage.ErrRecordNotFound):
			h.renderError(w, "paste not found")
		case errors.As(err, &unavailable):
			h.renderError(w, unavailable.Error())
		default:
			h.l.Error("failed to read paste", "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = ui.Paste.ExecutePage(w, ui.PagePaste{ID: id, Content: view.Content}); err != nil {
		h.l.Error("failed to render paste page", "error", err)
	}
}

func (h *handlers) renderError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := ui.Paste.ExecuteError(w, ui.PageError{Message: msg}); err != nil {
		h.l.Error("failed to render error page", "error", err)
	}
}
