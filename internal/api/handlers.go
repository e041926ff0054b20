package api

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"errors"
	"net/http"
	"strings"

	"github.com/pudottapommin/pastebin-lite/pkg/pastes"
	"github.com/pudottapommin/pastebin-lite/pkg/service"
	"github.com/pudottapommin/pastebin-lite/pkg/storage"
)

func (h *handlers) pastePOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var dto PasteCreateRequest
	defer r.Body.Close()
	decoder := jsontext.NewDecoder(r.Body)
	if err := json.UnmarshalDecode(decoder, &dto); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if strings.TrimSpace(dto.Content) == "" {
		h.writeError(w, http.StatusBadRequest, "content must be a non-empty string")
		return
	}
	if dto.TTLSeconds != nil && *dto.TTLSeconds < 1 {
		h.writeError(w, http.StatusBadRequest, "ttl_seconds must be >= 1")
		return
	}
	if dto.MaxViews != nil && *dto.MaxViews < 1 {
		h.writeError(w, http.StatusBadRequest, "max_views must be >= 1")
		return
	}

	at, err := testTimeOverride(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.svc.Create(ctx, service.CreateInput{
		Content:    dto.Content,
		TTLSeconds: dto.TTLSeconds,
		MaxViews:   dto.MaxViews,
		At:         at,
	})
	if err != nil {
		h.l.Error("failed to create paste", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, PasteCreateResponse{
		ID:  p.ID,
		URL: h.svc.URL(h.cfg.Domain, p.ID),
	})
}

func (h *handlers) pasteGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		h.writeError(w, http.StatusNotFound, "paste not found")
		return
	}

	at, err := testTimeOverride(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.svc.ReadConsuming(ctx, id, at)
	if err != nil {
		h.writeReadError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, PasteFetchResponse{
		Content:        view.Content,
		RemainingViews: view.RemainingViews,
		ExpiresAt:      formatExpiry(view),
	})
}

func (h *handlers) pastePeekGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		h.writeError(w, http.StatusNotFound, "paste not found")
		return
	}

	at, err := testTimeOverride(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.svc.ReadExempt(ctx, id, at)
	if err != nil {
		h.writeReadError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, PastePeekResponse{Content: view.Content})
}

func (h *handlers) healthzGET(w http.ResponseWriter, r *http.Request) {
	ok := true
	if err := h.svc.Healthy(r.Context()); err != nil {
		h.l.Error("health check failed", "error", err)
		ok = false
	}
	h.writeJSON(w, http.StatusOK, HealthResponse{OK: ok})
}

// writeReadError maps every availability failure and not-found to the same
// 404 class, so probing ids cannot distinguish them by status. The body still
// names the reason for legitimate debugging.
func (h *handlers) writeReadError(w http.ResponseWriter, err error) {
	var unavailable *pastes.UnavailableError
	switch {
	case errors.Is(err, storage.ErrRecordNotFound):
		h.writeError(w, http.StatusNotFound, "paste not found")
	case errors.As(err, &unavailable):
		h.writeError(w, http.StatusNotFound, unavailable.Error())
	default:
		h.l.Error("failed to read paste", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *handlers) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{Error: msg})
}

func (h *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := jsontext.NewEncoder(w)
	if err := json.MarshalEncode(encoder, v); err != nil {
		h.l.Error("failed to encode response", "error", err)
	}
}
