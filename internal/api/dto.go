package api

type (
	PasteCreateRequest struct {
		Content    string  `json:"content"`
		TTLSeconds *uint64 `json:"ttl_seconds,omitempty"`
		MaxViews   *uint64 `json:"max_views,omitempty"`
	}
	PasteCreateResponse struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	PasteFetchResponse struct {
		Content        string  `json:"content"`
		RemainingViews *uint64 `json:"remaining_views"`
		ExpiresAt      *string `json:"expires_at"`
	}
	PastePeekResponse struct {
		Content string `json:"content"`
	}
	HealthResponse struct {
		OK bool `json:"ok"`
	}
	ErrorResponse struct {
		Error string `json:"error"`
	}
)
