package api

import (
	"net/http"
	"time"

	"github.com/pudottapommin/pastebin-lite/pkg/clock"
	"github.com/pudottapommin/pastebin-lite/pkg/service"
)

func testTimeOverride(r *http.Request) (*time.Time, error) {
	return clock.ParseOverride(r.Header.Get(clock.OverrideHeader))
}

func formatExpiry(v *service.View) *string {
	if v.ExpiresAt == nil {
		return nil
	}
	s := v.ExpiresAt.UTC().Format("2006-01-02T15:04:05.000Z")
	return &s
}
