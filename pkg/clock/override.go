package clock

import (
	"errors"
	"strconv"
	"time"
)

// OverrideHeader carries a caller-supplied "now" in epoch milliseconds.
// The HTTP layer parses it and hands the result to Source.At; a Source
// outside deterministic mode ignores it.
const OverrideHeader = "x-test-now-ms"

// ParseOverride parses the raw header value. Empty means no override;
// anything unparseable is rejected at the boundary.
func ParseOverride(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + OverrideHeader + " header")
	}
	t := time.UnixMilli(ms).UTC()
	return &t, nil
}
