package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Millis is an instant stored as epoch milliseconds in index documents, so
// the search engine can range-filter and sort it as a NUMERIC field. JSON
// input also accepts RFC 3339 strings for compatibility with the event
// pipeline's producers.
type Millis struct {
	time.Time
}

// NewMillis wraps a time.Time.
func NewMillis(t time.Time) Millis {
	return Millis{Time: t}
}

// MarshalJSON encodes the instant as epoch milliseconds, or null when zero.
func (m Millis) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(m.UnixMilli(), 10)), nil
}

// UnmarshalJSON accepts epoch milliseconds or an RFC 3339 string.
func (m *Millis) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		m.Time = time.Time{}
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		raw := strings.Trim(s, `"`)
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			t, err = time.Parse(time.RFC3339, raw)
		}
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", raw, err)
		}
		m.Time = t
		return nil
	}

	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	m.Time = time.UnixMilli(ms).UTC()
	return nil
}
