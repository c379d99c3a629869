package order

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMillis_MarshalJSON(t *testing.T) {
	m := NewMillis(time.Date(2025, 8, 1, 12, 30, 0, 0, time.UTC))
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "1754051400000" {
		t.Errorf("expected epoch ms, got %s", data)
	}
}

func TestMillis_MarshalJSON_Zero(t *testing.T) {
	var m Millis
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("expected null for zero time, got %s", data)
	}
}

func TestMillis_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"epoch_ms", "1754051400000", time.Date(2025, 8, 1, 12, 30, 0, 0, time.UTC)},
		{"rfc3339", `"2025-08-01T12:30:00Z"`, time.Date(2025, 8, 1, 12, 30, 0, 0, time.UTC)},
		{"rfc3339_nano", `"2025-08-01T12:30:00.250Z"`, time.Date(2025, 8, 1, 12, 30, 0, 250e6, time.UTC)},
		{"null", "null", time.Time{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var m Millis
			if err := json.Unmarshal([]byte(tc.input), &m); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !m.Time.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, m.Time)
			}
		})
	}
}

func TestMillis_UnmarshalJSON_Invalid(t *testing.T) {
	for _, input := range []string{`"yesterday"`, `"2025-13-99"`, "1.5e"} {
		var m Millis
		if err := json.Unmarshal([]byte(input), &m); err == nil {
			t.Errorf("expected error for %s", input)
		}
	}
}

func TestMillis_RoundTrip(t *testing.T) {
	in := NewMillis(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC))
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out Millis
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Time.Equal(in.Time) {
		t.Errorf("round trip mismatch: %v != %v", out.Time, in.Time)
	}
}
