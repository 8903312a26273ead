package itinerary

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"ITINERARY_BACK-END/internal/metrics"
)

func strp(s string) *string { return &s }

func TestDateParserFormats(t *testing.T) {
	p := NewDateParser(time.UTC, nil, nil)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"iso local", "2025-06-19 08:00", time.Date(2025, 6, 19, 8, 0, 0, 0, time.UTC)},
		{"iso local single digit hour", "2025-06-19 8:05", time.Date(2025, 6, 19, 8, 5, 0, 0, time.UTC)},
		{"iso local single digit month and day", "2025-6-9 08:00", time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)},
		{"day first 24 hour", "19/06/2025 @ 13:20", time.Date(2025, 6, 19, 13, 20, 0, 0, time.UTC)},
		{"day first short fields", "9/6/2025 @ 7:00", time.Date(2025, 6, 9, 7, 0, 0, 0, time.UTC)},
		{"day first am", "16/06/2025 @ 4:00 AM", time.Date(2025, 6, 16, 4, 0, 0, 0, time.UTC)},
		{"day first pm", "16/06/2025 @ 4:00 PM", time.Date(2025, 6, 16, 16, 0, 0, 0, time.UTC)},
		{"day first lower case pm", "16/06/2025 @ 4:00 pm", time.Date(2025, 6, 16, 16, 0, 0, 0, time.UTC)},
		{"rfc3339", "2025-06-19T06:00:00Z", time.Date(2025, 6, 19, 6, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", "2025-06-19T08:00:00+02:00", time.Date(2025, 6, 19, 6, 0, 0, 0, time.UTC)},
		{"rfc3339 fraction", "2025-06-19T06:00:00.250Z", time.Date(2025, 6, 19, 6, 0, 0, 250000000, time.UTC)},
		{"postgres timestamptz", "2025-06-19 06:00:00+00", time.Date(2025, 6, 19, 6, 0, 0, 0, time.UTC)},
		{"zoneless iso", "2025-06-19T06:00:00", time.Date(2025, 6, 19, 6, 0, 0, 0, time.UTC)},
		{"zoneless iso minutes", "2025-06-19T06:00", time.Date(2025, 6, 19, 6, 0, 0, 0, time.UTC)},
		{"date only", "2025-06-19", time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC)},
		{"surrounding space", "  2025-06-19 08:00 ", time.Date(2025, 6, 19, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseString(tt.input)
			if got == nil {
				t.Fatalf("ParseString(%q) = nil, want %v", tt.input, tt.want)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateParserUsesLocationForZonelessStrings(t *testing.T) {
	zone := time.FixedZone("CEST", 2*60*60)
	p := NewDateParser(zone, nil, nil)

	got := p.ParseString("2025-06-19 08:00")
	if got == nil {
		t.Fatal("expected a time")
	}
	want := time.Date(2025, 6, 19, 6, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got.UTC(), want)
	}

	// Explicit offsets win over the configured zone.
	got = p.ParseString("2025-06-19T08:00:00Z")
	if got == nil || !got.Equal(time.Date(2025, 6, 19, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("got %v, want 08:00 UTC", got)
	}
}

func TestDateParserRejectsUnknownFormats(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	p := NewDateParser(nil, nil, m)

	for _, input := range []string{"not a date", "19-06-2025", "2025/06/19 08:00", "32/01/2025 @ 10:00"} {
		if got := p.ParseString(input); got != nil {
			t.Errorf("ParseString(%q) = %v, want nil", input, got)
		}
	}

	if got := testutil.ToFloat64(m.DateParseFailures); got != 4 {
		t.Errorf("date parse failures = %v, want 4", got)
	}
}

func TestDateParserBlankInput(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	p := NewDateParser(nil, nil, m)

	if got := p.Parse(nil); got != nil {
		t.Errorf("Parse(nil) = %v, want nil", got)
	}
	if got := p.Parse(strp("")); got != nil {
		t.Errorf("Parse(\"\") = %v, want nil", got)
	}
	if got := p.Parse(strp("   ")); got != nil {
		t.Errorf("Parse(blank) = %v, want nil", got)
	}
	if got := p.ParseUniversal(nil); got != nil {
		t.Errorf("ParseUniversal(nil) = %v, want nil", got)
	}

	if got := testutil.ToFloat64(m.DateParseFailures); got != 0 {
		t.Errorf("blank input counted as failure: %v", got)
	}
}

func TestDateParserUniversal(t *testing.T) {
	p := NewDateParser(time.FixedZone("X", 5*60*60), nil, nil)

	got := p.ParseUniversal(strp("2025-06-19 06:00:00"))
	if got == nil || !got.Equal(time.Date(2025, 6, 19, 6, 0, 0, 0, time.UTC)) {
		t.Errorf("zoneless universal = %v, want 06:00 UTC", got)
	}

	// Hand-entered layouts are not accepted for universal columns.
	if got := p.ParseUniversal(strp("19/06/2025 @ 13:20")); got != nil {
		t.Errorf("ParseUniversal accepted a local layout: %v", got)
	}
}
