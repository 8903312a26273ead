package itinerary

import (
	"strings"
	"time"

	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/metrics"
)

// localLayouts are the hand-entered formats, tried in this order before the
// ISO fallback. Month and day may be one or two digits in each. The second
// layout is 24-hour even though older sheets label it "hh:mm"; the third
// carries an AM/PM marker.
var localLayouts = []string{
	"2006-1-2 15:04",
	"2/1/2006 @ 15:04",
	"2/1/2006 @ 3:04 PM",
}

// isoLayouts cover machine-written timestamps: RFC 3339, Postgres timestamptz
// text output and zoneless ISO variants. Fractional seconds are accepted by
// time.Parse after the seconds field even when the layout omits them.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// DateParser turns booking date strings into times. Strings without a zone
// are interpreted in loc.
type DateParser struct {
	loc     *time.Location
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewDateParser creates a parser. A nil loc means UTC.
func NewDateParser(loc *time.Location, log *logger.Logger, m *metrics.Metrics) *DateParser {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Discard()
	}
	return &DateParser{loc: loc, log: log, metrics: m}
}

// Location returns the zone used for zoneless strings.
func (p *DateParser) Location() *time.Location {
	return p.loc
}

// Parse tries every accepted format in priority order and returns the first
// valid result. A nil or blank input returns nil silently; an unrecognised
// string is logged and returns nil.
func (p *DateParser) Parse(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	return p.ParseString(*raw)
}

// ParseString is Parse for a plain string.
func (p *DateParser) ParseString(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, p.loc); err == nil {
			return &t
		}
	}
	// Lower-case markers ("4:00 pm") are common in older rows.
	if t, err := time.ParseInLocation(localLayouts[2], strings.ToUpper(s), p.loc); err == nil {
		return &t
	}

	if t := p.parseISO(s, p.loc); t != nil {
		return t
	}

	p.log.Warn("could not parse date string", "value", raw)
	p.metrics.DateParseFailed()
	return nil
}

// ParseUniversal parses the *_utc columns, which are always machine written.
// Zoneless values are taken as UTC.
func (p *DateParser) ParseUniversal(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}
	if t := p.parseISO(s, time.UTC); t != nil {
		return t
	}

	p.log.Warn("could not parse universal date string", "value", *raw)
	p.metrics.DateParseFailed()
	return nil
}

func (p *DateParser) parseISO(s string, loc *time.Location) *time.Time {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t
		}
	}
	return nil
}
