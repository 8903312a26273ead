package itinerary

import (
	"strings"

	"ITINERARY_BACK-END/internal/models"
)

// Profile is a participant of the trip.
type Profile struct {
	Name     string  `json:"name"`
	Initials *string `json:"initials"`
	PhotoURL *string `json:"photo_url"`
}

// Directory maps full names to profiles and remembers insertion order, which
// decides the winner when two profiles share the same initials.
type Directory struct {
	names    []string
	profiles map[string]Profile
}

func NewDirectory() *Directory {
	return &Directory{profiles: make(map[string]Profile)}
}

// BuildDirectory builds the directory from participant rows in fetch order.
// Rows without a name are skipped.
func BuildDirectory(rows []models.Participant) *Directory {
	d := NewDirectory()
	for _, row := range rows {
		if row.ParticipantName == nil || *row.ParticipantName == "" {
			continue
		}
		d.Add(Profile{
			Name:     *row.ParticipantName,
			Initials: row.ParticipantsInitials,
			PhotoURL: row.ParticipantPhotoURL,
		})
	}
	return d
}

// Add inserts or replaces a profile. Replacing keeps the original position.
func (d *Directory) Add(p Profile) {
	if _, ok := d.profiles[p.Name]; !ok {
		d.names = append(d.names, p.Name)
	}
	d.profiles[p.Name] = p
}

// Len returns the number of profiles.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Lookup finds a profile by exact, case-sensitive full name.
func (d *Directory) Lookup(name string) (Profile, bool) {
	if d == nil {
		return Profile{}, false
	}
	p, ok := d.profiles[name]
	return p, ok
}

// ByInitials finds the first profile, in insertion order, whose initials
// match case-insensitively.
func (d *Directory) ByInitials(initials string) (Profile, bool) {
	if d == nil {
		return Profile{}, false
	}
	for _, name := range d.names {
		p := d.profiles[name]
		if p.Initials != nil && strings.EqualFold(*p.Initials, initials) {
			return p, true
		}
	}
	return Profile{}, false
}

// Profiles returns all profiles in insertion order.
func (d *Directory) Profiles() []Profile {
	if d == nil {
		return []Profile{}
	}
	out := make([]Profile, 0, len(d.names))
	for _, name := range d.names {
		out = append(out, d.profiles[name])
	}
	return out
}

// ResolveOne maps a single token to a canonical name: exact name first, then
// initials, else the token itself. A blank token stays blank.
func (d *Directory) ResolveOne(token string) string {
	if token == "" {
		return token
	}
	if _, ok := d.Lookup(token); ok {
		return token
	}
	if p, ok := d.ByInitials(token); ok {
		return p.Name
	}
	return token
}

// Resolve splits a comma-separated participant field and resolves each
// token. Every token is kept in order, duplicates and blanks included, so
// "SJ,,LJ" yields three entries. A nil or empty field yields none.
func (d *Directory) Resolve(raw *string) []string {
	out := []string{}
	if raw == nil || *raw == "" {
		return out
	}
	for _, token := range strings.Split(*raw, ",") {
		out = append(out, d.ResolveOne(strings.TrimSpace(token)))
	}
	return out
}
