package itinerary

import (
	"reflect"
	"testing"

	"ITINERARY_BACK-END/internal/models"
)

func testDirectory() *Directory {
	return BuildDirectory([]models.Participant{
		{ID: 1, ParticipantName: strp("Sarah Jones"), ParticipantsInitials: strp("SJ")},
		{ID: 2, ParticipantName: strp("Liam Jones"), ParticipantsInitials: strp("LJ")},
		{ID: 3, ParticipantName: strp("Kate Jones"), ParticipantsInitials: strp("KJ")},
		{ID: 4, ParticipantName: strp("Kevin James"), ParticipantsInitials: strp("kj")},
		{ID: 5, ParticipantName: nil, ParticipantsInitials: strp("ZZ")},
	})
}

func TestBuildDirectory(t *testing.T) {
	dir := testDirectory()

	if dir.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (nameless rows skipped)", dir.Len())
	}

	var names []string
	for _, p := range dir.Profiles() {
		names = append(names, p.Name)
	}
	want := []string{"Sarah Jones", "Liam Jones", "Kate Jones", "Kevin James"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Profiles() order = %v, want %v", names, want)
	}
}

func TestDirectoryAddKeepsPosition(t *testing.T) {
	dir := testDirectory()
	dir.Add(Profile{Name: "Sarah Jones", Initials: strp("SAJ")})

	if dir.Profiles()[0].Name != "Sarah Jones" {
		t.Errorf("replaced profile moved: %v", dir.Profiles()[0].Name)
	}
	if got := dir.ResolveOne("saj"); got != "Sarah Jones" {
		t.Errorf("ResolveOne(saj) = %q, want Sarah Jones", got)
	}
	if dir.Len() != 4 {
		t.Errorf("Len() = %d, want 4", dir.Len())
	}
}

func TestResolve(t *testing.T) {
	dir := testDirectory()

	tests := []struct {
		name string
		raw  *string
		want []string
	}{
		{"nil", nil, []string{}},
		{"empty", strp(""), []string{}},
		{"initials", strp("SJ,LJ"), []string{"Sarah Jones", "Liam Jones"}},
		{"initials any case with spaces", strp(" sj , Lj "), []string{"Sarah Jones", "Liam Jones"}},
		{"full name", strp("Sarah Jones"), []string{"Sarah Jones"}},
		{"full name is case sensitive", strp("sarah jones"), []string{"sarah jones"}},
		{"unknown token echoed", strp("XY"), []string{"XY"}},
		{"duplicates kept", strp("SJ,Sarah Jones,SJ"), []string{"Sarah Jones", "Sarah Jones", "Sarah Jones"}},
		{"first profile wins on shared initials", strp("KJ"), []string{"Kate Jones"}},
		{"blank tokens kept in place", strp("SJ,, ,LJ"), []string{"Sarah Jones", "", "", "Liam Jones"}},
		{"trailing comma", strp("XY,"), []string{"XY", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dir.Resolve(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Resolve() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestResolveExactNameBeatsInitials(t *testing.T) {
	dir := testDirectory()
	dir.Add(Profile{Name: "LJ"})

	if got := dir.ResolveOne("LJ"); got != "LJ" {
		t.Errorf("ResolveOne(LJ) = %q, want exact name LJ", got)
	}
	if got := dir.ResolveOne("lj"); got != "Liam Jones" {
		t.Errorf("ResolveOne(lj) = %q, want Liam Jones", got)
	}
}

func TestResolveBlankTokenIgnoresEmptyInitials(t *testing.T) {
	dir := testDirectory()
	dir.Add(Profile{Name: "Guest", Initials: strp("")})

	got := dir.Resolve(strp("SJ,,LJ"))
	want := []string{"Sarah Jones", "", "Liam Jones"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %#v, want %#v", got, want)
	}
}

func TestNilDirectory(t *testing.T) {
	var dir *Directory

	if got := dir.Resolve(strp("SJ")); !reflect.DeepEqual(got, []string{"SJ"}) {
		t.Errorf("Resolve on nil directory = %v", got)
	}
	if dir.Len() != 0 || len(dir.Profiles()) != 0 {
		t.Error("nil directory should be empty")
	}
}
