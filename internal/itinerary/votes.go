package itinerary

import (
	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

// Voter is one participant's vote as shown next to a suggestion.
type Voter struct {
	Initials string `json:"initials"`
	Name     string `json:"name"`
}

// VoteTally summarises the votes cast on one suggested activity.
type VoteTally struct {
	Up   []Voter `json:"up"`
	Down []Voter `json:"down"`
}

func (t VoteTally) UpCount() int   { return len(t.Up) }
func (t VoteTally) DownCount() int { return len(t.Down) }

// TallyVotes groups votes by suggestion, resolving voter initials through
// the directory. Votes are kept in input order.
func TallyVotes(votes []models.Vote, dir *Directory) map[uuid.UUID]VoteTally {
	out := make(map[uuid.UUID]VoteTally)
	for _, v := range votes {
		tally, ok := out[v.SuggestedActivityID]
		if !ok {
			tally = VoteTally{Up: []Voter{}, Down: []Voter{}}
		}
		voter := Voter{Initials: v.ParticipantInitials, Name: dir.ResolveOne(v.ParticipantInitials)}
		switch v.VoteType {
		case models.VoteUp:
			tally.Up = append(tally.Up, voter)
		case models.VoteDown:
			tally.Down = append(tally.Down, voter)
		default:
			continue
		}
		out[v.SuggestedActivityID] = tally
	}
	return out
}

// VoteAction is what applying a vote does to the stored row.
type VoteAction string

const (
	VoteInsert  VoteAction = "inserted"
	VoteReplace VoteAction = "replaced"
	VoteRemove  VoteAction = "removed"
)

// DecideVote applies toggle semantics: repeating the current vote removes it,
// any other vote is written over the existing one.
func DecideVote(existing *models.VoteType, requested models.VoteType) VoteAction {
	switch {
	case existing == nil:
		return VoteInsert
	case *existing == requested:
		return VoteRemove
	default:
		return VoteReplace
	}
}
