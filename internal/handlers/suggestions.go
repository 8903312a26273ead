package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/dto"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/metrics"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/store"
	"ITINERARY_BACK-END/internal/utils"
)

// SuggestionStore persists suggested activities and their votes
type SuggestionStore interface {
	SuggestedActivities(ctx context.Context) ([]models.SuggestedActivity, error)
	CreateSuggestedActivity(ctx context.Context, a models.SuggestedActivity) (models.SuggestedActivity, error)
	UpdateSuggestedActivity(ctx context.Context, a models.SuggestedActivity) error
	DeleteSuggestedActivity(ctx context.Context, id uuid.UUID) error
	Votes(ctx context.Context) ([]models.Vote, error)
	FindVote(ctx context.Context, suggestionID uuid.UUID, initials string) (*models.VoteType, error)
	UpsertVote(ctx context.Context, v models.Vote) error
	DeleteVote(ctx context.Context, suggestionID uuid.UUID, initials string) error
}

// ParticipantDirectory provides the current participant directory
type ParticipantDirectory interface {
	Directory(ctx context.Context) *itinerary.Directory
}

// SuggestionsHandler manages suggested activities and voting
type SuggestionsHandler struct {
	store   SuggestionStore
	people  ParticipantDirectory
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewSuggestionsHandler creates a new SuggestionsHandler
func NewSuggestionsHandler(s SuggestionStore, people ParticipantDirectory, m *metrics.Metrics, log *logger.Logger) *SuggestionsHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &SuggestionsHandler{store: s, people: people, metrics: m, log: log}
}

// ListSuggestedActivities handles GET /api/suggested-activities
// @Summary List suggested activities with votes
// @Tags suggestions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuggestedActivitiesResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/suggested-activities [get]
func (h *SuggestionsHandler) ListSuggestedActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	suggestions, err := h.store.SuggestedActivities(ctx)
	if err != nil {
		h.log.Error("failed to list suggested activities", "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not load suggested activities")
		return
	}
	votes, err := h.store.Votes(ctx)
	if err != nil {
		h.log.Error("failed to list votes", "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not load votes")
		return
	}

	tallies := itinerary.TallyVotes(votes, h.people.Directory(ctx))
	items := make([]dto.SuggestedActivityItem, 0, len(suggestions))
	for _, s := range suggestions {
		items = append(items, suggestionItem(s, tallies[s.ID]))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.SuggestedActivitiesResponse{SuggestedActivities: items})
}

// CreateSuggestedActivity handles POST /api/suggested-activities
// @Summary Suggest an activity
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.SuggestedActivityRequest true "Suggestion payload"
// @Success 201 {object} dto.SuggestedActivityItem
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/suggested-activities [post]
func (h *SuggestionsHandler) CreateSuggestedActivity(w http.ResponseWriter, r *http.Request) {
	var req dto.SuggestedActivityRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	s, ok := suggestionFromRequest(w, req)
	if !ok {
		return
	}

	created, err := h.store.CreateSuggestedActivity(r.Context(), s)
	if err != nil {
		h.log.Error("failed to create suggested activity", "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not create suggested activity")
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	h.log.Info("activity suggested", "id", created.ID, "user_id", userID)
	utils.WriteJSONResponse(w, http.StatusCreated, suggestionItem(created, itinerary.VoteTally{}))
}

// UpdateSuggestedActivity handles PUT/PATCH /api/suggested-activities/{id}
// @Summary Edit a suggested activity
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Suggestion ID"
// @Param payload body dto.SuggestedActivityRequest true "Suggestion payload"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/suggested-activities/{id} [put]
func (h *SuggestionsHandler) UpdateSuggestedActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := suggestionID(w, r)
	if !ok {
		return
	}

	var req dto.SuggestedActivityRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	s, ok := suggestionFromRequest(w, req)
	if !ok {
		return
	}
	s.ID = id

	if err := h.store.UpdateSuggestedActivity(r.Context(), s); err != nil {
		h.writeStoreError(w, "update", id, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Suggested activity updated"})
}

// DeleteSuggestedActivity handles DELETE /api/suggested-activities/{id}
// @Summary Delete a suggested activity and its votes
// @Tags suggestions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Suggestion ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/suggested-activities/{id} [delete]
func (h *SuggestionsHandler) DeleteSuggestedActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := suggestionID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteSuggestedActivity(r.Context(), id); err != nil {
		h.writeStoreError(w, "delete", id, err)
		return
	}

	h.log.Info("suggested activity deleted", "id", id)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Suggested activity deleted"})
}

// Vote handles POST /api/suggested-activities/{id}/vote
// @Summary Vote on a suggested activity
// @Description Casting the same vote again removes it; casting the other vote replaces it.
// @Tags suggestions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Suggestion ID"
// @Param payload body dto.VoteRequest true "Vote payload"
// @Success 200 {object} dto.VoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/suggested-activities/{id}/vote [post]
func (h *SuggestionsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := suggestionID(w, r)
	if !ok {
		return
	}

	var req dto.VoteRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	dir := h.people.Directory(ctx)
	profile, found := dir.ByInitials(strings.TrimSpace(req.ParticipantInitials))
	if !found || profile.Initials == nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Unknown participant initials")
		return
	}
	initials := *profile.Initials
	requested := models.VoteType(req.VoteType)

	existing, err := h.store.FindVote(ctx, id, initials)
	if err != nil {
		h.log.Error("failed to read vote", "suggestion_id", id, "initials", initials, "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not record vote")
		return
	}

	action := itinerary.DecideVote(existing, requested)
	if action == itinerary.VoteRemove {
		err = h.store.DeleteVote(ctx, id, initials)
	} else {
		err = h.store.UpsertVote(ctx, models.Vote{SuggestedActivityID: id, ParticipantInitials: initials, VoteType: requested})
	}
	if err != nil {
		h.log.Error("failed to apply vote", "suggestion_id", id, "initials", initials, "action", string(action), "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not record vote")
		return
	}
	h.metrics.VoteApplied(string(action))

	resp := dto.VoteResponse{Result: string(action), Votes: itinerary.VoteTally{Up: []itinerary.Voter{}, Down: []itinerary.Voter{}}}
	if action != itinerary.VoteRemove {
		resp.VoteType = &req.VoteType
	}
	if votes, err := h.store.Votes(ctx); err != nil {
		h.log.Warn("vote recorded but tally unavailable", "suggestion_id", id, "err", err)
	} else if tally, ok := itinerary.TallyVotes(votes, dir)[id]; ok {
		resp.Votes = tally
	}

	utils.WriteJSONResponse(w, http.StatusOK, resp)
}

func (h *SuggestionsHandler) writeStoreError(w http.ResponseWriter, op string, id uuid.UUID, err error) {
	if errors.Is(err, store.ErrNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Suggested activity not found")
		return
	}
	h.log.Error("failed to "+op+" suggested activity", "id", id, "err", err)
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not "+op+" suggested activity")
}

func suggestionFromRequest(w http.ResponseWriter, req dto.SuggestedActivityRequest) (models.SuggestedActivity, bool) {
	name := strings.TrimSpace(req.ActivityName)
	if name == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "activity_name is required")
		return models.SuggestedActivity{}, false
	}
	return models.SuggestedActivity{
		ActivityName:  name,
		Location:      trimmed(req.Location),
		SuggestedDate: trimmed(req.SuggestedDate),
		Duration:      trimmed(req.Duration),
		Cost:          trimmed(req.Cost),
		ImageURL:      trimmed(req.ImageURL),
	}, true
}

func suggestionItem(s models.SuggestedActivity, tally itinerary.VoteTally) dto.SuggestedActivityItem {
	if tally.Up == nil {
		tally.Up = []itinerary.Voter{}
	}
	if tally.Down == nil {
		tally.Down = []itinerary.Voter{}
	}
	return dto.SuggestedActivityItem{
		SuggestedActivity: s,
		Votes:             tally,
		UpCount:           tally.UpCount(),
		DownCount:         tally.DownCount(),
	}
}

func suggestionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "Suggested activity id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
