package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ITINERARY_BACK-END/internal/dto"
	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/store"
	"ITINERARY_BACK-END/internal/utils"
)

const (
	activityInputLayout = "2006-01-02T15:04"
	activityLocalLayout = "2006-01-02T15:04:05"
)

// ActivityStore persists activities
type ActivityStore interface {
	Activity(ctx context.Context, id int64) (models.Activity, error)
	CreateActivity(ctx context.Context, a models.Activity) (int64, error)
	UpdateActivity(ctx context.Context, a models.Activity) error
	DeleteActivity(ctx context.Context, id int64) error
}

// ActivitiesHandler manages the admin activity endpoints
type ActivitiesHandler struct {
	store ActivityStore
	loc   *time.Location
	log   *logger.Logger
}

// NewActivitiesHandler creates a new ActivitiesHandler. Input times are
// wall-clock times in loc.
func NewActivitiesHandler(s ActivityStore, loc *time.Location, log *logger.Logger) *ActivitiesHandler {
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Discard()
	}
	return &ActivitiesHandler{store: s, loc: loc, log: log}
}

// CreateActivity handles POST /api/activities
// @Summary Create an activity
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.ActivityRequest true "Activity payload"
// @Success 201 {object} dto.ActivityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/activities [post]
func (h *ActivitiesHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req dto.ActivityRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	activity, err := h.toModel(req)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}

	id, err := h.store.CreateActivity(r.Context(), activity)
	if err != nil {
		h.log.Error("failed to create activity", "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not create activity")
		return
	}

	h.log.Info("activity created", "id", id, "name", req.ActivityName)
	utils.WriteJSONResponse(w, http.StatusCreated, dto.ActivityResponse{ID: id, Message: "Activity created"})
}

// GetActivity handles GET /api/activities/{id}
// @Summary Get the stored row of an activity
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} models.Activity
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/activities/{id} [get]
func (h *ActivitiesHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := activityID(w, r)
	if !ok {
		return
	}

	activity, err := h.store.Activity(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Activity not found")
			return
		}
		h.log.Error("failed to read activity", "id", id, "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not read activity")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, activity)
}

// UpdateActivity handles PUT/PATCH /api/activities/{id}
// @Summary Update an activity
// @Tags activities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Param payload body dto.ActivityRequest true "Activity payload"
// @Success 200 {object} dto.ActivityResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/activities/{id} [put]
func (h *ActivitiesHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := activityID(w, r)
	if !ok {
		return
	}

	var req dto.ActivityRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	activity, err := h.toModel(req)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", err.Error())
		return
	}
	activity.ID = id

	if err := h.store.UpdateActivity(r.Context(), activity); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Activity not found")
			return
		}
		h.log.Error("failed to update activity", "id", id, "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not update activity")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.ActivityResponse{ID: id, Message: "Activity updated"})
}

// DeleteActivity handles DELETE /api/activities/{id}
// @Summary Delete an activity
// @Tags activities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/activities/{id} [delete]
func (h *ActivitiesHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := activityID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteActivity(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "Activity not found")
			return
		}
		h.log.Error("failed to delete activity", "id", id, "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Database error", "Could not delete activity")
		return
	}

	h.log.Info("activity deleted", "id", id)
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Activity deleted"})
}

// toModel converts a request into the row shape used by the itinerary
// tables: local times without zone, UTC times in RFC 3339 and a
// comma-separated participant list.
func (h *ActivitiesHandler) toModel(req dto.ActivityRequest) (models.Activity, error) {
	start, err := time.ParseInLocation(activityInputLayout, strings.TrimSpace(req.StartTime), h.loc)
	if err != nil {
		return models.Activity{}, fmt.Errorf("start_time must look like %s", activityInputLayout)
	}

	name := strings.TrimSpace(req.ActivityName)
	if name == "" {
		return models.Activity{}, errors.New("activity_name is required")
	}

	a := models.Activity{
		ActivityName:      &name,
		ActivityPhotoURL:  trimmed(req.ActivityPhotoURL),
		AdditionalDetails: trimmed(req.AdditionalDetails),
		BookingReference:  trimmed(req.BookingReference),
		City:              trimmed(req.City),
		Location:          trimmed(req.Location),
	}
	a.StartTimeLocal, a.StartTimeUTC = h.formatTimes(start)

	if end := trimmed(req.EndTime); end != nil {
		endAt, err := time.ParseInLocation(activityInputLayout, *end, h.loc)
		if err != nil {
			return models.Activity{}, fmt.Errorf("end_time must look like %s", activityInputLayout)
		}
		if endAt.Before(start) {
			return models.Activity{}, errors.New("end_time cannot be before start_time")
		}
		a.EndTimeLocal, a.EndTimeUTC = h.formatTimes(endAt)
	}

	names := make([]string, 0, len(req.Participants))
	for _, p := range req.Participants {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	joined := strings.Join(names, ",")
	count := strconv.Itoa(len(names))
	a.Participants = &joined
	a.ParticipantCount = &count

	return a, nil
}

func (h *ActivitiesHandler) formatTimes(t time.Time) (local, utc *string) {
	l := t.In(h.loc).Format(activityLocalLayout)
	u := t.UTC().Format(time.RFC3339)
	return &l, &u
}

func activityID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request", "Activity id must be a positive integer")
		return 0, false
	}
	return id, true
}

// trimmed returns nil for nil or blank strings
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
