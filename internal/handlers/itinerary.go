package handlers

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"ITINERARY_BACK-END/internal/dto"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/render"
	"ITINERARY_BACK-END/internal/utils"
)

// ItineraryBuilder runs the itinerary pipeline
type ItineraryBuilder interface {
	Fetch(ctx context.Context, category itinerary.Category) itinerary.Result
}

// ItineraryHandler serves the normalized itinerary
type ItineraryHandler struct {
	pipeline ItineraryBuilder
	log      *logger.Logger
	now      func() time.Time
}

// NewItineraryHandler creates a new ItineraryHandler
func NewItineraryHandler(pipeline ItineraryBuilder, log *logger.Logger) *ItineraryHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &ItineraryHandler{pipeline: pipeline, log: log, now: time.Now}
}

// Itinerary handles GET /api/itinerary
// @Summary Get the trip itinerary
// @Description Returns normalized events for a category (all when omitted) and the participant directory.
// @Tags itinerary
// @Produce json
// @Security BearerAuth
// @Param category query string false "flights-transfers, accommodation, activities or participants"
// @Success 200 {object} dto.ItineraryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/itinerary [get]
func (h *ItineraryHandler) Itinerary(w http.ResponseWriter, r *http.Request) {
	category, ok := h.category(w, r)
	if !ok {
		return
	}

	res := h.pipeline.Fetch(r.Context(), category)
	utils.WriteJSONResponse(w, http.StatusOK, dto.ItineraryResponse{
		Events:       res.Events,
		Participants: res.Directory.Profiles(),
	})
}

// Calendar handles GET /api/itinerary.ics
// @Summary Export the itinerary as iCalendar
// @Tags itinerary
// @Produce text/calendar
// @Security BearerAuth
// @Param category query string false "flights-transfers, accommodation, activities or participants"
// @Success 200 {string} string "VCALENDAR document"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/itinerary.ics [get]
func (h *ItineraryHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	category, ok := h.category(w, r)
	if !ok {
		return
	}

	res := h.pipeline.Fetch(r.Context(), category)

	var buf bytes.Buffer
	if err := render.WriteICS(&buf, res.Events, h.now()); err != nil {
		h.log.Error("failed to encode calendar", "category", string(category), "err", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Encoding error", "Could not build calendar")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Participants handles GET /api/participants
// @Summary List trip participants
// @Tags itinerary
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ParticipantsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/participants [get]
func (h *ItineraryHandler) Participants(w http.ResponseWriter, r *http.Request) {
	res := h.pipeline.Fetch(r.Context(), itinerary.CategoryParticipants)
	utils.WriteJSONResponse(w, http.StatusOK, dto.ParticipantsResponse{
		Participants: res.Directory.Profiles(),
	})
}

func (h *ItineraryHandler) category(w http.ResponseWriter, r *http.Request) (itinerary.Category, bool) {
	category, err := itinerary.ParseCategory(r.URL.Query().Get("category"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid category", err.Error())
		return "", false
	}
	return category, true
}
