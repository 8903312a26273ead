package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/handlers"
	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/middleware"
)

// Handlers groups what SetupRoutes mounts. Activities, Suggestions and Roles
// are nil when the service runs from a read-only snapshot.
type Handlers struct {
	Health      *handlers.HealthHandler
	Itinerary   *handlers.ItineraryHandler
	Activities  *handlers.ActivitiesHandler
	Suggestions *handlers.SuggestionsHandler
	Roles       middleware.RoleLookup
	Metrics     prometheus.Gatherer
	Log         *logger.Logger
}

// SetupRoutes configures all application routes
func SetupRoutes(mux *http.ServeMux, h Handlers, jwtCfg *config.JWTConfig) {
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, jwtCfg)
	}
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(middleware.RequireAdmin(next, h.Roles, h.Log), jwtCfg)
	}

	// Health check routes
	mux.HandleFunc("GET /healthz", h.Health.HealthCheck)
	mux.HandleFunc("GET /livez", h.Health.LivenessCheck)
	mux.HandleFunc("GET /readyz", h.Health.ReadinessCheck)

	// Itinerary routes
	mux.HandleFunc("GET /api/itinerary", auth(h.Itinerary.Itinerary))
	mux.HandleFunc("GET /api/itinerary.ics", auth(h.Itinerary.Calendar))
	mux.HandleFunc("GET /api/participants", auth(h.Itinerary.Participants))

	// Activity management routes
	if h.Activities != nil && h.Roles != nil {
		mux.HandleFunc("POST /api/activities", admin(h.Activities.CreateActivity))
		mux.HandleFunc("GET /api/activities/{id}", admin(h.Activities.GetActivity))
		mux.HandleFunc("PUT /api/activities/{id}", admin(h.Activities.UpdateActivity))
		mux.HandleFunc("PATCH /api/activities/{id}", admin(h.Activities.UpdateActivity))
		mux.HandleFunc("DELETE /api/activities/{id}", admin(h.Activities.DeleteActivity))
	}

	// Suggested activity routes
	if h.Suggestions != nil && h.Roles != nil {
		mux.HandleFunc("GET /api/suggested-activities", auth(h.Suggestions.ListSuggestedActivities))
		mux.HandleFunc("POST /api/suggested-activities", auth(h.Suggestions.CreateSuggestedActivity))
		mux.HandleFunc("PUT /api/suggested-activities/{id}", admin(h.Suggestions.UpdateSuggestedActivity))
		mux.HandleFunc("PATCH /api/suggested-activities/{id}", admin(h.Suggestions.UpdateSuggestedActivity))
		mux.HandleFunc("DELETE /api/suggested-activities/{id}", admin(h.Suggestions.DeleteSuggestedActivity))
		mux.HandleFunc("POST /api/suggested-activities/{id}/vote", auth(h.Suggestions.Vote))
	}

	if h.Metrics != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(h.Metrics, promhttp.HandlerOpts{}))
	}
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Itinerary backend is running."))
}
