package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/dto"
	"ITINERARY_BACK-END/internal/handlers"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/logger"
	"ITINERARY_BACK-END/internal/metrics"
	"ITINERARY_BACK-END/internal/middleware"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/store"
)

var jwtCfg = &config.JWTConfig{Secret: "routes-test-secret-0001", Audience: "authenticated"}

type roles map[string]string

func (r roles) RoleForEmail(_ context.Context, email string) (string, error) {
	if role, ok := r[email]; ok {
		return role, nil
	}
	return models.RoleViewer, nil
}

type activityStore struct{ created int }

func (s *activityStore) CreateActivity(context.Context, models.Activity) (int64, error) {
	s.created++
	return int64(s.created), nil
}
func (s *activityStore) Activity(_ context.Context, id int64) (models.Activity, error) {
	if id > int64(s.created) {
		return models.Activity{}, store.ErrNotFound
	}
	name := "Colosseum tour"
	return models.Activity{ID: id, ActivityName: &name}, nil
}
func (s *activityStore) UpdateActivity(context.Context, models.Activity) error { return nil }
func (s *activityStore) DeleteActivity(context.Context, int64) error           { return nil }

func newServer(t *testing.T) (*httptest.Server, *activityStore) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	log := logger.Discard()

	source := store.NewFileSource("../store/testdata/itinerary.yaml", log)
	pipeline := itinerary.NewPipeline(source, time.UTC, log, m)
	activities := &activityStore{}

	mux := http.NewServeMux()
	SetupRoutes(mux, Handlers{
		Health:     handlers.NewHealthHandler(source, "snapshot"),
		Itinerary:  handlers.NewItineraryHandler(pipeline, log),
		Activities: handlers.NewActivitiesHandler(activities, time.UTC, log),
		Roles:      roles{"admin@example.com": models.RoleAdmin},
		Metrics:    reg,
		Log:        log,
	}, jwtCfg)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, activities
}

func do(t *testing.T, method, url, email, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if email != "" {
		token, err := middleware.GenerateToken("user-"+email, email, time.Hour, jwtCfg)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRoutes(t *testing.T) {
	srv, _ := newServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		email  string
		status int
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"ready", http.MethodGet, "/readyz", "", http.StatusOK},
		{"itinerary needs token", http.MethodGet, "/api/itinerary", "", http.StatusUnauthorized},
		{"itinerary", http.MethodGet, "/api/itinerary", "sarah@example.com", http.StatusOK},
		{"bad category", http.MethodGet, "/api/itinerary?category=hotels", "sarah@example.com", http.StatusBadRequest},
		{"calendar", http.MethodGet, "/api/itinerary.ics", "sarah@example.com", http.StatusOK},
		{"participants", http.MethodGet, "/api/participants", "sarah@example.com", http.StatusOK},
		{"wrong method", http.MethodPost, "/api/itinerary", "sarah@example.com", http.StatusMethodNotAllowed},
		{"viewer cannot delete", http.MethodDelete, "/api/activities/1", "sarah@example.com", http.StatusForbidden},
		{"admin deletes", http.MethodDelete, "/api/activities/1", "admin@example.com", http.StatusOK},
		{"suggestions not mounted", http.MethodGet, "/api/suggested-activities", "sarah@example.com", http.StatusNotFound},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, tt.method, srv.URL+tt.path, tt.email, "")
			if resp.StatusCode != tt.status {
				t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, resp.StatusCode, tt.status)
			}
		})
	}
}

func TestItineraryFromSnapshot(t *testing.T) {
	srv, _ := newServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/itinerary?category=accommodation", "sarah@example.com", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Events       []map[string]any    `json:"events"`
		Participants []itinerary.Profile `json:"participants"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Participants) != 3 {
		t.Errorf("participants = %d, want 3", len(body.Participants))
	}
	if len(body.Events) != 1 || body.Events[0]["event_type"] != "accommodation" {
		t.Fatalf("events = %v", body.Events)
	}
	rooms, _ := body.Events[0]["rooms"].([]any)
	if len(rooms) != 2 {
		t.Errorf("rooms = %v", body.Events[0]["rooms"])
	}
}

func TestAdminCreatesActivity(t *testing.T) {
	srv, activities := newServer(t)

	payload := `{"activity_name":"Colosseum tour","start_time":"2025-06-21T09:30","participants":["Sarah Jones"]}`
	resp := do(t, http.MethodPost, srv.URL+"/api/activities", "admin@example.com", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body dto.ActivityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.ID != 1 || activities.created != 1 {
		t.Errorf("response %+v, created %d", body, activities.created)
	}
	resp = do(t, http.MethodGet, srv.URL+"/api/activities/1", "admin@example.com", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	var row models.Activity
	if err := json.NewDecoder(resp.Body).Decode(&row); err != nil {
		t.Fatal(err)
	}
	if row.ID != 1 || row.ActivityName == nil || *row.ActivityName != "Colosseum tour" {
		t.Errorf("row = %+v", row)
	}

	if resp := do(t, http.MethodGet, srv.URL+"/api/activities/1", "sarah@example.com", ""); resp.StatusCode != http.StatusForbidden {
		t.Errorf("viewer get status = %d, want 403", resp.StatusCode)
	}
	if resp := do(t, http.MethodGet, srv.URL+"/api/activities/9", "admin@example.com", ""); resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing get status = %d, want 404", resp.StatusCode)
	}
}
