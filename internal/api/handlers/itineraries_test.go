package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/services"
)

type stubRepo struct{ places []domain.Place }

func (s *stubRepo) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	return s.places, nil
}

type stubStore struct{ saved []domain.Itinerary }

func (s *stubStore) Save(ctx context.Context, it domain.Itinerary) error {
	s.saved = append(s.saved, it)
	return nil
}

func (s *stubStore) List(ctx context.Context, limit int) ([]domain.Itinerary, error) {
	return s.saved, nil
}

func newHandler(places []domain.Place) (*ItineraryHandler, *stubStore) {
	store := &stubStore{}
	h := &ItineraryHandler{
		Repo:   &stubRepo{places: places},
		Store:  store,
		Config: services.DefaultPlannerConfig(),
	}
	return h, store
}

func postItinerary(t *testing.T, h *ItineraryHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestPlanItinerary(t *testing.T) {
	catalog := []domain.Place{
		{
			PlaceID:              "p1",
			Name:                 "Cubbon Park",
			Location:             domain.Location{Lat: 12.9763, Lon: 77.5929},
			Rating:               4.4,
			VisitDurationMinutes: 60,
		},
	}
	h, store := newHandler(catalog)

	body := `{
		"current_location": {"lat": 12.9716, "lon": 77.5946},
		"available_time_minutes": 120
	}`
	rec := postItinerary(t, h, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ItineraryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.ItineraryID == "" {
		t.Error("response should carry an itinerary id")
	}
	if len(res.Places) != 1 || res.Places[0].PlaceID != "p1" {
		t.Fatalf("unexpected selection: %+v", res.Places)
	}
	if res.Places[0].Score <= 0 {
		t.Errorf("nearby highly-rated place should have a positive score, got %v", res.Places[0].Score)
	}
	if res.TotalTimeUsed > 120 {
		t.Errorf("TotalTimeUsed = %v exceeds the budget", res.TotalTimeUsed)
	}

	if len(store.saved) != 1 {
		t.Errorf("expected the itinerary to be persisted, saved = %d", len(store.saved))
	}
}

func TestPlanItineraryMissingFields(t *testing.T) {
	h, _ := newHandler(nil)

	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "no current_location",
			body: `{"available_time_minutes": 60}`,
			want: "missing field: current_location",
		},
		{
			name: "no lat",
			body: `{"current_location": {"lon": 77.59}, "available_time_minutes": 60}`,
			want: "missing field: current_location.lat",
		},
		{
			name: "no budget",
			body: `{"current_location": {"lat": 12.97, "lon": 77.59}}`,
			want: "missing field: available_time_minutes",
		},
		{
			name: "inline place without rating",
			body: `{
				"current_location": {"lat": 12.97, "lon": 77.59},
				"available_time_minutes": 60,
				"places": [{"place_id": "x", "name": "x", "lat": 1, "lon": 1, "visit_duration_minutes": 5}]
			}`,
			want: "missing field: places[0].rating",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := postItinerary(t, h, c.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), c.want) {
				t.Errorf("body %q should contain %q", rec.Body.String(), c.want)
			}
		})
	}
}

func TestPlanItineraryRejectsUnknownFields(t *testing.T) {
	h, _ := newHandler(nil)

	rec := postItinerary(t, h, `{"current_location": {"lat": 1, "lon": 1}, "available_time_minutes": 60, "bogus": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlanItineraryInlineCandidates(t *testing.T) {
	// Catalog is empty; inline candidates must be used instead.
	h, _ := newHandler(nil)

	body := `{
		"current_location": {"lat": 12.9716, "lon": 77.5946},
		"available_time_minutes": 180,
		"places": [
			{"place_id": "a", "name": "A", "lat": 12.9716, "lon": 77.5946, "rating": 4.0, "visit_duration_minutes": 60},
			{"place_id": "b", "name": "B", "lat": 12.9716, "lon": 77.5946, "rating": 3.5, "visit_duration_minutes": 50}
		]
	}`
	rec := postItinerary(t, h, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.ItineraryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Places) != 2 {
		t.Fatalf("expected both inline candidates selected, got %d", len(res.Places))
	}
	if res.Places[0].PlaceID != "a" || res.Places[1].PlaceID != "b" {
		t.Errorf("expected score-descending order a, b: %+v", res.Places)
	}
}

func TestItinerariesMethodNotAllowed(t *testing.T) {
	h, _ := newHandler(nil)

	req := httptest.NewRequest(http.MethodDelete, "/itineraries", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, POST" {
		t.Errorf("Allow = %q, want \"GET, POST\"", allow)
	}
}
