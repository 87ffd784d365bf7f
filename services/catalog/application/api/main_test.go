package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/app"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/config"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/database/dbtest"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/pkg/logger"
	appsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/application/services"
	"github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/models"
	domainsvcs "github.com/BrandonCANalytics/1-Hard-Thing-a-Day-App/services/catalog/domain/services"
)

type testServer struct {
	router http.Handler
	svcs   *appsvcs.Services
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	cfg := &config.Config{
		Environment:      config.EnvTesting,
		IPHashSecret:     "test-secret",
		SubmissionLimit:  10,
		SubmissionWindow: 24 * time.Hour,
		StoreTimeout:     5 * time.Second,
	}
	a := &app.Application{
		Config: cfg,
		Db:     dbtest.NewSQLite(t),
		Logger: logger.New(&config.Config{LogLevel: "error"}),
		Clock:  func() time.Time { return time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC) },
	}
	r := chi.NewRouter()
	CatalogRoutes(r, a)
	return &testServer{router: r, svcs: appsvcs.New(a)}
}

func (s *testServer) seed(t *testing.T, entries ...domainsvcs.Candidate) {
	t.Helper()
	if _, err := s.svcs.Moderation.Seed(context.Background(), entries); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func (s *testServer) do(t *testing.T, method, target, body string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.RemoteAddr = "203.0.113.7:40000"
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return v
}

func standardCatalog() []domainsvcs.Candidate {
	return []domainsvcs.Candidate{
		{Name: "Cold shower", Category: "Physical/Discipline"},
		{Name: "No sugar today", Category: "Discipline"},
		{Name: "Ten burpees", Category: "Physical", IsHalf: true},
		{Name: "Read ten pages", Category: "Mind/Skill", IsHalf: true},
		{Name: "Practice a language", Category: "Mind/Skill", IsHalf: true},
	}
}

func TestGetItems(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/items", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected [] for an empty catalog, got %s", rr.Body.String())
	}

	s.seed(t, standardCatalog()...)
	items := decode[[]models.PublicItem](t, s.do(t, http.MethodGet, "/items", "", nil))
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].ID >= items[i].ID {
			t.Fatalf("items not ordered by id: %+v", items)
		}
	}
}

func TestGetItems_PublicFieldsOnly(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, standardCatalog()[0])

	rr := s.do(t, http.MethodGet, "/items", "", nil)
	var raw []map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]bool{"id": true, "name": true, "category": true, "is_half": true, "weight": true}
	for k := range raw[0] {
		if !want[k] {
			t.Errorf("unexpected field %q in public item", k)
		}
	}
}

func TestPostSubmit(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, standardCatalog()...)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"accepted", `{"name":"Wake at five","category":"Discipline","is_half":false,"weight":2}`, http.StatusCreated, ""},
		{"malformed json", `{"name":`, http.StatusBadRequest, "Invalid JSON"},
		{"missing category", `{"name":"Wake at six"}`, http.StatusBadRequest, "Validation failed"},
		{"name too short", `{"name":"ab","category":"Discipline"}`, http.StatusBadRequest, "invalid item name"},
		{"unknown category", `{"name":"Wake at six","category":"Cardio"}`, http.StatusBadRequest, "invalid category"},
		{"weight out of range", `{"name":"Wake at six","category":"Discipline","weight":6}`, http.StatusBadRequest, "invalid weight"},
		{"content rejected", `{"name":"Learn new skills","category":"Mind/Skill"}`, http.StatusBadRequest, "content"},
		{"duplicate ignoring case", `{"name":"COLD SHOWER","category":"Physical"}`, http.StatusConflict, "already exists"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, http.MethodPost, "/items/submit", tt.body, nil)
			if rr.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rr.Code, rr.Body.String())
			}
			if tt.wantError != "" && !strings.Contains(rr.Body.String(), tt.wantError) {
				t.Errorf("expected %q in body, got %s", tt.wantError, rr.Body.String())
			}
		})
	}
}

func TestPostSubmit_ResponseShape(t *testing.T) {
	s := newTestServer(t)
	rr := s.do(t, http.MethodPost, "/items/submit", `{"name":"Wake at five","category":"Discipline"}`, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	got := decode[map[string]any](t, rr)
	if got["ok"] != true || got["status"] != "pending" || got["message"] != "Submitted for review." {
		t.Fatalf("unexpected response: %v", got)
	}
	if id, ok := got["id"].(float64); !ok || id <= 0 {
		t.Fatalf("expected positive id, got %v", got["id"])
	}

	items := decode[[]models.PublicItem](t, s.do(t, http.MethodGet, "/items", "", nil))
	if len(items) != 0 {
		t.Fatalf("pending submission leaked into /items: %+v", items)
	}
}

func TestPostSubmit_RateLimitByForwardedAddress(t *testing.T) {
	s := newTestServer(t)
	hdr := map[string]string{"X-Forwarded-For": "198.51.100.9, 10.0.0.1"}

	for i := 0; i < 10; i++ {
		body := fmt.Sprintf(`{"name":"Hard thing %c","category":"Discipline"}`, 'A'+i)
		if rr := s.do(t, http.MethodPost, "/items/submit", body, hdr); rr.Code != http.StatusCreated {
			t.Fatalf("submission %d: expected 201, got %d: %s", i+1, rr.Code, rr.Body.String())
		}
	}

	rr := s.do(t, http.MethodPost, "/items/submit", `{"name":"One too many","category":"Discipline"}`, hdr)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d: %s", rr.Code, rr.Body.String())
	}

	// Without the header the connection address is a different client.
	rr = s.do(t, http.MethodPost, "/items/submit", `{"name":"One too many","category":"Discipline"}`, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 for a different client, got %d", rr.Code)
	}
}

func TestGetChoice(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, standardCatalog()...)

	tests := []struct {
		name      string
		query     string
		wantType  models.ChoiceType
		wantItems int
	}{
		{"full mode", "?mode=full", models.ChoiceFull, 1},
		{"half-pair mode", "?mode=half-pair", models.ChoiceHalfPair, 2},
		{"random prefers pair", "?half_pair_probability=1", models.ChoiceHalfPair, 2},
		{"random prefers full", "?half_pair_probability=0", models.ChoiceFull, 1},
		{"include filter", "?mode=full&include_categories=Discipline", models.ChoiceFull, 1},
		{"exclude all full", "?mode=full&exclude_categories=Discipline,Physical/Discipline", models.ChoiceFull, 0},
		{"repeated keys", "?mode=full&exclude_categories=Discipline&exclude_categories=Physical/Discipline", models.ChoiceFull, 0},
		{"unknown include matches nothing", "?mode=half-pair&include_categories=Cardio", models.ChoiceHalfPair, 0},
		{"exclude ids leaves one half", "?mode=half-pair&exclude_ids=3,4", models.ChoiceHalfPair, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, http.MethodGet, "/choice"+tt.query, "", nil)
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
			}
			got := decode[models.Choice](t, rr)
			if got.Type != tt.wantType || len(got.Items) != tt.wantItems {
				t.Fatalf("got type=%s items=%d (%s), want type=%s items=%d", got.Type, len(got.Items), got.Text, tt.wantType, tt.wantItems)
			}
		})
	}
}

func TestGetChoice_EmptyItemsIsArray(t *testing.T) {
	s := newTestServer(t)
	rr := s.do(t, http.MethodGet, "/choice", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"items":[]`) || !strings.Contains(body, "No items available.") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestGetChoice_SeedIsReproducible(t *testing.T) {
	s := newTestServer(t)
	s.seed(t, standardCatalog()...)

	first := s.do(t, http.MethodGet, "/choice?seed=99", "", nil).Body.String()
	for i := 0; i < 5; i++ {
		if got := s.do(t, http.MethodGet, "/choice?seed=99", "", nil).Body.String(); got != first {
			t.Fatalf("seeded response changed:\n%s\n%s", first, got)
		}
	}
}

func TestGetChoice_BadParameters(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name  string
		query string
		field string
	}{
		{"unknown mode", "?mode=sometimes", "mode"},
		{"probability above one", "?half_pair_probability=1.5", "half_pair_probability"},
		{"negative probability", "?half_pair_probability=-0.1", "half_pair_probability"},
		{"probability not a number", "?half_pair_probability=often", "half_pair_probability"},
		{"seed not an integer", "?seed=abc", "seed"},
		{"bad exclude id", "?exclude_ids=1,x", "exclude_ids"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(t, http.MethodGet, "/choice"+tt.query, "", nil)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
			}
			got := decode[struct {
				Fields map[string]string `json:"fields"`
			}](t, rr)
			if _, ok := got.Fields[tt.field]; !ok {
				t.Fatalf("expected error for %s, got %v", tt.field, got.Fields)
			}
		})
	}
}

func TestIndexAndStatic(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/", "", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "1 Hard Thing a Day") {
		t.Fatalf("unexpected index response %d: %.80s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("index content type: %q", ct)
	}

	rr = s.do(t, http.MethodGet, "/static/app.js", "", nil)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "/items/submit") {
		t.Fatalf("unexpected static response %d", rr.Code)
	}
}
