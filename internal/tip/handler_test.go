package tip_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"dental-tracker-api/internal/tip"
)

func newTestRouter(repo tip.Repository) *chi.Mux {
	r := chi.NewRouter()
	r.Mount("/tips", tip.Routes(tip.NewHandler(tip.NewService(repo))))
	return r
}

func TestRandomHandlerBody(t *testing.T) {
	repo := &fakeRepository{tips: []tip.Tip{makeTip("brush", true)}}
	router := newTestRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tips/random", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body["content"] != "brush" {
		t.Errorf("content = %v, want brush", body["content"])
	}
	// the storage flag is an implementation detail, not part of the wire body
	if _, ok := body["isActive"]; ok {
		t.Error("response must not expose isActive")
	}
}

func TestRandomHandlerEmptySet(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tips/random", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404 with no active tips, got %d", w.Code)
	}
}
