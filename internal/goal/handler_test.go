package goal_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dental-tracker-api/internal/auth"
	"dental-tracker-api/internal/goal"
)

func newTestRouter(svc goal.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Mount("/goals", goal.Routes(goal.NewHandler(svc)))
	return r
}

func authedRequest(method, target string, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	claims := &auth.Claims{UserID: userID.String()}
	return req.WithContext(auth.ContextWithClaims(req.Context(), claims))
}

func TestDeleteHandlerBlockedResponse(t *testing.T) {
	owner := uuid.New()
	svc, _, activities := newService()

	created, err := svc.Create(owner, validGoal())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	activities.counts[created.ID] = 1

	router := newTestRouter(svc)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodDelete, "/goals/"+created.ID.String(), owner))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}

	var body goal.DeleteBlockedResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !body.HasActivities {
		t.Error("response must carry hasActivities=true")
	}
	if body.Message == "" {
		t.Error("response must carry a message")
	}
}

func TestDeleteHandlerForeignGoal(t *testing.T) {
	owner := uuid.New()
	svc, _, _ := newService()

	created, err := svc.Create(owner, validGoal())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	router := newTestRouter(svc)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(http.MethodDelete, "/goals/"+created.ID.String(), uuid.New()))

	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign goal must look absent: want 404, got %d", w.Code)
	}
}

func TestHandlerWithoutClaims(t *testing.T) {
	svc, _, _ := newService()
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/goals/", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401 without claims, got %d", w.Code)
	}
}
