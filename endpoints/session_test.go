package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/promptpilot/prompt-pilot-service/session"
	"github.com/promptpilot/prompt-pilot-service/types"
)

func newSessionRouter(store session.Store) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/session", CreateSessionHandler(store)).Methods(http.MethodPost)
	r.HandleFunc("/session/{id}", GetSessionHandler(store)).Methods(http.MethodGet)
	r.HandleFunc("/session/{id}", DeleteSessionHandler(store)).Methods(http.MethodDelete)
	r.HandleFunc("/session/{id}/export", ExportSessionHandler(store)).Methods(http.MethodGet)
	return r
}

const sessionJSON = `{
	"input": {"goalDescription": "Learn Go", "useCaseType": "learn_topic"},
	"clarificationQuestions": ["Why?"],
	"clarificationAnswers": [{"question": "Why?", "answer": "Career"}],
	"roadmap": {
		"summary": ["Start small"],
		"stages": [{
			"id": "stage-1",
			"index": 1,
			"name": "Foundations",
			"objective": "Basics",
			"whenToUse": "First",
			"prompts": [{"id": "p1", "title": "Intro", "text": "Explain [YOUR_TOPIC]"}]
		}],
		"tips": ["Iterate"]
	}
}`

func createSession(t *testing.T, router *mux.Router) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(sessionJSON))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp types.SessionCreatedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.ID == "" {
		t.Fatal("Expected a generated session ID")
	}
	return resp.ID
}

func TestSessionLifecycle(t *testing.T) {
	router := newSessionRouter(session.NewMemoryStore())
	id := createSession(t, router)

	// Fetch it back
	req := httptest.NewRequest(http.MethodGet, "/session/"+id, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var sess types.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("Failed to decode session: %v", err)
	}
	if sess.Input.GoalDescription != "Learn Go" {
		t.Errorf("Unexpected goal: %q", sess.Input.GoalDescription)
	}
	if sess.CreatedAt == "" {
		t.Error("Expected a generated createdAt timestamp")
	}

	// Delete it
	req = httptest.NewRequest(http.MethodDelete, "/session/"+id, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", rec.Code)
	}

	// Gone now
	req = httptest.NewRequest(http.MethodGet, "/session/"+id, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", rec.Code)
	}
}

func TestCreateSession_RejectsIncomplete(t *testing.T) {
	router := newSessionRouter(session.NewMemoryStore())

	// No roadmap
	body := `{"input":{"goalDescription":"Learn Go"}}`
	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing roadmap, got %d", rec.Code)
	}

	// No goal
	body = `{"roadmap":{"summary":[],"stages":[],"tips":[]}}`
	req = httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing goal, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != "Goal description is required" {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	router := newSessionRouter(session.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/session/no-such-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Error != "Session not found" {
		t.Errorf("Unexpected error message: %q", resp.Error)
	}
}

func TestExportSession_Markdown(t *testing.T) {
	router := newSessionRouter(session.NewMemoryStore())
	id := createSession(t, router)

	req := httptest.NewRequest(http.MethodGet, "/session/"+id+"/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("Unexpected content type: %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "# Prompt Roadmap") {
		t.Errorf("Expected markdown document, got:\n%s", body)
	}
	if !strings.Contains(body, "## Stage 1: Foundations") {
		t.Errorf("Expected stage heading, got:\n%s", body)
	}
}

func TestExportSession_Prompts(t *testing.T) {
	router := newSessionRouter(session.NewMemoryStore())
	id := createSession(t, router)

	req := httptest.NewRequest(http.MethodGet, "/session/"+id+"/export?format=prompts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "=== STAGE 1: FOUNDATIONS ===") {
		t.Errorf("Expected upper-cased stage header, got:\n%s", body)
	}
	if !strings.Contains(body, "[1] Intro") {
		t.Errorf("Expected numbered prompt title, got:\n%s", body)
	}
}

func TestExportSession_HTML(t *testing.T) {
	router := newSessionRouter(session.NewMemoryStore())
	id := createSession(t, router)

	req := httptest.NewRequest(http.MethodGet, "/session/"+id+"/export?format=html", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<h1") {
		t.Errorf("Expected rendered HTML, got:\n%s", rec.Body.String())
	}
}

func TestExportSession_UnknownFormat(t *testing.T) {
	router := newSessionRouter(session.NewMemoryStore())
	id := createSession(t, router)

	req := httptest.NewRequest(http.MethodGet, "/session/"+id+"/export?format=pdf", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for unknown format, got %d", rec.Code)
	}
}
