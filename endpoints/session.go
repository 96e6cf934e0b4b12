package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/promptpilot/prompt-pilot-service/export"
	"github.com/promptpilot/prompt-pilot-service/session"
	"github.com/promptpilot/prompt-pilot-service/types"
)

// CreateSessionHandler caches a completed session server-side. Sessions
// without a roadmap are rejected: a session is either absent or fully
// populated.
func CreateSessionHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sess types.Session
		if err := json.NewDecoder(r.Body).Decode(&sess); err != nil {
			writeError(w, http.StatusBadRequest, msgInvalidBody, "")
			return
		}

		if !sess.Input.Valid() {
			writeError(w, http.StatusBadRequest, msgGoalRequired, "")
			return
		}
		if sess.Roadmap == nil {
			writeError(w, http.StatusBadRequest, "Session must contain a completed roadmap", "")
			return
		}

		if sess.ID == "" {
			sess.ID = uuid.New().String()
		}
		if sess.CreatedAt == "" {
			sess.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		}

		if err := store.Save(r.Context(), sess.ID, &sess); err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to store session: %v", err), "")
			return
		}

		writeJSON(w, http.StatusCreated, types.SessionCreatedResponse{ID: sess.ID, Status: "created"})
	}
}

// GetSessionHandler returns a cached session by id.
func GetSessionHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := loadSession(store, w, r)
		if sess == nil || err != nil {
			return
		}
		writeJSON(w, http.StatusOK, sess)
	}
}

// DeleteSessionHandler removes a cached session by id.
func DeleteSessionHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := store.Delete(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to delete session: %v", err), "")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ExportSessionHandler serializes a cached session's roadmap. The format
// query parameter selects markdown (default), prompts or html.
func ExportSessionHandler(store session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := loadSession(store, w, r)
		if sess == nil || err != nil {
			return
		}

		format := r.URL.Query().Get("format")
		switch format {
		case "", "markdown":
			w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
			_, _ = w.Write([]byte(export.AsMarkdown(sess.Roadmap)))
		case "prompts":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(export.PromptsOnly(sess.Roadmap)))
		case "html":
			html, err := export.AsHTML(sess.Roadmap)
			if err != nil {
				writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to render export: %v", err), "")
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(html))
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown export format '%s'", format), "")
		}
	}
}

// loadSession fetches the session named in the route, writing the error
// response itself on miss or failure.
func loadSession(store session.Store, w http.ResponseWriter, r *http.Request) (*types.Session, error) {
	id := mux.Vars(r)["id"]
	sess, err := store.Load(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to fetch session: %v", err), "")
		return nil, err
	}
	if sess == nil {
		writeError(w, http.StatusNotFound, msgSessionMissing, "")
		return nil, nil
	}
	return sess, nil
}
