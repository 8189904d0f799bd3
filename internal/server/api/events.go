// Package api provides the HTTP API handlers for the Mudra gesture service.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/anupamd/mudra/internal/store"
)

// EventsHandler serves the recorded gesture event log.
type EventsHandler struct {
	store *store.Store
}

// NewEventsHandler creates an EventsHandler backed by the given store.
func NewEventsHandler(s *store.Store) *EventsHandler {
	return &EventsHandler{store: s}
}

type eventResponse struct {
	ID         string  `json:"id"`
	Gesture    string  `json:"gesture"`
	Direction  string  `json:"direction"`
	Combined   string  `json:"combined"`
	Command    string  `json:"command"`
	Handedness string  `json:"handedness"`
	Score      float64 `json:"score"`
	CreatedAt  string  `json:"created_at"`
}

type listEventsResponse struct {
	Events []eventResponse `json:"events"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toEventResponse(e *store.Event) eventResponse {
	return eventResponse{
		ID:         e.ID,
		Gesture:    e.Gesture,
		Direction:  e.Direction,
		Combined:   e.Combined,
		Command:    e.Command,
		Handedness: e.Handedness,
		Score:      e.Score,
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// ServeHTTP routes event requests. GET /api/events lists recent events,
// newest first; GET /api/events/counts returns emission counts per
// combined label.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if r.URL.Path == "/api/events/counts" {
		h.counts(w, r)
		return
	}
	h.list(w, r)
}

func (h *EventsHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	events, err := h.store.Events().ListRecent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list events")
		return
	}

	response := listEventsResponse{
		Events: make([]eventResponse, 0, len(events)),
	}
	for i := range events {
		response.Events = append(response.Events, toEventResponse(&events[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *EventsHandler) counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.Events().CountByCombined()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count events")
		return
	}

	writeJSON(w, http.StatusOK, map[string]map[string]int{"counts": counts})
}
