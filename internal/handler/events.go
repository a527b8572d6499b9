package handler

import (
	"net/http"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/eventlog"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
)

// EventsHandler pages through the audit log
type EventsHandler struct {
	log eventlog.Service
}

// NewEventsHandler creates the audit log handler
func NewEventsHandler(log eventlog.Service) *EventsHandler {
	return &EventsHandler{log: log}
}

// EventsResponse is one page of the audit log. Next is the cursor for the
// following page.
type EventsResponse struct {
	Events []domain.EventRecord `json:"events"`
	Next   int64                `json:"next"`
}

// ListEvents returns records after the given sequence number
// @Summary List audit events
// @Tags events
// @Produce json
// @Param after query int false "Return records with a greater sequence number"
// @Param limit query int false "Page size"
// @Success 200 {object} EventsResponse
// @Router /events [get]
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	after, ok := intQueryParam(w, r, QueryAfter, 0)
	if !ok {
		return
	}
	limit, ok := intQueryParam(w, r, QueryLimit, 0)
	if !ok {
		return
	}

	records, err := h.log.List(r.Context(), after, int(limit))
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgListEventsFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgListEventsFailed)
		return
	}

	next := after
	if n := len(records); n > 0 {
		next = records[n-1].Seq
	} else {
		records = []domain.EventRecord{}
	}
	respondJSON(w, http.StatusOK, EventsResponse{Events: records, Next: next})
}
