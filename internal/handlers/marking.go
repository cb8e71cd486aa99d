package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/metrics"
	"github.com/shrimpsizemoose/semla/internal/models"
)

func (h *InterviewHandler) HandlePanel(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		metrics.APIRequestDuration.WithLabelValues(
			r.URL.Path,
			r.Method,
			"200",
		).Observe(duration)
	}()

	if !h.service.ValidateHeaders(r.Header) {
		http.Error(w, "these are not the droids you are looking for", http.StatusForbidden)
		return
	}

	user, err := h.service.CurrentUser(r)
	if err != nil {
		logger.Error.Printf("Auth failed: %v", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobID, err := optionalJobID(r)
	if err != nil {
		http.Error(w, "Invalid job_id", http.StatusBadRequest)
		return
	}

	groups, err := h.service.ListPanel(user, jobID)
	if err != nil {
		logger.Error.Printf("Failed to build panel for user %d: %v", user.ID, err)
		writeError(w, err)
		return
	}

	for _, group := range groups {
		job := fmt.Sprintf("%d", group.JobID)
		for _, row := range group.Rows {
			metrics.PanelTotalHistogram.WithLabelValues(job).Observe(float64(row.Total))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"groups": groups,
	}); err != nil {
		logger.Error.Printf("Failed to encode panel: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *InterviewHandler) HandleMarking(w http.ResponseWriter, r *http.Request) {
	if !h.service.ValidateHeaders(r.Header) {
		http.Error(w, "these are not the droids you are looking for", http.StatusForbidden)
		return
	}

	user, err := h.service.CurrentUser(r)
	if err != nil {
		logger.Error.Printf("Auth failed: %v", err)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	applicationID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid application id", http.StatusBadRequest)
		return
	}

	var input models.MarkingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ev, err := h.service.SaveMarking(user, applicationID, input)
	if err != nil {
		logger.Error.Printf("Marking save failed for application %d: %v", applicationID, err)
		writeError(w, err)
		return
	}

	metrics.MarkingSavesTotal.WithLabelValues(string(user.Role)).Inc()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ev); err != nil {
		logger.Error.Printf("Failed to encode evaluation: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
