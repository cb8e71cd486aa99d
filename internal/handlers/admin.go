package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/metrics"
	"github.com/shrimpsizemoose/semla/internal/models"
)

func (h *InterviewHandler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	applicationID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid application id", http.StatusBadRequest)
		return
	}

	var body struct {
		InterviewDate *int64 `json:"interview_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.MoveToInterview(user, applicationID, body.InterviewDate); err != nil {
		logger.Error.Printf("Failed to schedule interview for %d: %v", applicationID, err)
		writeError(w, err)
		return
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(models.StatusInterview)).Inc()

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *InterviewHandler) HandleDecision(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	applicationID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid application id", http.StatusBadRequest)
		return
	}

	var body struct {
		Status models.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Decide(user, applicationID, body.Status); err != nil {
		logger.Error.Printf("Failed to record decision for %d: %v", applicationID, err)
		writeError(w, err)
		return
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(body.Status)).Inc()

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *InterviewHandler) HandleInterviewDate(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	applicationID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid application id", http.StatusBadRequest)
		return
	}

	var body struct {
		InterviewDate *int64 `json:"interview_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.SetInterviewDate(user, applicationID, body.InterviewDate); err != nil {
		logger.Error.Printf("Failed to set interview date for %d: %v", applicationID, err)
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *InterviewHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	applicationID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid application id", http.StatusBadRequest)
		return
	}

	var body struct {
		InterviewerIDs []int64 `json:"interviewer_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Assign(user, applicationID, body.InterviewerIDs); err != nil {
		logger.Error.Printf("Failed to assign interviewers for %d: %v", applicationID, err)
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *InterviewHandler) HandleEndInterviews(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	jobID, err := optionalJobID(r)
	if err != nil {
		http.Error(w, "Invalid job_id", http.StatusBadRequest)
		return
	}

	count, err := h.service.EndInterviews(user, jobID)
	if err != nil {
		logger.Error.Printf("Failed to end interviews: %v", err)
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]int64{"count": count}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

func (h *InterviewHandler) HandlePermissions(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	interviewerID, err := pathID(r)
	if err != nil {
		http.Error(w, "Invalid interviewer id", http.StatusBadRequest)
		return
	}

	var perm models.MarkingPermission
	if err := json.NewDecoder(r.Body).Decode(&perm); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	perm.InterviewerID = interviewerID

	if err := h.service.SetMarkingPermission(user, perm); err != nil {
		logger.Error.Printf("Failed to set permissions for interviewer %d: %v", interviewerID, err)
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
