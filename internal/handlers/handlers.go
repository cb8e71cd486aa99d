package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/shrimpsizemoose/semla/internal/app"
)

type InterviewHandler struct {
	service *app.Service
}

func NewInterviewHandler(service *app.Service) *InterviewHandler {
	return &InterviewHandler{
		service: service,
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// optionalJobID reads ?job_id= as an optional scope; absent means all jobs.
func optionalJobID(r *http.Request) (*int64, error) {
	raw := r.URL.Query().Get("job_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func writeError(w http.ResponseWriter, err error) {
	var vErrs validator.ValidationErrors
	switch {
	case errors.Is(err, app.ErrUnauthorized):
		http.Error(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, app.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.Is(err, app.ErrNoPermittedFields):
		http.Error(w, "No permitted section in submission", http.StatusUnprocessableEntity)
	case errors.As(err, &vErrs):
		http.Error(w, "Validation failed: "+vErrs.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
