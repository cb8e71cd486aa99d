package models

import (
	"github.com/go-playground/validator/v10"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusViewed    Status = "viewed"
	StatusInterview Status = "interview"
	StatusSelected  Status = "selected"
	StatusRejected  Status = "rejected"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusViewed, StatusInterview, StatusSelected, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether the status is a terminal interview outcome.
func (s Status) IsDecision() bool {
	return s == StatusSelected || s == StatusRejected
}

// InPanel reports whether an applicant with this status belongs to the
// interview panel (the ended flag is checked separately).
func (s Status) InPanel() bool {
	return s == StatusInterview || s == StatusSelected || s == StatusRejected
}

type Applicant struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name" validate:"required"`
	Email          string `db:"email" json:"email" validate:"required,email"`
	JobID          int64  `db:"job_id" json:"job_id" validate:"required"`
	Status         Status `db:"status" json:"status"`
	InterviewDate  *int64 `db:"interview_date" json:"interview_date,omitempty"`
	InterviewEnded bool   `db:"interview_ended" json:"interview_ended"`
	CreatedAt      int64  `db:"created_at" json:"created_at"`
}

func (a *Applicant) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}

type Job struct {
	ID    int64  `db:"id" json:"id"`
	Title string `db:"title" json:"title"`
}
