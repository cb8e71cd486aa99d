package app

import (
	"fmt"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// MoveToInterview puts an applicant into the interview stage. An optional
// date is stored along the way; re-entering the stage always reopens an
// earlier ended round. Scores from a prior round are kept, not reset.
func (s *Service) MoveToInterview(caller *models.User, applicationID int64, interviewDate *int64) error {
	applicant, err := s.requireApplication(applicationID)
	if err != nil {
		return err
	}
	if err := s.requireAdminOrAssigned(caller, applicationID); err != nil {
		return err
	}

	if err := s.Store.MarkInterview(applicationID, interviewDate); err != nil {
		return err
	}

	s.recordActivity("status_interview", "application", applicationID, applicant.Name, fmt.Sprintf("by %s", caller.Name))
	return nil
}

// Decide records a terminal outcome. No score threshold is enforced here:
// selection and rejection are human judgment calls.
func (s *Service) Decide(caller *models.User, applicationID int64, status models.Status) error {
	if !status.IsDecision() {
		return fmt.Errorf("%q is not a decision status", status)
	}

	applicant, err := s.requireApplication(applicationID)
	if err != nil {
		return err
	}
	if err := s.requireAdminOrAssigned(caller, applicationID); err != nil {
		return err
	}

	if err := s.Store.SetDecision(applicationID, status); err != nil {
		return err
	}

	s.recordActivity("status_"+string(status), "application", applicationID, applicant.Name, fmt.Sprintf("by %s", caller.Name))
	return nil
}

// SetInterviewDate sets or clears the date independently of status. Admin only.
func (s *Service) SetInterviewDate(caller *models.User, applicationID int64, interviewDate *int64) error {
	if !caller.IsAdmin() {
		return ErrUnauthorized
	}

	applicant, err := s.requireApplication(applicationID)
	if err != nil {
		return err
	}

	if err := s.Store.SetInterviewDate(applicationID, interviewDate); err != nil {
		return err
	}

	details := "date cleared"
	if interviewDate != nil {
		details = fmt.Sprintf("date set to %d", *interviewDate)
	}
	s.recordActivity("interview_date", "application", applicationID, applicant.Name, details)
	return nil
}

// EndInterviews closes the current round for every in-flight applicant,
// optionally scoped to one job, and reports how many rows were touched.
// Running it twice in a row yields zero the second time.
func (s *Service) EndInterviews(caller *models.User, jobID *int64) (int64, error) {
	if !caller.IsAdmin() {
		return 0, ErrUnauthorized
	}

	count, err := s.Store.EndInterviews(jobID)
	if err != nil {
		return 0, err
	}

	var entityID int64
	if jobID != nil {
		entityID = *jobID
	}
	s.recordActivity("interviews_ended", "job", entityID, "", fmt.Sprintf("%d applications", count))

	return count, nil
}

func (s *Service) requireApplication(applicationID int64) (*models.Applicant, error) {
	applicant, err := s.Store.GetApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrNotFound
	}
	return applicant, nil
}

func (s *Service) requireAdminOrAssigned(caller *models.User, applicationID int64) error {
	if caller.IsAdmin() {
		return nil
	}
	assigned, err := s.isAssigned(caller.ID, applicationID)
	if err != nil {
		return err
	}
	if !assigned {
		return ErrUnauthorized
	}
	return nil
}
