package app

import (
	"fmt"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// Assign replaces the interviewer set for an application wholesale. The empty
// set is valid and means nobody but admins can see or mark the applicant.
func (s *Service) Assign(caller *models.User, applicationID int64, interviewerIDs []int64) error {
	if !caller.IsAdmin() {
		return ErrUnauthorized
	}

	applicant, err := s.requireApplication(applicationID)
	if err != nil {
		return err
	}

	for _, id := range interviewerIDs {
		interviewer, err := s.Store.GetInterviewer(id)
		if err != nil {
			return err
		}
		if interviewer == nil {
			return fmt.Errorf("interviewer %d: %w", id, ErrNotFound)
		}
	}

	if err := s.Store.ReplaceAssignments(applicationID, interviewerIDs); err != nil {
		return err
	}

	s.recordActivity(
		"assignment_replaced",
		"application",
		applicationID,
		applicant.Name,
		fmt.Sprintf("%d interviewers", len(interviewerIDs)),
	)
	return nil
}

func (s *Service) ListAssignedApplicationIDs(interviewerID int64) ([]int64, error) {
	return s.Store.ListAssignedApplicationIDs(interviewerID)
}
