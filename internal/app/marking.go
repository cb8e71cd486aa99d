package app

import (
	"fmt"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// SaveMarking persists one marking submission against an application. Fields
// outside the caller's permitted sections are dropped silently, so an
// interviewer submitting a full form still gets their allowed subset saved.
// A submission with nothing left after filtering fails without any write.
func (s *Service) SaveMarking(caller *models.User, applicationID int64, input models.MarkingInput) (*models.Evaluation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	applicant, err := s.Store.GetApplication(applicationID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrNotFound
	}

	if !caller.IsAdmin() {
		assigned, err := s.isAssigned(caller.ID, applicationID)
		if err != nil {
			return nil, err
		}
		if !assigned {
			return nil, ErrUnauthorized
		}
	}

	perms, err := s.ResolvePermissions(caller)
	if err != nil {
		return nil, err
	}

	var patch models.EvaluationPatch
	if perms.WrittenExam {
		patch.WrittenExam = input.WrittenExam
	}
	if perms.TechnicalViva {
		patch.TechnicalViva = input.TechnicalViva
	}
	if perms.Project {
		patch.ProjectRating = input.ProjectRating
	}
	if caller.IsAdmin() {
		// exclusion flags change the score denominator, admin only
		patch.ExcludeWritten = input.ExcludeWritten
		patch.ExcludeTechnical = input.ExcludeTechnical
		patch.ExcludeProject = input.ExcludeProject
	}

	if patch.Empty() {
		return nil, ErrNoPermittedFields
	}

	// Admin corrections keep marked_by intact so the actual marker stays
	// visible; non-admin writes track the last writer.
	if !caller.IsAdmin() {
		markedBy := caller.ID
		patch.MarkedBy = &markedBy
	}

	ev, err := s.Store.UpsertEvaluation(applicationID, patch)
	if err != nil {
		return nil, err
	}

	s.recordActivity(
		"marking_saved",
		"application",
		applicationID,
		applicant.Name,
		fmt.Sprintf("marked by %s (%s)", caller.Name, caller.Role),
	)

	return ev, nil
}

func (s *Service) isAssigned(interviewerID, applicationID int64) (bool, error) {
	ids, err := s.Store.ListAssignedApplicationIDs(interviewerID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == applicationID {
			return true, nil
		}
	}
	return false, nil
}
