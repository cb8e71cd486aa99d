package app

import (
	"fmt"

	"github.com/shrimpsizemoose/semla/internal/models"
)

// ResolvePermissions returns the sections the user may write. The admin role
// bypasses the stored grants entirely; it is a role property, not a seeded
// row. For everyone else a missing row denies every section.
func (s *Service) ResolvePermissions(user *models.User) (models.SectionSet, error) {
	if user.IsAdmin() {
		return models.AllSections(), nil
	}

	perm, err := s.Store.GetMarkingPermission(user.ID)
	if err != nil {
		return models.SectionSet{}, fmt.Errorf("failed to resolve permissions: %w", err)
	}
	if perm == nil {
		return models.SectionSet{}, nil
	}

	return models.SectionSet{
		WrittenExam:   perm.WrittenExam,
		TechnicalViva: perm.TechnicalViva,
		Project:       perm.Project,
	}, nil
}

// SetMarkingPermission creates or replaces an interviewer's grant. Admin only.
func (s *Service) SetMarkingPermission(caller *models.User, perm models.MarkingPermission) error {
	if !caller.IsAdmin() {
		return ErrUnauthorized
	}
	if err := perm.Validate(); err != nil {
		return err
	}

	if err := s.Store.SaveMarkingPermission(perm); err != nil {
		return err
	}

	s.recordActivity(
		"permission_set",
		"interviewer",
		perm.InterviewerID,
		"",
		fmt.Sprintf("written=%t technical=%t project=%t", perm.WrittenExam, perm.TechnicalViva, perm.Project),
	)
	return nil
}
