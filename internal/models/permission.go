package models

import (
	"github.com/go-playground/validator/v10"
)

// MarkingPermission is the stored per-interviewer grant. Admins never have a
// row here: the admin role bypasses the table entirely.
type MarkingPermission struct {
	InterviewerID int64 `db:"interviewer_id" json:"interviewer_id" validate:"required"`
	WrittenExam   bool  `db:"written_exam" json:"written_exam"`
	TechnicalViva bool  `db:"technical_viva" json:"technical_viva"`
	Project       bool  `db:"project" json:"project"`
}

func (p *MarkingPermission) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// SectionSet is a resolved set of scoring sections.
type SectionSet struct {
	WrittenExam   bool `json:"written_exam"`
	TechnicalViva bool `json:"technical_viva"`
	Project       bool `json:"project"`
}

func AllSections() SectionSet {
	return SectionSet{WrittenExam: true, TechnicalViva: true, Project: true}
}

func (s SectionSet) Any() bool {
	return s.WrittenExam || s.TechnicalViva || s.Project
}

func (s SectionSet) Intersect(other SectionSet) SectionSet {
	return SectionSet{
		WrittenExam:   s.WrittenExam && other.WrittenExam,
		TechnicalViva: s.TechnicalViva && other.TechnicalViva,
		Project:       s.Project && other.Project,
	}
}
