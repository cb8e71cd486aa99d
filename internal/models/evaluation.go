package models

import (
	"github.com/go-playground/validator/v10"
)

// Evaluation holds one scoring record per application. A nil score means the
// section has not been marked yet, which is not the same as zero.
type Evaluation struct {
	ApplicationID    int64  `db:"application_id" json:"application_id"`
	WrittenExam      *int   `db:"written_exam" json:"written_exam,omitempty"`
	TechnicalViva    *int   `db:"technical_viva" json:"technical_viva,omitempty"`
	ProjectRating    *int   `db:"project_rating" json:"project_rating,omitempty"`
	ExcludeWritten   bool   `db:"exclude_written" json:"exclude_written"`
	ExcludeTechnical bool   `db:"exclude_technical" json:"exclude_technical"`
	ExcludeProject   bool   `db:"exclude_project" json:"exclude_project"`
	MarkedBy         *int64 `db:"marked_by" json:"marked_by,omitempty"`
}

// MarkingInput is one marking submission as it arrives from a caller. Fields
// left nil are not part of the submission and stay untouched in storage.
type MarkingInput struct {
	WrittenExam      *int  `json:"written_exam" validate:"omitempty,min=0,max=30"`
	TechnicalViva    *int  `json:"technical_viva" validate:"omitempty,min=0,max=10"`
	ProjectRating    *int  `json:"project_rating" validate:"omitempty,min=0,max=5"`
	ExcludeWritten   *bool `json:"exclude_written"`
	ExcludeTechnical *bool `json:"exclude_technical"`
	ExcludeProject   *bool `json:"exclude_project"`
}

func (m *MarkingInput) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// EvaluationPatch is the permission-filtered subset of a submission that
// actually reaches storage. Only non-nil fields are written.
type EvaluationPatch struct {
	WrittenExam      *int
	TechnicalViva    *int
	ProjectRating    *int
	ExcludeWritten   *bool
	ExcludeTechnical *bool
	ExcludeProject   *bool
	MarkedBy         *int64
}

// Empty reports whether the patch carries no scoring fields. MarkedBy does not
// count: it is bookkeeping, not a permitted section.
func (p EvaluationPatch) Empty() bool {
	return p.WrittenExam == nil &&
		p.TechnicalViva == nil &&
		p.ProjectRating == nil &&
		p.ExcludeWritten == nil &&
		p.ExcludeTechnical == nil &&
		p.ExcludeProject == nil
}
