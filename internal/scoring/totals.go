// internal/scoring/totals.go
package scoring

import (
	"github.com/shrimpsizemoose/semla/internal/models"
)

const (
	MaxWrittenExam   = 30
	MaxTechnicalViva = 10
	MaxProjectRating = 5

	// Each project star is worth two points in the total.
	ProjectWeight = 2
)

type Totals struct {
	Total int `json:"total"`
	Max   int `json:"max"`
}

// ComputeTotals computes the ranking total for one evaluation. An excluded
// section contributes zero to both total and max: it leaves the denominator,
// so exclusion never penalizes an applicant. An unmarked section contributes
// zero to the total but keeps its slot in max unless excluded. A nil
// evaluation means nothing has been marked yet.
func ComputeTotals(ev *models.Evaluation) Totals {
	var t Totals

	if ev == nil {
		t.Max = MaxWrittenExam + MaxTechnicalViva + MaxProjectRating*ProjectWeight
		return t
	}

	if !ev.ExcludeWritten {
		t.Max += MaxWrittenExam
		if ev.WrittenExam != nil {
			t.Total += *ev.WrittenExam
		}
	}

	if !ev.ExcludeTechnical {
		t.Max += MaxTechnicalViva
		if ev.TechnicalViva != nil {
			t.Total += *ev.TechnicalViva
		}
	}

	if !ev.ExcludeProject {
		t.Max += MaxProjectRating * ProjectWeight
		if ev.ProjectRating != nil {
			t.Total += *ev.ProjectRating * ProjectWeight
		}
	}

	return t
}

// MarkedSections reports which sections carry a stored value. Intersected
// with a caller's permissions this drives the UI highlight; it never hides
// values, reads are not gated.
func MarkedSections(ev *models.Evaluation) models.SectionSet {
	if ev == nil {
		return models.SectionSet{}
	}
	return models.SectionSet{
		WrittenExam:   ev.WrittenExam != nil,
		TechnicalViva: ev.TechnicalViva != nil,
		Project:       ev.ProjectRating != nil,
	}
}
