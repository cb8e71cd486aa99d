package app

import (
	"sort"

	"github.com/shrimpsizemoose/semla/internal/models"
	"github.com/shrimpsizemoose/semla/internal/scoring"
)

type PanelRow struct {
	Applicant    models.Applicant     `json:"applicant"`
	Evaluation   *models.Evaluation   `json:"evaluation,omitempty"`
	Total        int                  `json:"total"`
	Max          int                  `json:"max"`
	Interviewers []models.Interviewer `json:"interviewers"`
	// Writable is what the caller may edit; Highlighted is the UI hint
	// (writable sections that already carry a value). Values themselves are
	// never hidden, only writes are gated.
	Writable    models.SectionSet `json:"writable_sections"`
	Highlighted models.SectionSet `json:"highlighted_sections"`
}

type PanelGroup struct {
	JobID    int64      `json:"job_id"`
	JobTitle string     `json:"job_title"`
	Rows     []PanelRow `json:"rows"`
}

// ListPanel builds the ranked interview panel for the caller: applicants in
// an interview stage whose round has not ended, grouped per job, best total
// first. Ties keep application creation order, so re-running the query never
// reshuffles equal scores. Non-admin callers only see their assignments.
func (s *Service) ListPanel(caller *models.User, jobID *int64) ([]PanelGroup, error) {
	applicants, err := s.Store.ListPanelApplications(jobID)
	if err != nil {
		return nil, err
	}

	if !caller.IsAdmin() {
		assignedIDs, err := s.Store.ListAssignedApplicationIDs(caller.ID)
		if err != nil {
			return nil, err
		}
		allowed := make(map[int64]bool, len(assignedIDs))
		for _, id := range assignedIDs {
			allowed[id] = true
		}

		var kept []models.Applicant
		for _, a := range applicants {
			if allowed[a.ID] {
				kept = append(kept, a)
			}
		}
		applicants = kept
	}

	ids := make([]int64, 0, len(applicants))
	for _, a := range applicants {
		ids = append(ids, a.ID)
	}

	evaluations, err := s.Store.ListEvaluations(ids)
	if err != nil {
		return nil, err
	}
	assignments, err := s.Store.ListAssignments(ids)
	if err != nil {
		return nil, err
	}
	perms, err := s.ResolvePermissions(caller)
	if err != nil {
		return nil, err
	}

	jobs, err := s.Store.ListJobs()
	if err != nil {
		return nil, err
	}
	jobTitles := make(map[int64]string, len(jobs))
	for _, job := range jobs {
		jobTitles[job.ID] = job.Title
	}

	groups := make(map[int64]*PanelGroup)
	var order []int64
	for _, a := range applicants {
		ev := evaluations[a.ID]
		totals := scoring.ComputeTotals(ev)

		row := PanelRow{
			Applicant:    a,
			Evaluation:   ev,
			Total:        totals.Total,
			Max:          totals.Max,
			Interviewers: assignments[a.ID],
			Writable:     perms,
			Highlighted:  perms.Intersect(scoring.MarkedSections(ev)),
		}

		group, ok := groups[a.JobID]
		if !ok {
			group = &PanelGroup{JobID: a.JobID, JobTitle: jobTitles[a.JobID]}
			groups[a.JobID] = group
			order = append(order, a.JobID)
		}
		group.Rows = append(group.Rows, row)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	result := make([]PanelGroup, 0, len(order))
	for _, id := range order {
		group := groups[id]
		// stable keeps creation order for equal totals
		sort.SliceStable(group.Rows, func(i, j int) bool {
			return group.Rows[i].Total > group.Rows[j].Total
		})
		result = append(result, *group)
	}

	return result, nil
}
