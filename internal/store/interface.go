package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shrimpsizemoose/semla/internal/models"
)

type InterviewStore interface {
	Close() error
	ApplyMigrations(dir string) error

	GetApplication(id int64) (*models.Applicant, error)
	ListPanelApplications(jobID *int64) ([]models.Applicant, error)
	MarkInterview(id int64, interviewDate *int64) error
	SetDecision(id int64, status models.Status) error
	SetInterviewDate(id int64, interviewDate *int64) error
	EndInterviews(jobID *int64) (int64, error)

	GetEvaluation(applicationID int64) (*models.Evaluation, error)
	ListEvaluations(applicationIDs []int64) (map[int64]*models.Evaluation, error)
	UpsertEvaluation(applicationID int64, patch models.EvaluationPatch) (*models.Evaluation, error)

	GetMarkingPermission(interviewerID int64) (*models.MarkingPermission, error)
	SaveMarkingPermission(perm models.MarkingPermission) error

	ReplaceAssignments(applicationID int64, interviewerIDs []int64) error
	ListAssignedApplicationIDs(interviewerID int64) ([]int64, error)
	ListAssignments(applicationIDs []int64) (map[int64][]models.Interviewer, error)

	GetInterviewer(id int64) (*models.Interviewer, error)
	ListJobs() ([]models.Job, error)

	RecordActivity(entry *models.ActivityEntry) error
}

// BaseStore provides common functionality for different DB implementations
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory, translating dialect if needed
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file.Name(), err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name(), err)
		}
	}

	return nil
}

func (s *BaseStore) GetApplication(id int64) (*models.Applicant, error) {
	var applicant models.Applicant
	query := s.Converter(`
		SELECT id, name, email, job_id, status, interview_date, interview_ended, created_at
		FROM applications
		WHERE id = ?
	`)

	err := s.DB.Get(&applicant, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return &applicant, nil
}

// ListPanelApplications returns every applicant in an interview stage whose
// round has not been ended, in creation order. Creation order is the
// tie-break for the ranked panel, so it must be deterministic.
func (s *BaseStore) ListPanelApplications(jobID *int64) ([]models.Applicant, error) {
	query := `
		SELECT id, name, email, job_id, status, interview_date, interview_ended, created_at
		FROM applications
		WHERE status IN ('interview', 'selected', 'rejected')
		AND interview_ended = FALSE
	`
	args := []interface{}{}
	if jobID != nil {
		query += " AND job_id = ?"
		args = append(args, *jobID)
	}
	query += " ORDER BY created_at ASC, id ASC"

	var applicants []models.Applicant
	if err := s.DB.Select(&applicants, s.Converter(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list panel applications: %w", err)
	}
	return applicants, nil
}

// MarkInterview moves an applicant into the interview stage. Re-entering the
// stage always reopens an ended round. A nil date leaves the stored date as is.
func (s *BaseStore) MarkInterview(id int64, interviewDate *int64) error {
	var err error
	if interviewDate != nil {
		query := s.Converter(`
			UPDATE applications
			SET status = 'interview', interview_ended = FALSE, interview_date = ?
			WHERE id = ?
		`)
		_, err = s.DB.Exec(query, *interviewDate, id)
	} else {
		query := s.Converter(`
			UPDATE applications
			SET status = 'interview', interview_ended = FALSE
			WHERE id = ?
		`)
		_, err = s.DB.Exec(query, id)
	}
	if err != nil {
		return fmt.Errorf("failed to mark interview: %w", err)
	}
	return nil
}

func (s *BaseStore) SetDecision(id int64, status models.Status) error {
	query := s.Converter(`
		UPDATE applications
		SET status = ?
		WHERE id = ?
	`)
	if _, err := s.DB.Exec(query, status, id); err != nil {
		return fmt.Errorf("failed to set decision: %w", err)
	}
	return nil
}

func (s *BaseStore) SetInterviewDate(id int64, interviewDate *int64) error {
	query := s.Converter(`
		UPDATE applications
		SET interview_date = ?
		WHERE id = ?
	`)
	if _, err := s.DB.Exec(query, interviewDate, id); err != nil {
		return fmt.Errorf("failed to set interview date: %w", err)
	}
	return nil
}

// EndInterviews flags every in-flight interview round as ended, optionally
// scoped to one job. Already-ended rows are skipped, which makes the bulk
// operation idempotent and the returned count meaningful.
func (s *BaseStore) EndInterviews(jobID *int64) (int64, error) {
	query := `
		UPDATE applications
		SET interview_ended = TRUE
		WHERE status IN ('interview', 'selected', 'rejected')
		AND interview_ended = FALSE
	`
	args := []interface{}{}
	if jobID != nil {
		query += " AND job_id = ?"
		args = append(args, *jobID)
	}

	res, err := s.DB.Exec(s.Converter(query), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to end interviews: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count ended interviews: %w", err)
	}
	return count, nil
}

func (s *BaseStore) GetEvaluation(applicationID int64) (*models.Evaluation, error) {
	var ev models.Evaluation
	query := s.Converter(`
		SELECT application_id, written_exam, technical_viva, project_rating,
		       exclude_written, exclude_technical, exclude_project, marked_by
		FROM evaluations
		WHERE application_id = ?
	`)

	err := s.DB.Get(&ev, query, applicationID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get evaluation: %w", err)
	}
	return &ev, nil
}

func (s *BaseStore) ListEvaluations(applicationIDs []int64) (map[int64]*models.Evaluation, error) {
	result := make(map[int64]*models.Evaluation, len(applicationIDs))
	if len(applicationIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT application_id, written_exam, technical_viva, project_rating,
		       exclude_written, exclude_technical, exclude_project, marked_by
		FROM evaluations
		WHERE application_id IN (?)
	`, applicationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build evaluations query: %w", err)
	}

	var evs []models.Evaluation
	if err := s.DB.Select(&evs, s.Converter(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	for i := range evs {
		result[evs[i].ApplicationID] = &evs[i]
	}
	return result, nil
}

// UpsertEvaluation merges only the supplied patch fields into the stored row.
// The merge happens in a single INSERT .. ON CONFLICT statement, so two
// writers hitting disjoint sections both persist: columns missing from a
// patch never appear in its SET list.
func (s *BaseStore) UpsertEvaluation(applicationID int64, patch models.EvaluationPatch) (*models.Evaluation, error) {
	cols := []string{"application_id"}
	vals := []string{"?"}
	args := []interface{}{applicationID}
	var updates []string

	add := func(col string, value interface{}) {
		cols = append(cols, col)
		vals = append(vals, "?")
		args = append(args, value)
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	if patch.WrittenExam != nil {
		add("written_exam", *patch.WrittenExam)
	}
	if patch.TechnicalViva != nil {
		add("technical_viva", *patch.TechnicalViva)
	}
	if patch.ProjectRating != nil {
		add("project_rating", *patch.ProjectRating)
	}
	if patch.ExcludeWritten != nil {
		add("exclude_written", *patch.ExcludeWritten)
	}
	if patch.ExcludeTechnical != nil {
		add("exclude_technical", *patch.ExcludeTechnical)
	}
	if patch.ExcludeProject != nil {
		add("exclude_project", *patch.ExcludeProject)
	}
	if patch.MarkedBy != nil {
		add("marked_by", *patch.MarkedBy)
	}

	if len(updates) == 0 {
		return s.GetEvaluation(applicationID)
	}

	query := fmt.Sprintf(`
		INSERT INTO evaluations (%s)
		VALUES (%s)
		ON CONFLICT(application_id) DO UPDATE SET %s
	`,
		strings.Join(cols, ", "),
		strings.Join(vals, ", "),
		strings.Join(updates, ", "),
	)

	if _, err := s.DB.Exec(s.Converter(query), args...); err != nil {
		return nil, fmt.Errorf("failed to upsert evaluation: %w", err)
	}

	return s.GetEvaluation(applicationID)
}

func (s *BaseStore) GetMarkingPermission(interviewerID int64) (*models.MarkingPermission, error) {
	var perm models.MarkingPermission
	query := s.Converter(`
		SELECT interviewer_id, written_exam, technical_viva, project
		FROM marking_permissions
		WHERE interviewer_id = ?
	`)

	err := s.DB.Get(&perm, query, interviewerID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get marking permission: %w", err)
	}
	return &perm, nil
}

func (s *BaseStore) SaveMarkingPermission(perm models.MarkingPermission) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO marking_permissions (interviewer_id, written_exam, technical_viva, project)
		VALUES (:interviewer_id, :written_exam, :technical_viva, :project)
		ON CONFLICT(interviewer_id) DO UPDATE SET
		written_exam = :written_exam,
		technical_viva = :technical_viva,
		project = :project
	`, perm)
	if err != nil {
		return fmt.Errorf("failed to save marking permission: %w", err)
	}
	return nil
}

// ReplaceAssignments swaps the whole assignment set for one application in a
// single transaction. A reader sees either the old set or the new one, never
// the deleted-but-not-yet-inserted state.
func (s *BaseStore) ReplaceAssignments(applicationID int64, interviewerIDs []int64) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin assignment transaction: %w", err)
	}
	defer tx.Rollback()

	deleteQuery := s.Converter(`DELETE FROM interview_assignments WHERE application_id = ?`)
	if _, err := tx.Exec(deleteQuery, applicationID); err != nil {
		return fmt.Errorf("failed to clear assignments: %w", err)
	}

	insertQuery := s.Converter(`
		INSERT INTO interview_assignments (application_id, interviewer_id)
		VALUES (?, ?)
	`)
	for _, interviewerID := range interviewerIDs {
		if _, err := tx.Exec(insertQuery, applicationID, interviewerID); err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assignments: %w", err)
	}
	return nil
}

func (s *BaseStore) ListAssignedApplicationIDs(interviewerID int64) ([]int64, error) {
	var ids []int64
	query := s.Converter(`
		SELECT application_id
		FROM interview_assignments
		WHERE interviewer_id = ?
		ORDER BY application_id ASC
	`)

	if err := s.DB.Select(&ids, query, interviewerID); err != nil {
		return nil, fmt.Errorf("failed to list assigned applications: %w", err)
	}
	return ids, nil
}

func (s *BaseStore) ListAssignments(applicationIDs []int64) (map[int64][]models.Interviewer, error) {
	result := make(map[int64][]models.Interviewer, len(applicationIDs))
	if len(applicationIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`
		SELECT a.application_id,
		       a.interviewer_id,
		       i.name AS interviewer_name,
		       i.role AS interviewer_role
		FROM interview_assignments a
		JOIN interviewers i ON i.id = a.interviewer_id
		WHERE a.application_id IN (?)
		ORDER BY a.application_id, a.interviewer_id
	`, applicationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build assignments query: %w", err)
	}

	var rows []AssignmentRow
	if err := s.DB.Select(&rows, s.Converter(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	for _, row := range rows {
		result[row.ApplicationID] = append(result[row.ApplicationID], models.Interviewer{
			ID:   row.InterviewerID,
			Name: row.InterviewerName,
			Role: models.Role(row.InterviewerRole),
		})
	}
	return result, nil
}

func (s *BaseStore) GetInterviewer(id int64) (*models.Interviewer, error) {
	var interviewer models.Interviewer
	query := s.Converter(`
		SELECT id, name, role
		FROM interviewers
		WHERE id = ?
	`)

	err := s.DB.Get(&interviewer, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get interviewer: %w", err)
	}
	return &interviewer, nil
}

func (s *BaseStore) ListJobs() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.Select(&jobs, `
		SELECT id, title
		FROM jobs
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (s *BaseStore) RecordActivity(entry *models.ActivityEntry) error {
	_, err := s.DB.NamedExec(`
		INSERT INTO activity_log (timestamp, action, entity_type, entity_id, entity_name, details)
		VALUES (:timestamp, :action, :entity_type, :entity_id, :entity_name, :details)
	`, entry)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}
