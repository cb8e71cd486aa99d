package store

// AssignmentRow is the join of an assignment with the interviewer directory.
type AssignmentRow struct {
	ApplicationID   int64  `db:"application_id"`
	InterviewerID   int64  `db:"interviewer_id"`
	InterviewerName string `db:"interviewer_name"`
	InterviewerRole string `db:"interviewer_role"`
}
