package models

type Role string

const (
	RoleAdmin          Role = "admin"
	RoleInterviewAdmin Role = "interview_admin"
)

// User is the acting identity resolved by the session provider.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Interviewer is a row in the read-only staff directory, used to resolve
// assignment display names.
type Interviewer struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Role Role   `db:"role" json:"role"`
}
