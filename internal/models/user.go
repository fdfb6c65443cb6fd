package models

type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated caller as asserted by the upstream auth
// gateway. The service itself never issues or verifies credentials.
type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}
