// Package models defines the portal's domain records: users and induction
// content sections. Field names in JSON tags match the persisted state blobs.
package models

// Role classifies a user's access level.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is one portal account.
//
// Password is stored and compared in plaintext; securing credentials is an
// explicit non-goal of this system.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	// JoinDate is a date-only string in YYYY-MM-DD form.
	JoinDate string `json:"joinDate"`
	// Progress is the induction completion percentage, 0..100.
	Progress int `json:"progress"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
