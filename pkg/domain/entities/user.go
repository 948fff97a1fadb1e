package entities

import "fmt"

// UserID identifies a user
type UserID string

// Role is a coarse access role carried by a user. Roles map onto
// capabilities at the auth service boundary.
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePlanning  Role = "planning"
	RoleWarehouse Role = "warehouse"
)

// User is an application account. Passwords are stored and compared in
// plaintext, matching the system this replaces; hardening them is an
// explicit non-goal.
type User struct {
	ID                  UserID `json:"id"`
	Username            string `json:"username"`
	Password            string `json:"password"`
	Roles               []Role `json:"roles"`
	ForcePasswordChange bool   `json:"forcePasswordChange"`
}

// NewUser creates a validated User
func NewUser(id UserID, username, password string, roles []Role) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("user id cannot be empty")
	}
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}
	if password == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}

	return &User{
		ID:       id,
		Username: username,
		Password: password,
		Roles:    roles,
	}, nil
}

// HasRole reports whether the user carries the given role
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
