// Package auth maps the legacy stringly role checks onto a fixed capability
// set checked once at the service-method boundary. Credentials are compared
// in plaintext: the tool replaces a single-profile browser application and
// real authentication security is an explicit non-goal.
package auth

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// Permission is a capability required by a service operation
type Permission int

const (
	// PermPlanning covers lot calculation, saving, editing and deletion
	PermPlanning Permission = iota
	// PermWarehouse covers journal entries and stock movements
	PermWarehouse
	// PermAdmin covers catalog and user administration
	PermAdmin
)

// String method for the Permission enum
func (p Permission) String() string {
	switch p {
	case PermPlanning:
		return "planning"
	case PermWarehouse:
		return "warehouse"
	case PermAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// rolegrants maps each role to the capabilities it confers. Admin implies
// everything, matching the legacy behavior where the admin account carried
// every role.
var roleGrants = map[entities.Role][]Permission{
	entities.RoleAdmin:     {PermAdmin, PermPlanning, PermWarehouse},
	entities.RolePlanning:  {PermPlanning},
	entities.RoleWarehouse: {PermWarehouse},
}

// Service authenticates users and answers capability checks
type Service struct {
	userRepo repositories.UserRepository
}

// NewService creates an auth service
func NewService(userRepo repositories.UserRepository) *Service {
	return &Service{userRepo: userRepo}
}

// Authenticate verifies a username/password pair and returns the account
func (s *Service) Authenticate(username, password string) (*entities.User, error) {
	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if user.Password != password {
		log.Warn().Str("username", username).Msg("failed login attempt")
		return nil, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

// Authorize checks that the user holds the given capability
func (s *Service) Authorize(user *entities.User, perm Permission) error {
	if user == nil {
		return fmt.Errorf("permission %s requires an authenticated user", perm)
	}
	for _, role := range user.Roles {
		for _, granted := range roleGrants[role] {
			if granted == perm {
				return nil
			}
		}
	}
	return fmt.Errorf("user %s lacks the %s permission", user.Username, perm)
}

// ChangePassword replaces the user's password and clears the force-change
// flag
func (s *Service) ChangePassword(userID entities.UserID, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("new password cannot be empty")
	}
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	user.Password = newPassword
	user.ForcePasswordChange = false
	return s.userRepo.SaveUser(user)
}
