package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// UserRepository provides in-memory account storage
type UserRepository struct {
	users map[entities.UserID]*entities.User
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[entities.UserID]*entities.User)}
}

// Verify interface compliance
var _ repositories.UserRepository = (*UserRepository)(nil)

// LoadUsers loads users into the repository
func (r *UserRepository) LoadUsers(users []*entities.User) error {
	for _, u := range users {
		if err := r.SaveUser(u); err != nil {
			return err
		}
	}
	return nil
}

// SaveUser inserts or replaces a user
func (r *UserRepository) SaveUser(user *entities.User) error {
	if user == nil || user.ID == "" {
		return fmt.Errorf("cannot save user without id")
	}
	r.users[user.ID] = user
	return nil
}

// GetUser returns the user with the given id
func (r *UserRepository) GetUser(id entities.UserID) (*entities.User, error) {
	user, exists := r.users[id]
	if !exists {
		return nil, fmt.Errorf("user not found: %s", id)
	}
	return user, nil
}

// GetUserByUsername returns the user with the given username
func (r *UserRepository) GetUserByUsername(username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user not found: %s", username)
}

// GetAllUsers returns all users sorted by username
func (r *UserRepository) GetAllUsers() ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// DeleteUser removes a user
func (r *UserRepository) DeleteUser(id entities.UserID) error {
	if _, exists := r.users[id]; !exists {
		return fmt.Errorf("user not found: %s", id)
	}
	delete(r.users, id)
	return nil
}
