package repositories

import "github.com/magliflex/planner/pkg/domain/entities"

// UserRepository provides access to application accounts
type UserRepository interface {
	GetUser(id entities.UserID) (*entities.User, error)
	GetUserByUsername(username string) (*entities.User, error)
	GetAllUsers() ([]*entities.User, error)
	SaveUser(user *entities.User) error
	DeleteUser(id entities.UserID) error
	LoadUsers(users []*entities.User) error
}

// JournalRepository provides access to the warehouse movement journal
type JournalRepository interface {
	GetEntry(id entities.JournalEntryID) (*entities.JournalEntry, error)
	GetAllEntries() ([]*entities.JournalEntry, error)
	SaveEntry(entry *entities.JournalEntry) error
	DeleteEntry(id entities.JournalEntryID) error
	LoadEntries(entries []*entities.JournalEntry) error
}

// NotificationRepository provides access to persisted notifications
type NotificationRepository interface {
	GetAllNotifications() ([]*entities.Notification, error)
	SaveNotification(notification *entities.Notification) error
	LoadNotifications(notifications []*entities.Notification) error
}
