package entities

// NotificationType classifies a notification for display
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
	NotifySuccess NotificationType = "success"
)

// Notification is a persisted message for the user, e.g. a low-stock alert
type Notification struct {
	ID      string           `json:"id"`
	Message string           `json:"message"`
	Date    string           `json:"date"` // RFC 3339
	Type    NotificationType `json:"type"`
	Read    bool             `json:"read"`
}
