package entities

import "github.com/rs/xid"

// Quantity represents an integer piece count for discrete production units
type Quantity int64

// NewID returns a fresh identifier for catalog entities. The legacy browser
// application used Date.now() timestamps; xid keeps the same sortable-by
// creation-time property while staying collision free.
func NewID() string {
	return xid.New().String()
}
