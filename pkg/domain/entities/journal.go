package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryID identifies a warehouse journal entry
type JournalEntryID string

// JournalEntryType is the direction of a stock movement
type JournalEntryType string

const (
	JournalLoad   JournalEntryType = "load"
	JournalUnload JournalEntryType = "unload"
)

// Valid reports whether the entry type is one of the known values
func (t JournalEntryType) Valid() bool {
	return t == JournalLoad || t == JournalUnload
}

// JournalEntry records one warehouse stock movement. Load entries may later
// have an actual consumption registered against them, which is what finally
// draws down the stock.
type JournalEntry struct {
	ID         JournalEntryID   `json:"id"`
	Date       string           `json:"date"` // ISO YYYY-MM-DD
	MaterialID MaterialID       `json:"materialId"`
	Type       JournalEntryType `json:"type"`
	Quantity   decimal.Decimal  `json:"quantity"`
	Reference  string           `json:"reference,omitempty"`

	// ActualConsumed is set once a consumption has been registered against
	// a load entry; nil means not yet consumed.
	ActualConsumed *decimal.Decimal `json:"actualConsumed,omitempty"`
}

// NewJournalEntry creates a validated JournalEntry
func NewJournalEntry(id JournalEntryID, date string, materialID MaterialID, entryType JournalEntryType, quantity decimal.Decimal, reference string) (*JournalEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("journal entry id cannot be empty")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("journal entry date must be YYYY-MM-DD, got %q: %w", date, err)
	}
	if materialID == "" {
		return nil, fmt.Errorf("journal entry material id cannot be empty")
	}
	if !entryType.Valid() {
		return nil, fmt.Errorf("journal entry type must be load or unload, got %q", entryType)
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("journal entry quantity must be positive, got %s", quantity)
	}

	return &JournalEntry{
		ID:         id,
		Date:       date,
		MaterialID: materialID,
		Type:       entryType,
		Quantity:   quantity,
		Reference:  reference,
	}, nil
}
