package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// JournalRepository provides in-memory storage for warehouse journal entries
type JournalRepository struct {
	entries map[entities.JournalEntryID]*entities.JournalEntry
}

// NewJournalRepository creates a new in-memory journal repository
func NewJournalRepository() *JournalRepository {
	return &JournalRepository{entries: make(map[entities.JournalEntryID]*entities.JournalEntry)}
}

// Verify interface compliance
var _ repositories.JournalRepository = (*JournalRepository)(nil)

// LoadEntries loads journal entries into the repository
func (r *JournalRepository) LoadEntries(entries []*entities.JournalEntry) error {
	for _, e := range entries {
		if err := r.SaveEntry(e); err != nil {
			return err
		}
	}
	return nil
}

// SaveEntry inserts or replaces a journal entry
func (r *JournalRepository) SaveEntry(entry *entities.JournalEntry) error {
	if entry == nil || entry.ID == "" {
		return fmt.Errorf("cannot save journal entry without id")
	}
	r.entries[entry.ID] = entry
	return nil
}

// GetEntry returns the journal entry with the given id
func (r *JournalRepository) GetEntry(id entities.JournalEntryID) (*entities.JournalEntry, error) {
	entry, exists := r.entries[id]
	if !exists {
		return nil, fmt.Errorf("journal entry not found: %s", id)
	}
	return entry, nil
}

// GetAllEntries returns all journal entries sorted by date, newest first
func (r *JournalRepository) GetAllEntries() ([]*entities.JournalEntry, error) {
	entries := make([]*entities.JournalEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

// DeleteEntry removes a journal entry
func (r *JournalRepository) DeleteEntry(id entities.JournalEntryID) error {
	if _, exists := r.entries[id]; !exists {
		return fmt.Errorf("journal entry not found: %s", id)
	}
	delete(r.entries, id)
	return nil
}
