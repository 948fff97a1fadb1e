// Package warehouse manages raw-material stock through the movement journal.
// Stock never changes directly: every movement is a journal entry, and the
// journal is what makes a correction auditable.
package warehouse

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/magliflex/planner/pkg/application/services/auth"
	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
	"github.com/magliflex/planner/pkg/domain/services/workcalendar"
)

// Committer persists the document after a mutation
type Committer interface {
	Commit() error
}

// LowStockThreshold is the stock level at or below which a warning
// notification is raised after a consumption.
var LowStockThreshold = decimal.NewFromInt(10)

// Service handles stock movements and the warehouse journal
type Service struct {
	materialRepo     repositories.MaterialRepository
	journalRepo      repositories.JournalRepository
	notificationRepo repositories.NotificationRepository
	authService      *auth.Service
	committer        Committer

	now func() time.Time
}

// NewService creates a warehouse service
func NewService(
	materialRepo repositories.MaterialRepository,
	journalRepo repositories.JournalRepository,
	notificationRepo repositories.NotificationRepository,
	authService *auth.Service,
	committer Committer,
) *Service {
	return &Service{
		materialRepo:     materialRepo,
		journalRepo:      journalRepo,
		notificationRepo: notificationRepo,
		authService:      authService,
		committer:        committer,
		now:              time.Now,
	}
}

// Load receives stock for a material and records a load entry in the journal
func (s *Service) Load(user *entities.User, materialID entities.MaterialID, quantity decimal.Decimal, reference string) (*entities.JournalEntry, error) {
	if err := s.authService.Authorize(user, auth.PermWarehouse); err != nil {
		return nil, err
	}
	material, err := s.materialRepo.GetMaterial(materialID)
	if err != nil {
		return nil, err
	}
	if err := material.Receive(quantity); err != nil {
		return nil, err
	}

	entry, err := entities.NewJournalEntry(
		entities.JournalEntryID(entities.NewID()),
		workcalendar.DateKey(s.now()),
		materialID,
		entities.JournalLoad,
		quantity,
		reference,
	)
	if err != nil {
		return nil, err
	}

	if err := s.materialRepo.SaveMaterial(material); err != nil {
		return nil, err
	}
	if err := s.journalRepo.SaveEntry(entry); err != nil {
		return nil, err
	}
	if err := s.committer.Commit(); err != nil {
		return nil, err
	}

	log.Info().
		Str("material", material.Name).
		Str("quantity", quantity.String()).
		Str("stock", material.CurrentStock.String()).
		Msg("stock loaded")
	return entry, nil
}

// RegisterConsumption draws down stock against a load entry. The actual
// quantity may differ from the loaded one; the load entry keeps the actual
// figure and a matching unload entry is appended to the journal. Drawing
// more than the available stock is rejected.
func (s *Service) RegisterConsumption(user *entities.User, entryID entities.JournalEntryID, actual decimal.Decimal) (*entities.JournalEntry, error) {
	if err := s.authService.Authorize(user, auth.PermWarehouse); err != nil {
		return nil, err
	}
	if !actual.IsPositive() {
		return nil, fmt.Errorf("consumed quantity must be positive, got %s", actual)
	}

	loadEntry, err := s.journalRepo.GetEntry(entryID)
	if err != nil {
		return nil, err
	}
	if loadEntry.Type != entities.JournalLoad {
		return nil, fmt.Errorf("entry %s is not a load entry", entryID)
	}
	if loadEntry.ActualConsumed != nil {
		return nil, fmt.Errorf("entry %s already has a registered consumption", entryID)
	}

	material, err := s.materialRepo.GetMaterial(loadEntry.MaterialID)
	if err != nil {
		return nil, err
	}
	if err := material.Consume(actual); err != nil {
		return nil, err
	}

	consumed := actual
	loadEntry.ActualConsumed = &consumed

	unload, err := entities.NewJournalEntry(
		entities.JournalEntryID(entities.NewID()),
		workcalendar.DateKey(s.now()),
		material.ID,
		entities.JournalUnload,
		actual,
		fmt.Sprintf("consumption for load %s", loadEntry.ID),
	)
	if err != nil {
		return nil, err
	}

	if err := s.materialRepo.SaveMaterial(material); err != nil {
		return nil, err
	}
	if err := s.journalRepo.SaveEntry(loadEntry); err != nil {
		return nil, err
	}
	if err := s.journalRepo.SaveEntry(unload); err != nil {
		return nil, err
	}
	s.checkLowStock(material)
	if err := s.committer.Commit(); err != nil {
		return nil, err
	}
	return unload, nil
}

// DeleteEntry removes a journal entry and reverts its stock effect: deleting
// a load subtracts the loaded quantity, deleting an unload adds it back. A
// load whose consumption is already registered no longer holds the stock, so
// deleting it leaves the stock alone. Reverting below zero is rejected.
func (s *Service) DeleteEntry(user *entities.User, entryID entities.JournalEntryID) error {
	if err := s.authService.Authorize(user, auth.PermWarehouse); err != nil {
		return err
	}
	entry, err := s.journalRepo.GetEntry(entryID)
	if err != nil {
		return err
	}
	material, err := s.materialRepo.GetMaterial(entry.MaterialID)
	if err != nil {
		return err
	}

	switch {
	case entry.Type == entities.JournalLoad && entry.ActualConsumed == nil:
		if err := material.Consume(entry.Quantity); err != nil {
			return fmt.Errorf("cannot delete load entry %s: %w", entryID, err)
		}
	case entry.Type == entities.JournalUnload:
		if err := material.Receive(entry.Quantity); err != nil {
			return err
		}
	}

	if err := s.materialRepo.SaveMaterial(material); err != nil {
		return err
	}
	if err := s.journalRepo.DeleteEntry(entryID); err != nil {
		return err
	}
	return s.committer.Commit()
}

// Journal returns all movements, newest first
func (s *Service) Journal(user *entities.User) ([]*entities.JournalEntry, error) {
	if err := s.authService.Authorize(user, auth.PermWarehouse); err != nil {
		return nil, err
	}
	return s.journalRepo.GetAllEntries()
}

func (s *Service) checkLowStock(material *entities.RawMaterial) {
	if material.CurrentStock.GreaterThan(LowStockThreshold) {
		return
	}
	notification := &entities.Notification{
		ID: entities.NewID(),
		Message: fmt.Sprintf("Low stock for %s: %s %s remaining",
			material.Name, material.CurrentStock, material.Unit),
		Date: s.now().UTC().Format(time.RFC3339),
		Type: entities.NotifyWarning,
	}
	if err := s.notificationRepo.SaveNotification(notification); err != nil {
		log.Warn().Err(err).Str("material", material.Name).Msg("failed to save low-stock notification")
		return
	}
	log.Warn().
		Str("material", material.Name).
		Str("stock", material.CurrentStock.String()).
		Msg("low stock")
}
