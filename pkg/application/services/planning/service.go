// Package planning orchestrates the lifecycle of production lots around the
// scheduling core: calculate a draft, gate it on material sufficiency, save
// it, recompute it on edit, complete or delete it, and aggregate the weekly
// calendars the planner works from.
package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/magliflex/planner/pkg/application/dto"
	"github.com/magliflex/planner/pkg/application/services/auth"
	"github.com/magliflex/planner/pkg/application/services/scheduling"
	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
	"github.com/magliflex/planner/pkg/domain/services/bomcheck"
	"github.com/magliflex/planner/pkg/domain/services/workcalendar"
)

// Committer persists the whole application document after a mutation. The
// document is saved wholesale, last write wins; per-entity concurrency is
// deliberately out of scope for a single-operator tool.
type Committer interface {
	Commit() error
}

// NopCommitter discards commits, for tests and dry runs
type NopCommitter struct{}

// Commit implements Committer
func (NopCommitter) Commit() error { return nil }

// Service manages planning lots
type Service struct {
	articleRepo  repositories.ArticleRepository
	materialRepo repositories.MaterialRepository
	planRepo     repositories.PlanRepository
	scheduler    *scheduling.Scheduler
	authService  *auth.Service
	committer    Committer

	now func() time.Time
}

// NewService creates a planning service
func NewService(
	articleRepo repositories.ArticleRepository,
	materialRepo repositories.MaterialRepository,
	planRepo repositories.PlanRepository,
	scheduler *scheduling.Scheduler,
	authService *auth.Service,
	committer Committer,
) *Service {
	return &Service{
		articleRepo:  articleRepo,
		materialRepo: materialRepo,
		planRepo:     planRepo,
		scheduler:    scheduler,
		authService:  authService,
		committer:    committer,
		now:          time.Now,
	}
}

// CalculateRequest describes one lot to schedule. Exactly one of StartDate
// (forward, piece-throughput model) and DeliveryDate (backward, hour-budget
// model) must be set.
type CalculateRequest struct {
	User *entities.User

	ArticleID    entities.ArticleID
	Quantity     entities.Quantity
	StartDate    time.Time
	DeliveryDate time.Time
	Type         entities.LotType
	Priority     entities.Priority
	Notes        string

	// Override confirms proceeding despite a raw-material shortage.
	Override bool

	// LotID is set when recalculating an existing lot; it relaxes the
	// past-date validation and reuses the identifier.
	LotID entities.LotID
}

// Draft is a calculated but unsaved lot. It is discarded unless Save is
// called; nothing is persisted by Calculate.
type Draft struct {
	Lot      *entities.Lot
	Forward  *dto.ForwardScheduleResult
	Backward *dto.BackwardScheduleResult

	// Shortages carries the overridden material shortages so the caller
	// can keep them visible next to the result.
	Shortages []bomcheck.Shortage
}

// Calculate runs the material-sufficiency pre-flight and the scheduler and
// returns a draft lot. The shortage check runs first and blocks without an
// explicit override; it is a warning, not an error, because stock can
// arrive before the start date.
func (s *Service) Calculate(ctx context.Context, req CalculateRequest) (*Draft, error) {
	if err := s.authService.Authorize(req.User, auth.PermPlanning); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", req.Quantity)
	}
	forward := !req.StartDate.IsZero()
	backward := !req.DeliveryDate.IsZero()
	if forward == backward {
		return nil, fmt.Errorf("exactly one of start date and delivery date must be given")
	}
	if req.Type != "" && !req.Type.Valid() {
		return nil, fmt.Errorf("unknown lot type %q", req.Type)
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return nil, fmt.Errorf("unknown priority %q", req.Priority)
	}

	article, err := s.articleRepo.GetArticle(req.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("article not found: %w", err)
	}

	shortages, err := s.checkMaterials(article, req.Quantity)
	if err != nil {
		return nil, err
	}
	if len(shortages) > 0 && !req.Override {
		return nil, &ShortageError{Shortages: shortages}
	}

	lot := &entities.Lot{
		ID:        req.LotID,
		ArticleID: article.ID,
		Quantity:  req.Quantity,
		Type:      req.Type,
		Priority:  req.Priority,
		Notes:     req.Notes,
		Status:    entities.StatusPending,
	}
	if lot.ID == "" {
		lot.ID = entities.LotID(entities.NewID())
	}
	if lot.Type == "" {
		lot.Type = entities.LotProduction
	}
	if lot.Priority == "" {
		lot.Priority = entities.PriorityMedium
	}

	draft := &Draft{Lot: lot, Shortages: shortages}
	recompute := req.LotID != ""

	if forward {
		result, err := s.scheduler.ScheduleForward(ctx, scheduling.ForwardRequest{
			Article:        article,
			Quantity:       req.Quantity,
			StartDate:      req.StartDate,
			AllowPastStart: recompute,
			Today:          s.now(),
		})
		if err != nil {
			return nil, err
		}
		draft.Forward = result
		lot.StartDate = workcalendar.DateKey(workcalendar.Normalize(req.StartDate))
		lot.EstimatedDeliveryDate = workcalendar.DateKey(result.EstimatedDeliveryDate)
		lot.DailyWorkload = result.DailyWorkload
	} else {
		result, err := s.scheduler.ScheduleBackward(ctx, scheduling.BackwardRequest{
			Article:           article,
			Quantity:          req.Quantity,
			DeliveryDate:      req.DeliveryDate,
			AllowPastDelivery: recompute,
			Today:             s.now(),
		})
		if err != nil {
			return nil, err
		}
		draft.Backward = result
		lot.DeliveryDate = workcalendar.DateKey(workcalendar.Normalize(req.DeliveryDate))
		lot.SuggestedStartDate = workcalendar.DateKey(result.SuggestedStartDate)
		lot.DepartmentHours = result.DepartmentHours
		lot.TotalWorkingDays = result.TotalWorkingDays
		lot.DailyWorkload = make(entities.DailyWorkload)
	}

	return draft, nil
}

// Save persists a calculated draft as a pending lot
func (s *Service) Save(ctx context.Context, user *entities.User, draft *Draft) (*entities.Lot, error) {
	if err := s.authService.Authorize(user, auth.PermPlanning); err != nil {
		return nil, err
	}
	if draft == nil || draft.Lot == nil {
		return nil, fmt.Errorf("nothing to save: calculate a draft first")
	}
	if err := s.planRepo.SaveLot(draft.Lot); err != nil {
		return nil, fmt.Errorf("failed to save lot: %w", err)
	}
	if err := s.committer.Commit(); err != nil {
		return nil, fmt.Errorf("failed to persist document: %w", err)
	}
	log.Info().
		Str("lot", string(draft.Lot.ID)).
		Str("article", string(draft.Lot.ArticleID)).
		Int64("quantity", int64(draft.Lot.Quantity)).
		Msg("planning lot saved")
	return draft.Lot, nil
}

// Update recomputes and re-persists an existing lot after an edit. The
// recompute is full: workload and dates are rebuilt from scratch.
func (s *Service) Update(ctx context.Context, req CalculateRequest) (*entities.Lot, error) {
	if req.LotID == "" {
		return nil, fmt.Errorf("update requires a lot id")
	}
	existing, err := s.planRepo.GetLot(req.LotID)
	if err != nil {
		return nil, err
	}
	if existing.Completed() {
		return nil, fmt.Errorf("lot %s is completed and can no longer be edited", req.LotID)
	}

	draft, err := s.Calculate(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.Save(ctx, req.User, draft)
}

// Complete marks a pending lot completed. Completed is terminal.
func (s *Service) Complete(ctx context.Context, user *entities.User, id entities.LotID) error {
	if err := s.authService.Authorize(user, auth.PermPlanning); err != nil {
		return err
	}
	lot, err := s.planRepo.GetLot(id)
	if err != nil {
		return err
	}
	if err := lot.Complete(); err != nil {
		return err
	}
	if err := s.planRepo.SaveLot(lot); err != nil {
		return err
	}
	return s.committer.Commit()
}

// Delete removes a lot. Deletion has no cascading side effects; consumed
// stock is reconciled through the warehouse journal, not here.
func (s *Service) Delete(ctx context.Context, user *entities.User, id entities.LotID) error {
	if err := s.authService.Authorize(user, auth.PermPlanning); err != nil {
		return err
	}
	if err := s.planRepo.DeleteLot(id); err != nil {
		return err
	}
	return s.committer.Commit()
}

// RecalculateAll repairs lots loaded from storage that are missing their
// derived fields (workload, estimated delivery date), recomputing them with
// past dates allowed. Lots whose article no longer exists are left alone.
func (s *Service) RecalculateAll(ctx context.Context) error {
	lots, err := s.planRepo.GetAllLots()
	if err != nil {
		return err
	}

	dirty := false
	for _, lot := range lots {
		if !s.needsRecalculation(lot) {
			continue
		}
		article, err := s.articleRepo.GetArticle(lot.ArticleID)
		if err != nil {
			log.Warn().
				Str("lot", string(lot.ID)).
				Str("article", string(lot.ArticleID)).
				Msg("cannot recalculate lot: article missing")
			continue
		}

		startDate, err := workcalendar.ParseDate(lot.StartDate)
		if err != nil {
			continue
		}
		result, err := s.scheduler.ScheduleForward(ctx, scheduling.ForwardRequest{
			Article:        article,
			Quantity:       lot.Quantity,
			StartDate:      startDate,
			AllowPastStart: true,
			Today:          s.now(),
		})
		if err != nil {
			log.Warn().Err(err).Str("lot", string(lot.ID)).Msg("lot recalculation failed")
			continue
		}
		lot.DailyWorkload = result.DailyWorkload
		lot.EstimatedDeliveryDate = workcalendar.DateKey(result.EstimatedDeliveryDate)
		if err := s.planRepo.SaveLot(lot); err != nil {
			return err
		}
		dirty = true
	}

	if dirty {
		return s.committer.Commit()
	}
	return nil
}

func (s *Service) needsRecalculation(lot *entities.Lot) bool {
	if lot.StartDate == "" {
		// Backward-scheduled lots never carry a daily workload.
		return false
	}
	return len(lot.DailyWorkload) == 0 || lot.EstimatedDeliveryDate == ""
}

func (s *Service) checkMaterials(article *entities.Article, quantity entities.Quantity) ([]bomcheck.Shortage, error) {
	materials, err := s.materialRepo.GetAllMaterials()
	if err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}
	index := make(map[entities.MaterialID]*entities.RawMaterial, len(materials))
	for _, m := range materials {
		index[m.ID] = m
	}
	return bomcheck.Check(article, quantity, index).Shortages, nil
}
