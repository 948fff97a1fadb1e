package persistence

import (
	"github.com/pkg/errors"

	"github.com/magliflex/planner/pkg/domain/repositories"
)

// Bridge moves state between the in-memory repositories and the document
// store. Services mutate repositories and call Commit; Commit collects the
// whole state and saves it as one document.
type Bridge struct {
	store *Store

	phaseRepo        repositories.PhaseRepository
	machineRepo      repositories.MachineRepository
	departmentRepo   repositories.DepartmentRepository
	materialRepo     repositories.MaterialRepository
	articleRepo      repositories.ArticleRepository
	planRepo         repositories.PlanRepository
	journalRepo      repositories.JournalRepository
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	holidayRepo      repositories.HolidayRepository

	// Week anchors of the calendar views ride along in the document and
	// have no repository of their own.
	DeliveryWeekStart string
	WorkloadWeekStart string
}

// NewBridge creates a Bridge over the given store and repositories
func NewBridge(
	store *Store,
	phaseRepo repositories.PhaseRepository,
	machineRepo repositories.MachineRepository,
	departmentRepo repositories.DepartmentRepository,
	materialRepo repositories.MaterialRepository,
	articleRepo repositories.ArticleRepository,
	planRepo repositories.PlanRepository,
	journalRepo repositories.JournalRepository,
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	holidayRepo repositories.HolidayRepository,
) *Bridge {
	return &Bridge{
		store:            store,
		phaseRepo:        phaseRepo,
		machineRepo:      machineRepo,
		departmentRepo:   departmentRepo,
		materialRepo:     materialRepo,
		articleRepo:      articleRepo,
		planRepo:         planRepo,
		journalRepo:      journalRepo,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		holidayRepo:      holidayRepo,
	}
}

// Load reads the document and fills every repository
func (b *Bridge) Load() error {
	doc, err := b.store.Load()
	if err != nil {
		return err
	}
	return b.apply(doc)
}

// LoadDocument fills every repository from an already-decoded document,
// e.g. one produced by MigrateLegacy plus decode.
func (b *Bridge) LoadDocument(doc *Document) error {
	doc.normalize()
	return b.apply(doc)
}

func (b *Bridge) apply(doc *Document) error {
	if err := b.phaseRepo.LoadPhases(doc.Phases); err != nil {
		return errors.Wrap(err, "loading phases")
	}
	if err := b.machineRepo.LoadMachines(doc.Machines); err != nil {
		return errors.Wrap(err, "loading machines")
	}
	if err := b.departmentRepo.LoadDepartments(doc.Departments); err != nil {
		return errors.Wrap(err, "loading departments")
	}
	if err := b.materialRepo.LoadMaterials(doc.RawMaterials); err != nil {
		return errors.Wrap(err, "loading materials")
	}
	if err := b.articleRepo.LoadArticles(doc.Articles); err != nil {
		return errors.Wrap(err, "loading articles")
	}
	if err := b.planRepo.LoadLots(doc.ProductionPlan); err != nil {
		return errors.Wrap(err, "loading production plan")
	}
	if err := b.journalRepo.LoadEntries(doc.WarehouseJournal); err != nil {
		return errors.Wrap(err, "loading warehouse journal")
	}
	if err := b.notificationRepo.LoadNotifications(doc.Notifications); err != nil {
		return errors.Wrap(err, "loading notifications")
	}
	if err := b.userRepo.LoadUsers(doc.Users); err != nil {
		return errors.Wrap(err, "loading users")
	}
	if err := b.holidayRepo.LoadHolidays(doc.Holidays); err != nil {
		return errors.Wrap(err, "loading holidays")
	}
	b.DeliveryWeekStart = doc.CurrentDeliveryWeekStartDate
	b.WorkloadWeekStart = doc.CurrentWorkloadWeekStartDate
	return nil
}

// Collect assembles the current repository state into a document
func (b *Bridge) Collect() (*Document, error) {
	doc := &Document{
		CurrentDeliveryWeekStartDate: b.DeliveryWeekStart,
		CurrentWorkloadWeekStartDate: b.WorkloadWeekStart,
	}
	var err error
	if doc.Phases, err = b.phaseRepo.GetAllPhases(); err != nil {
		return nil, err
	}
	if doc.Machines, err = b.machineRepo.GetAllMachines(); err != nil {
		return nil, err
	}
	if doc.Departments, err = b.departmentRepo.GetAllDepartments(); err != nil {
		return nil, err
	}
	if doc.RawMaterials, err = b.materialRepo.GetAllMaterials(); err != nil {
		return nil, err
	}
	if doc.Articles, err = b.articleRepo.GetAllArticles(); err != nil {
		return nil, err
	}
	if doc.ProductionPlan, err = b.planRepo.GetAllLots(); err != nil {
		return nil, err
	}
	if doc.WarehouseJournal, err = b.journalRepo.GetAllEntries(); err != nil {
		return nil, err
	}
	if doc.Notifications, err = b.notificationRepo.GetAllNotifications(); err != nil {
		return nil, err
	}
	if doc.Users, err = b.userRepo.GetAllUsers(); err != nil {
		return nil, err
	}
	if doc.Holidays, err = b.holidayRepo.GetAllHolidays(); err != nil {
		return nil, err
	}
	doc.normalize()
	return doc, nil
}

// Commit collects the repository state and saves the document. It satisfies
// the Committer interfaces of the application services.
func (b *Bridge) Commit() error {
	doc, err := b.Collect()
	if err != nil {
		return errors.Wrap(err, "collecting document")
	}
	return b.store.Save(doc)
}
