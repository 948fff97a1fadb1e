// Package catalog manages the master data the planner schedules against:
// phases, machines, departments, raw materials, articles and holidays.
// Deletions are guarded by referential integrity so that saved articles and
// lots never point at ghosts.
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/magliflex/planner/pkg/application/services/auth"
	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// Committer persists the document after a mutation
type Committer interface {
	Commit() error
}

// Service is the master-data CRUD layer
type Service struct {
	phaseRepo      repositories.PhaseRepository
	machineRepo    repositories.MachineRepository
	departmentRepo repositories.DepartmentRepository
	materialRepo   repositories.MaterialRepository
	articleRepo    repositories.ArticleRepository
	holidayRepo    repositories.HolidayRepository
	planRepo       repositories.PlanRepository
	userRepo       repositories.UserRepository
	authService    *auth.Service
	committer      Committer
}

// NewService creates a catalog service
func NewService(
	phaseRepo repositories.PhaseRepository,
	machineRepo repositories.MachineRepository,
	departmentRepo repositories.DepartmentRepository,
	materialRepo repositories.MaterialRepository,
	articleRepo repositories.ArticleRepository,
	holidayRepo repositories.HolidayRepository,
	planRepo repositories.PlanRepository,
	userRepo repositories.UserRepository,
	authService *auth.Service,
	committer Committer,
) *Service {
	return &Service{
		phaseRepo:      phaseRepo,
		machineRepo:    machineRepo,
		departmentRepo: departmentRepo,
		materialRepo:   materialRepo,
		articleRepo:    articleRepo,
		holidayRepo:    holidayRepo,
		planRepo:       planRepo,
		userRepo:       userRepo,
		authService:    authService,
		committer:      committer,
	}
}

// sameName compares names ignoring case and surrounding whitespace
func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// CreatePhase adds a phase to the catalog
func (s *Service) CreatePhase(user *entities.User, name string, minutesPerPiece float64, dailyCapacity entities.Quantity) (*entities.Phase, error) {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return nil, err
	}
	existing, err := s.phaseRepo.GetAllPhases()
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if sameName(p.Name, name) {
			return nil, fmt.Errorf("a phase named %q already exists", p.Name)
		}
	}

	phase, err := entities.NewPhase(entities.PhaseID(entities.NewID()), name, minutesPerPiece, dailyCapacity)
	if err != nil {
		return nil, err
	}
	if err := s.phaseRepo.SavePhase(phase); err != nil {
		return nil, err
	}
	return phase, s.committer.Commit()
}

// UpdatePhase replaces an existing phase's fields
func (s *Service) UpdatePhase(user *entities.User, phase *entities.Phase) error {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return err
	}
	if _, err := s.phaseRepo.GetPhase(phase.ID); err != nil {
		return err
	}
	if err := s.phaseRepo.SavePhase(phase); err != nil {
		return err
	}
	return s.committer.Commit()
}

// DeletePhase removes a phase unless an article cycle or a department still
// references it
func (s *Service) DeletePhase(user *entities.User, id entities.PhaseID) error {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return err
	}
	articles, err := s.articleRepo.GetAllArticles()
	if err != nil {
		return err
	}
	for _, a := range articles {
		if a.UsesPhase(id) {
			return fmt.Errorf("phase is used by article %s and cannot be deleted", a.Code)
		}
	}
	departments, err := s.departmentRepo.GetAllDepartments()
	if err != nil {
		return err
	}
	for _, d := range departments {
		if d.CoversPhase(id) {
			return fmt.Errorf("phase is assigned to department %s and cannot be deleted", d.Name)
		}
	}
	if err := s.phaseRepo.DeletePhase(id); err != nil {
		return err
	}
	return s.committer.Commit()
}

// CreateMachine adds a machine to the inventory
func (s *Service) CreateMachine(user *entities.User, name string, hourlyCapacity float64, fineness entities.Fineness) (*entities.Machine, error) {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return nil, err
	}
	existing, err := s.machineRepo.GetAllMachines()
	if err != nil {
		return nil, err
	}
	for _, m := range existing {
		if sameName(m.Name, name) {
			return nil, fmt.Errorf("a machine named %q already exists", m.Name)
		}
	}

	machine, err := entities.NewMachine(entities.MachineID(entities.NewID()), name, hourlyCapacity, fineness)
	if err != nil {
		return nil, err
	}
	if err := s.machineRepo.SaveMachine(machine); err != nil {
		return nil, err
	}
	return machine, s.committer.Commit()
}

// DeleteMachine removes a machine from the inventory. Schedules reference
// machine pools by type, not by identity, so no integrity check is needed;
// already-saved lots keep their recorded assignments.
func (s *Service) DeleteMachine(user *entities.User, id entities.MachineID) error {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return err
	}
	if err := s.machineRepo.DeleteMachine(id); err != nil {
		return err
	}
	return s.committer.Commit()
}

// CreateDepartment adds a department
func (s *Service) CreateDepartment(user *entities.User, name string, machineTypes []string, finenesses []entities.Fineness, phaseIDs []entities.PhaseID) (*entities.Department, error) {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return nil, err
	}
	existing, err := s.departmentRepo.GetAllDepartments()
	if err != nil {
		return nil, err
	}
	for _, d := range existing {
		if sameName(d.Name, name) {
			return nil, fmt.Errorf("a department named %q already exists", d.Name)
		}
	}
	for _, pid := range phaseIDs {
		if _, err := s.phaseRepo.GetPhase(pid); err != nil {
			return nil, fmt.Errorf("department references unknown phase %s", pid)
		}
	}

	department, err := entities.NewDepartment(entities.DepartmentID(entities.NewID()), name, machineTypes, finenesses, phaseIDs)
	if err != nil {
		return nil, err
	}
	if err := s.departmentRepo.SaveDepartment(department); err != nil {
		return nil, err
	}
	return department, s.committer.Commit()
}

// DeleteDepartment removes a department unless an article cycle step is
// explicitly routed to it
func (s *Service) DeleteDepartment(user *entities.User, id entities.DepartmentID) error {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return err
	}
	articles, err := s.articleRepo.GetAllArticles()
	if err != nil {
		return err
	}
	for _, a := range articles {
		for _, step := range a.Cycle {
			if step.DepartmentID == id {
				return fmt.Errorf("department is routed to by article %s and cannot be deleted", a.Code)
			}
		}
	}
	if err := s.departmentRepo.DeleteDepartment(id); err != nil {
		return err
	}
	return s.committer.Commit()
}

// CreateMaterial adds a raw material with its opening stock
func (s *Service) CreateMaterial(user *entities.User, name, unit string, openingStock decimal.Decimal) (*entities.RawMaterial, error) {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return nil, err
	}
	existing, err := s.materialRepo.GetAllMaterials()
	if err != nil {
		return nil, err
	}
	for _, m := range existing {
		if sameName(m.Name, name) {
			return nil, fmt.Errorf("a material named %q already exists", m.Name)
		}
	}

	material, err := entities.NewRawMaterial(entities.MaterialID(entities.NewID()), name, unit, openingStock)
	if err != nil {
		return nil, err
	}
	if err := s.materialRepo.SaveMaterial(material); err != nil {
		return nil, err
	}
	return material, s.committer.Commit()
}

// DeleteMaterial removes a material unless an article BOM still consumes it
func (s *Service) DeleteMaterial(user *entities.User, id entities.MaterialID) error {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return err
	}
	articles, err := s.articleRepo.GetAllArticles()
	if err != nil {
		return err
	}
	for _, a := range articles {
		if a.UsesMaterial(id) {
			return fmt.Errorf("material is used by article %s and cannot be deleted", a.Code)
		}
	}
	if err := s.materialRepo.DeleteMaterial(id); err != nil {
		return err
	}
	return s.committer.Commit()
}

// CreateArticle adds an article with its routing cycle and BOM. Cycle phases
// and BOM materials must exist.
func (s *Service) CreateArticle(user *entities.User, code, description string, cycle []entities.CycleStep, bom []entities.BOMLine) (*entities.Article, error) {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return nil, err
	}
	existing, err := s.articleRepo.GetAllArticles()
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		if sameName(a.Code, code) {
			return nil, fmt.Errorf("an article with code %q already exists", a.Code)
		}
	}
	for i, step := range cycle {
		if _, err := s.phaseRepo.GetPhase(step.PhaseID); err != nil {
			return nil, fmt.Errorf("cycle step %d references unknown phase %s", i, step.PhaseID)
		}
	}
	for i, line := range bom {
		if _, err := s.materialRepo.GetMaterial(line.MaterialID); err != nil {
			return nil, fmt.Errorf("bom line %d references unknown material %s", i, line.MaterialID)
		}
	}

	article, err := entities.NewArticle(entities.ArticleID(entities.NewID()), code, description, cycle, bom)
	if err != nil {
		return nil, err
	}
	if err := s.articleRepo.SaveArticle(article); err != nil {
		return nil, err
	}
	return article, s.committer.Commit()
}

// UpdateArticle replaces an existing article
func (s *Service) UpdateArticle(user *entities.User, article *entities.Article) error {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return err
	}
	if _, err := s.articleRepo.GetArticle(article.ID); err != nil {
		return err
	}
	if err := s.articleRepo.SaveArticle(article); err != nil {
		return err
	}
	return s.committer.Commit()
}

// DeleteArticle removes an article unless a saved lot still references it
func (s *Service) DeleteArticle(user *entities.User, id entities.ArticleID) error {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return err
	}
	lots, err := s.planRepo.GetAllLots()
	if err != nil {
		return err
	}
	for _, lot := range lots {
		if lot.ArticleID == id {
			return fmt.Errorf("article is referenced by lot %s and cannot be deleted", lot.ID)
		}
	}
	if err := s.articleRepo.DeleteArticle(id); err != nil {
		return err
	}
	return s.committer.Commit()
}

// AddHoliday records a non-working date
func (s *Service) AddHoliday(user *entities.User, date, description string) (*entities.Holiday, error) {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return nil, err
	}
	existing, err := s.holidayRepo.GetAllHolidays()
	if err != nil {
		return nil, err
	}
	for _, h := range existing {
		if h.Date == date {
			return nil, fmt.Errorf("holiday on %s already recorded", date)
		}
	}

	holiday, err := entities.NewHoliday(entities.NewID(), date, description)
	if err != nil {
		return nil, err
	}
	if err := s.holidayRepo.SaveHoliday(holiday); err != nil {
		return nil, err
	}
	return holiday, s.committer.Commit()
}

// RemoveHoliday deletes a recorded holiday
func (s *Service) RemoveHoliday(user *entities.User, id string) error {
	if err := s.authService.Authorize(user, auth.PermAdmin); err != nil {
		return err
	}
	if err := s.holidayRepo.DeleteHoliday(id); err != nil {
		return err
	}
	return s.committer.Commit()
}

// CreateUser registers an application account. The new account must change
// its password at first login.
func (s *Service) CreateUser(admin *entities.User, username, password string, roles []entities.Role) (*entities.User, error) {
	if err := s.authService.Authorize(admin, auth.PermAdmin); err != nil {
		return nil, err
	}
	if existing, err := s.userRepo.GetUserByUsername(username); err == nil {
		return nil, fmt.Errorf("username %q is already taken", existing.Username)
	}
	user, err := entities.NewUser(entities.UserID(entities.NewID()), username, password, roles)
	if err != nil {
		return nil, err
	}
	user.ForcePasswordChange = true
	if err := s.userRepo.SaveUser(user); err != nil {
		return nil, err
	}
	return user, s.committer.Commit()
}

// DeleteUser removes an account. The last admin cannot be deleted.
func (s *Service) DeleteUser(admin *entities.User, id entities.UserID) error {
	if err := s.authService.Authorize(admin, auth.PermAdmin); err != nil {
		return err
	}
	target, err := s.userRepo.GetUser(id)
	if err != nil {
		return err
	}
	if target.HasRole(entities.RoleAdmin) {
		users, err := s.userRepo.GetAllUsers()
		if err != nil {
			return err
		}
		admins := 0
		for _, u := range users {
			if u.HasRole(entities.RoleAdmin) {
				admins++
			}
		}
		if admins <= 1 {
			return fmt.Errorf("cannot delete the last admin account")
		}
	}
	if err := s.userRepo.DeleteUser(id); err != nil {
		return err
	}
	return s.committer.Commit()
}
