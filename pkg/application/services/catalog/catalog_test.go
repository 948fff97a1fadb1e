package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magliflex/planner/pkg/application/services/auth"
	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/infrastructure/repositories/memory"
)

type env struct {
	service        *Service
	phaseRepo      *memory.PhaseRepository
	departmentRepo *memory.DepartmentRepository
	materialRepo   *memory.MaterialRepository
	articleRepo    *memory.ArticleRepository
	planRepo       *memory.PlanRepository
	userRepo       *memory.UserRepository
	admin          *entities.User
}

type nopCommitter struct{}

func (nopCommitter) Commit() error { return nil }

func newTestEnv(t *testing.T) *env {
	t.Helper()

	phaseRepo := memory.NewPhaseRepository()
	machineRepo := memory.NewMachineRepository()
	departmentRepo := memory.NewDepartmentRepository()
	materialRepo := memory.NewMaterialRepository()
	articleRepo := memory.NewArticleRepository()
	holidayRepo := memory.NewHolidayRepository()
	planRepo := memory.NewPlanRepository()
	userRepo := memory.NewUserRepository()

	admin := &entities.User{
		ID:       "USR-ADMIN",
		Username: "admin",
		Roles:    []entities.Role{entities.RoleAdmin},
	}
	require.NoError(t, userRepo.LoadUsers([]*entities.User{admin}))

	service := NewService(
		phaseRepo, machineRepo, departmentRepo, materialRepo,
		articleRepo, holidayRepo, planRepo, userRepo,
		auth.NewService(userRepo), nopCommitter{},
	)

	return &env{
		service:        service,
		phaseRepo:      phaseRepo,
		departmentRepo: departmentRepo,
		materialRepo:   materialRepo,
		articleRepo:    articleRepo,
		planRepo:       planRepo,
		userRepo:       userRepo,
		admin:          admin,
	}
}

func TestCreatePhaseAssignsID(t *testing.T) {
	e := newTestEnv(t)

	phase, err := e.service.CreatePhase(e.admin, "Rammaglio", 10, 200)
	require.NoError(t, err)
	assert.NotEmpty(t, phase.ID)

	stored, err := e.phaseRepo.GetPhase(phase.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rammaglio", stored.Name)
}

func TestCreatePhaseRejectsDuplicateName(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.service.CreatePhase(e.admin, "Rammaglio", 10, 200)
	require.NoError(t, err)

	_, err = e.service.CreatePhase(e.admin, "  rammaglio ", 5, 100)
	assert.ErrorContains(t, err, "already exists")
}

func TestCatalogRequiresAdmin(t *testing.T) {
	e := newTestEnv(t)
	planner := &entities.User{
		ID:       "USR-2",
		Username: "piera",
		Roles:    []entities.Role{entities.RolePlanning},
	}

	_, err := e.service.CreatePhase(planner, "Rammaglio", 10, 200)
	assert.ErrorContains(t, err, "admin")
}

func TestDeletePhaseGuardedByArticleCycle(t *testing.T) {
	e := newTestEnv(t)

	phase, err := e.service.CreatePhase(e.admin, "Tessitura", 15, 0)
	require.NoError(t, err)

	article, err := e.service.CreateArticle(e.admin, "MF-100", "Pullover", []entities.CycleStep{
		{PhaseID: phase.ID, MinutesPerPiece: 15},
	}, nil)
	require.NoError(t, err)

	err = e.service.DeletePhase(e.admin, phase.ID)
	assert.ErrorContains(t, err, "used by article MF-100")

	require.NoError(t, e.service.DeleteArticle(e.admin, article.ID))
	assert.NoError(t, e.service.DeletePhase(e.admin, phase.ID))
}

func TestDeletePhaseGuardedByDepartment(t *testing.T) {
	e := newTestEnv(t)

	phase, err := e.service.CreatePhase(e.admin, "Stiro", 5, 300)
	require.NoError(t, err)
	_, err = e.service.CreateDepartment(e.admin, "Stireria", nil, nil, []entities.PhaseID{phase.ID})
	require.NoError(t, err)

	err = e.service.DeletePhase(e.admin, phase.ID)
	assert.ErrorContains(t, err, "assigned to department Stireria")
}

func TestCreateDepartmentRejectsUnknownPhase(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.service.CreateDepartment(e.admin, "Tessitura", nil, nil, []entities.PhaseID{"PH-MISSING"})
	assert.ErrorContains(t, err, "unknown phase")
}

func TestDeleteDepartmentGuardedByRouting(t *testing.T) {
	e := newTestEnv(t)

	phase, err := e.service.CreatePhase(e.admin, "Tessitura", 15, 0)
	require.NoError(t, err)
	dept, err := e.service.CreateDepartment(e.admin, "Tessitura", nil, nil, nil)
	require.NoError(t, err)

	_, err = e.service.CreateArticle(e.admin, "MF-100", "Pullover", []entities.CycleStep{
		{PhaseID: phase.ID, DepartmentID: dept.ID},
	}, nil)
	require.NoError(t, err)

	err = e.service.DeleteDepartment(e.admin, dept.ID)
	assert.ErrorContains(t, err, "routed to by article MF-100")
}

func TestDeleteMaterialGuardedByBOM(t *testing.T) {
	e := newTestEnv(t)

	phase, err := e.service.CreatePhase(e.admin, "Tessitura", 15, 0)
	require.NoError(t, err)
	material, err := e.service.CreateMaterial(e.admin, "Lana Merino", "kg", decimal.NewFromInt(50))
	require.NoError(t, err)

	_, err = e.service.CreateArticle(e.admin, "MF-100", "Pullover", []entities.CycleStep{
		{PhaseID: phase.ID},
	}, []entities.BOMLine{
		{MaterialID: material.ID, QuantityPerUnit: decimal.NewFromFloat(0.4), Unit: "kg"},
	})
	require.NoError(t, err)

	err = e.service.DeleteMaterial(e.admin, material.ID)
	assert.ErrorContains(t, err, "used by article MF-100")
}

func TestDeleteArticleGuardedByLots(t *testing.T) {
	e := newTestEnv(t)

	phase, err := e.service.CreatePhase(e.admin, "Tessitura", 15, 100)
	require.NoError(t, err)
	article, err := e.service.CreateArticle(e.admin, "MF-100", "Pullover", []entities.CycleStep{
		{PhaseID: phase.ID},
	}, nil)
	require.NoError(t, err)

	require.NoError(t, e.planRepo.SaveLot(&entities.Lot{
		ID:        "LOT-1",
		ArticleID: article.ID,
		Quantity:  10,
		Status:    entities.StatusPending,
	}))

	err = e.service.DeleteArticle(e.admin, article.ID)
	assert.ErrorContains(t, err, "referenced by lot LOT-1")
}

func TestCreateArticleValidatesReferences(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.service.CreateArticle(e.admin, "MF-100", "Pullover", []entities.CycleStep{
		{PhaseID: "PH-MISSING"},
	}, nil)
	assert.ErrorContains(t, err, "unknown phase")

	phase, err := e.service.CreatePhase(e.admin, "Tessitura", 15, 0)
	require.NoError(t, err)

	_, err = e.service.CreateArticle(e.admin, "MF-100", "Pullover", []entities.CycleStep{
		{PhaseID: phase.ID},
	}, []entities.BOMLine{
		{MaterialID: "MAT-MISSING", QuantityPerUnit: decimal.NewFromInt(1), Unit: "kg"},
	})
	assert.ErrorContains(t, err, "unknown material")
}

func TestAddHolidayRejectsDuplicateDate(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.service.AddHoliday(e.admin, "2026-12-08", "Immacolata")
	require.NoError(t, err)

	_, err = e.service.AddHoliday(e.admin, "2026-12-08", "Duplicate")
	assert.ErrorContains(t, err, "already recorded")

	_, err = e.service.AddHoliday(e.admin, "not-a-date", "Bad")
	assert.Error(t, err)
}

func TestCreateUserForcesPasswordChange(t *testing.T) {
	e := newTestEnv(t)

	user, err := e.service.CreateUser(e.admin, "piera", "iniziale", []entities.Role{entities.RolePlanning})
	require.NoError(t, err)
	assert.True(t, user.ForcePasswordChange)

	_, err = e.service.CreateUser(e.admin, "piera", "altra", []entities.Role{entities.RolePlanning})
	assert.ErrorContains(t, err, "already taken")
}

func TestDeleteUserKeepsLastAdmin(t *testing.T) {
	e := newTestEnv(t)

	err := e.service.DeleteUser(e.admin, e.admin.ID)
	assert.ErrorContains(t, err, "last admin")

	second, err := e.service.CreateUser(e.admin, "secondo", "pw", []entities.Role{entities.RoleAdmin})
	require.NoError(t, err)
	assert.NoError(t, e.service.DeleteUser(e.admin, second.ID))
}
