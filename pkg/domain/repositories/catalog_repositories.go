// Package repositories defines the storage access interfaces the application
// services depend on. The in-memory implementations live under
// pkg/infrastructure/repositories/memory; the whole dataset is persisted as
// one JSON document by pkg/infrastructure/persistence.
package repositories

import "github.com/magliflex/planner/pkg/domain/entities"

// PhaseRepository provides access to the phase catalog
type PhaseRepository interface {
	GetPhase(id entities.PhaseID) (*entities.Phase, error)
	GetAllPhases() ([]*entities.Phase, error)
	SavePhase(phase *entities.Phase) error
	DeletePhase(id entities.PhaseID) error
	LoadPhases(phases []*entities.Phase) error
}

// MachineRepository provides access to the machine inventory
type MachineRepository interface {
	GetMachine(id entities.MachineID) (*entities.Machine, error)
	GetAllMachines() ([]*entities.Machine, error)
	SaveMachine(machine *entities.Machine) error
	DeleteMachine(id entities.MachineID) error
	LoadMachines(machines []*entities.Machine) error
}

// DepartmentRepository provides access to the department catalog
type DepartmentRepository interface {
	GetDepartment(id entities.DepartmentID) (*entities.Department, error)
	GetAllDepartments() ([]*entities.Department, error)
	SaveDepartment(department *entities.Department) error
	DeleteDepartment(id entities.DepartmentID) error
	LoadDepartments(departments []*entities.Department) error
}

// MaterialRepository provides access to raw-material stock records
type MaterialRepository interface {
	GetMaterial(id entities.MaterialID) (*entities.RawMaterial, error)
	GetAllMaterials() ([]*entities.RawMaterial, error)
	SaveMaterial(material *entities.RawMaterial) error
	DeleteMaterial(id entities.MaterialID) error
	LoadMaterials(materials []*entities.RawMaterial) error
}

// ArticleRepository provides access to the article catalog
type ArticleRepository interface {
	GetArticle(id entities.ArticleID) (*entities.Article, error)
	GetAllArticles() ([]*entities.Article, error)
	SaveArticle(article *entities.Article) error
	DeleteArticle(id entities.ArticleID) error
	LoadArticles(articles []*entities.Article) error
}

// HolidayRepository provides access to the holiday set used by the
// working-day calendar
type HolidayRepository interface {
	GetAllHolidays() ([]*entities.Holiday, error)
	SaveHoliday(holiday *entities.Holiday) error
	DeleteHoliday(id string) error
	LoadHolidays(holidays []*entities.Holiday) error
}
