package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// DepartmentRepository provides in-memory department storage
type DepartmentRepository struct {
	departments map[entities.DepartmentID]*entities.Department
}

// NewDepartmentRepository creates a new in-memory department repository
func NewDepartmentRepository() *DepartmentRepository {
	return &DepartmentRepository{departments: make(map[entities.DepartmentID]*entities.Department)}
}

// Verify interface compliance
var _ repositories.DepartmentRepository = (*DepartmentRepository)(nil)

// LoadDepartments loads departments into the repository
func (r *DepartmentRepository) LoadDepartments(departments []*entities.Department) error {
	for _, d := range departments {
		if err := r.SaveDepartment(d); err != nil {
			return err
		}
	}
	return nil
}

// SaveDepartment inserts or replaces a department
func (r *DepartmentRepository) SaveDepartment(department *entities.Department) error {
	if department == nil || department.ID == "" {
		return fmt.Errorf("cannot save department without id")
	}
	r.departments[department.ID] = department
	return nil
}

// GetDepartment returns the department with the given id
func (r *DepartmentRepository) GetDepartment(id entities.DepartmentID) (*entities.Department, error) {
	department, exists := r.departments[id]
	if !exists {
		return nil, fmt.Errorf("department not found: %s", id)
	}
	return department, nil
}

// GetAllDepartments returns all departments sorted by name
func (r *DepartmentRepository) GetAllDepartments() ([]*entities.Department, error) {
	departments := make([]*entities.Department, 0, len(r.departments))
	for _, d := range r.departments {
		departments = append(departments, d)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return departments, nil
}

// DeleteDepartment removes a department
func (r *DepartmentRepository) DeleteDepartment(id entities.DepartmentID) error {
	if _, exists := r.departments[id]; !exists {
		return fmt.Errorf("department not found: %s", id)
	}
	delete(r.departments, id)
	return nil
}
