package memory

import (
	"fmt"
	"sort"

	"github.com/magliflex/planner/pkg/domain/entities"
	"github.com/magliflex/planner/pkg/domain/repositories"
)

// MaterialRepository provides in-memory raw-material storage
type MaterialRepository struct {
	materials map[entities.MaterialID]*entities.RawMaterial
}

// NewMaterialRepository creates a new in-memory material repository
func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{materials: make(map[entities.MaterialID]*entities.RawMaterial)}
}

// Verify interface compliance
var _ repositories.MaterialRepository = (*MaterialRepository)(nil)

// LoadMaterials loads materials into the repository
func (r *MaterialRepository) LoadMaterials(materials []*entities.RawMaterial) error {
	for _, m := range materials {
		if err := r.SaveMaterial(m); err != nil {
			return err
		}
	}
	return nil
}

// SaveMaterial inserts or replaces a material
func (r *MaterialRepository) SaveMaterial(material *entities.RawMaterial) error {
	if material == nil || material.ID == "" {
		return fmt.Errorf("cannot save material without id")
	}
	r.materials[material.ID] = material
	return nil
}

// GetMaterial returns the material with the given id
func (r *MaterialRepository) GetMaterial(id entities.MaterialID) (*entities.RawMaterial, error) {
	material, exists := r.materials[id]
	if !exists {
		return nil, fmt.Errorf("material not found: %s", id)
	}
	return material, nil
}

// GetAllMaterials returns all materials sorted by name
func (r *MaterialRepository) GetAllMaterials() ([]*entities.RawMaterial, error) {
	materials := make([]*entities.RawMaterial, 0, len(r.materials))
	for _, m := range r.materials {
		materials = append(materials, m)
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].Name < materials[j].Name })
	return materials, nil
}

// DeleteMaterial removes a material
func (r *MaterialRepository) DeleteMaterial(id entities.MaterialID) error {
	if _, exists := r.materials[id]; !exists {
		return fmt.Errorf("material not found: %s", id)
	}
	delete(r.materials, id)
	return nil
}
