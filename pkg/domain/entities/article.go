package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ArticleID identifies an article
type ArticleID string

// CycleStep is a single routing step in an article's production cycle.
// Order inside the cycle is the production sequence. A step is either
// machine bound (MachineType plus Fineness) and throttled by the matching
// machine pool, or it falls back to the phase's flat daily capacity.
type CycleStep struct {
	PhaseID PhaseID `json:"phaseId"`

	// MinutesPerPiece caps the effective hourly throughput of machine
	// bound steps to 60/MinutesPerPiece pieces per hour.
	MinutesPerPiece float64 `json:"time,omitempty"`

	// HoursPerUnit is the labour content used by the hour-budget capacity
	// model, accrued against the step's department.
	HoursPerUnit float64 `json:"duration,omitempty"`

	MachineType  string       `json:"machineType,omitempty"`
	Fineness     Fineness     `json:"fineness,omitempty"`
	DepartmentID DepartmentID `json:"departmentId,omitempty"`
}

// MachineBound reports whether the step requires a specific machine pool
func (s CycleStep) MachineBound() bool {
	return s.MachineType != "" && s.Fineness > 0
}

// BOMLine represents a single line in an article's bill of materials
type BOMLine struct {
	MaterialID      MaterialID      `json:"materialId"`
	QuantityPerUnit decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
}

// NewBOMLine creates a validated BOMLine
func NewBOMLine(materialID MaterialID, quantityPerUnit decimal.Decimal, unit string) (*BOMLine, error) {
	if materialID == "" {
		return nil, fmt.Errorf("bom line material id cannot be empty")
	}
	if !quantityPerUnit.IsPositive() {
		return nil, fmt.Errorf("bom line quantity per unit must be positive, got %s", quantityPerUnit)
	}
	if unit == "" {
		return nil, fmt.Errorf("bom line unit cannot be empty")
	}

	return &BOMLine{
		MaterialID:      materialID,
		QuantityPerUnit: quantityPerUnit,
		Unit:            unit,
	}, nil
}

// Article represents a finished product with its routing cycle and BOM
type Article struct {
	ID          ArticleID   `json:"id"`
	Code        string      `json:"code"`
	Description string      `json:"description"`
	Color       string      `json:"color,omitempty"`
	Client      string      `json:"client,omitempty"`
	Cycle       []CycleStep `json:"cycle"`
	BOM         []BOMLine   `json:"bom"`
}

// NewArticle creates a validated Article
func NewArticle(id ArticleID, code, description string, cycle []CycleStep, bom []BOMLine) (*Article, error) {
	if id == "" {
		return nil, fmt.Errorf("article id cannot be empty")
	}
	if code == "" {
		return nil, fmt.Errorf("article code cannot be empty")
	}
	for i, step := range cycle {
		if step.PhaseID == "" {
			return nil, fmt.Errorf("article %s cycle step %d has no phase", code, i)
		}
	}
	for i, line := range bom {
		if line.MaterialID == "" {
			return nil, fmt.Errorf("article %s bom line %d has no material", code, i)
		}
		if !line.QuantityPerUnit.IsPositive() {
			return nil, fmt.Errorf("article %s bom line %d quantity must be positive, got %s",
				code, i, line.QuantityPerUnit)
		}
	}

	return &Article{
		ID:          id,
		Code:        code,
		Description: description,
		Cycle:       cycle,
		BOM:         bom,
	}, nil
}

// UsesPhase reports whether any cycle step routes through the given phase
func (a *Article) UsesPhase(id PhaseID) bool {
	for _, step := range a.Cycle {
		if step.PhaseID == id {
			return true
		}
	}
	return false
}

// UsesMaterial reports whether any BOM line consumes the given material
func (a *Article) UsesMaterial(id MaterialID) bool {
	for _, line := range a.BOM {
		if line.MaterialID == id {
			return true
		}
	}
	return false
}
