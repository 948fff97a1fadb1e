package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaterialID identifies a raw material
type MaterialID string

// RawMaterial represents warehouse stock of one raw material. Stock is kept
// as a decimal because BOM lines consume fractional amounts (0.2 kg of yarn
// per piece and the like).
type RawMaterial struct {
	ID           MaterialID      `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"currentStock"`
}

// NewRawMaterial creates a validated RawMaterial
func NewRawMaterial(id MaterialID, name, unit string, currentStock decimal.Decimal) (*RawMaterial, error) {
	if id == "" {
		return nil, fmt.Errorf("material id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("material name cannot be empty")
	}
	if unit == "" {
		return nil, fmt.Errorf("material unit cannot be empty")
	}
	if currentStock.IsNegative() {
		return nil, fmt.Errorf("material stock cannot be negative, got %s", currentStock)
	}

	return &RawMaterial{
		ID:           id,
		Name:         name,
		Unit:         unit,
		CurrentStock: currentStock,
	}, nil
}

// Receive adds stock to the material
func (m *RawMaterial) Receive(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return fmt.Errorf("cannot receive a negative quantity: %s", qty)
	}
	m.CurrentStock = m.CurrentStock.Add(qty)
	return nil
}

// Consume removes stock. The stock invariant is enforced here: it never goes
// below zero, a short consumption is rejected instead.
func (m *RawMaterial) Consume(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return fmt.Errorf("cannot consume a negative quantity: %s", qty)
	}
	if qty.GreaterThan(m.CurrentStock) {
		return fmt.Errorf("consumption of %s %s exceeds available stock %s %s for %s",
			qty, m.Unit, m.CurrentStock, m.Unit, m.Name)
	}
	m.CurrentStock = m.CurrentStock.Sub(qty)
	return nil
}
