// Package bomcheck implements the raw-material sufficiency pre-flight that
// runs before a lot is scheduled. Insufficiency is a warning gate, not a
// hard error: shortages can be resolved before the lot's start date, so the
// caller must offer an explicit override instead of silently blocking.
package bomcheck

import (
	"github.com/shopspring/decimal"

	"github.com/magliflex/planner/pkg/domain/entities"
)

// Shortage describes one BOM line that cannot be covered by current stock
type Shortage struct {
	MaterialID   entities.MaterialID
	MaterialName string
	Unit         string
	Required     decimal.Decimal
	Available    decimal.Decimal
	Deficit      decimal.Decimal
}

// Result is the outcome of a sufficiency check
type Result struct {
	Shortages []Shortage
}

// Sufficient reports whether every BOM line is covered by stock
func (r Result) Sufficient() bool {
	return len(r.Shortages) == 0
}

// Check computes required = perUnitQuantity x lotQuantity for every BOM line
// of the article and compares it to current stock. A BOM line referencing an
// unknown material is reported with the full requirement as deficit.
func Check(article *entities.Article, quantity entities.Quantity, materials map[entities.MaterialID]*entities.RawMaterial) Result {
	var result Result
	lotQty := decimal.NewFromInt(int64(quantity))

	for _, line := range article.BOM {
		required := line.QuantityPerUnit.Mul(lotQty)

		material, ok := materials[line.MaterialID]
		if !ok {
			result.Shortages = append(result.Shortages, Shortage{
				MaterialID:   line.MaterialID,
				MaterialName: "unknown material",
				Unit:         line.Unit,
				Required:     required,
				Available:    decimal.Zero,
				Deficit:      required,
			})
			continue
		}

		if material.CurrentStock.LessThan(required) {
			result.Shortages = append(result.Shortages, Shortage{
				MaterialID:   material.ID,
				MaterialName: material.Name,
				Unit:         material.Unit,
				Required:     required,
				Available:    material.CurrentStock,
				Deficit:      required.Sub(material.CurrentStock),
			})
		}
	}

	return result
}
