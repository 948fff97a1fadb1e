// Package persistence stores the whole application state as one JSON
// document, the same shape the browser-era tool kept in local storage. There
// is no schema version field, so loading tolerates older documents: missing
// arrays become empty, missing nested arrays become empty, and derived lot
// fields are repaired by the planning service after load.
package persistence

import (
	"github.com/magliflex/planner/pkg/domain/entities"
)

// Document is the single persisted JSON document
type Document struct {
	Phases           []*entities.Phase        `json:"phases"`
	Machines         []*entities.Machine      `json:"machines"`
	Departments      []*entities.Department   `json:"departments"`
	RawMaterials     []*entities.RawMaterial  `json:"rawMaterials"`
	WarehouseJournal []*entities.JournalEntry `json:"warehouseJournal"`
	Articles         []*entities.Article      `json:"articles"`
	ProductionPlan   []*entities.Lot          `json:"productionPlan"`
	Notifications    []*entities.Notification `json:"notifications"`
	Users            []*entities.User         `json:"users"`
	Holidays         []*entities.Holiday      `json:"holidays"`

	// Week anchors of the two calendar views, ISO YYYY-MM-DD. Empty means
	// the current week.
	CurrentDeliveryWeekStartDate string `json:"currentDeliveryWeekStartDate,omitempty"`
	CurrentWorkloadWeekStartDate string `json:"currentWorkloadWeekStartDate,omitempty"`
}

// normalize fills the defaults a document from an older or partial source may
// be missing
func (d *Document) normalize() {
	if d.Phases == nil {
		d.Phases = []*entities.Phase{}
	}
	if d.Machines == nil {
		d.Machines = []*entities.Machine{}
	}
	if d.Departments == nil {
		d.Departments = []*entities.Department{}
	}
	for _, dept := range d.Departments {
		if dept.MachineTypes == nil {
			dept.MachineTypes = []string{}
		}
		if dept.Finenesses == nil {
			dept.Finenesses = []entities.Fineness{}
		}
		if dept.PhaseIDs == nil {
			dept.PhaseIDs = []entities.PhaseID{}
		}
	}
	if d.RawMaterials == nil {
		d.RawMaterials = []*entities.RawMaterial{}
	}
	if d.WarehouseJournal == nil {
		d.WarehouseJournal = []*entities.JournalEntry{}
	}
	if d.Articles == nil {
		d.Articles = []*entities.Article{}
	}
	for _, a := range d.Articles {
		if a.Cycle == nil {
			a.Cycle = []entities.CycleStep{}
		}
		if a.BOM == nil {
			a.BOM = []entities.BOMLine{}
		}
	}
	if d.ProductionPlan == nil {
		d.ProductionPlan = []*entities.Lot{}
	}
	for _, lot := range d.ProductionPlan {
		if lot.DailyWorkload == nil {
			lot.DailyWorkload = entities.DailyWorkload{}
		}
		if lot.Status == "" {
			lot.Status = entities.StatusPending
		}
	}
	if d.Notifications == nil {
		d.Notifications = []*entities.Notification{}
	}
	if d.Users == nil {
		d.Users = []*entities.User{}
	}
	if d.Holidays == nil {
		d.Holidays = []*entities.Holiday{}
	}
}
