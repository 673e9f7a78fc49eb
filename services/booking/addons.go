package booking

import (
	"fmt"

	"indodjija/models"
)

// Metered add-on unit prices.
const (
	TableRate  models.Money = 1000 // per table
	WaiterRate models.Money = 1000 // per waiter-hour
	IceRate    models.Money = 80   // per kg
)

// Step sizes of metered add-ons.
const (
	TableStep  = 1
	WaiterStep = 1
	IceStep    = 5
)

// AddOnCatalog lists every add-on in display order.
func AddOnCatalog() []models.AddOnInfo {
	return []models.AddOnInfo{
		{ID: models.AddOnPhotographer, Label: "Fotograf", Kind: models.AddOnBinary, Note: "na upit"},
		{ID: models.AddOnDecoration, Label: "Dekoracije", Kind: models.AddOnBinary, Note: "na upit"},
		{ID: models.AddOnCatering, Label: "Premium ketering", Kind: models.AddOnBinary, Note: "na upit"},
		{ID: models.AddOnMakeup, Label: "Šminka", Kind: models.AddOnBinary, Note: "na upit"},
		{ID: models.AddOnDJ, Label: "DJ & audio paket", Kind: models.AddOnBinary, Note: "ozvučenje uključeno"},
		{ID: models.AddOnIceKg, Label: "Led za piće", Kind: models.AddOnMetered, UnitPrice: IceRate, Unit: "kg", Step: IceStep},
		{ID: models.AddOnTables, Label: "Dodatni stolovi", Kind: models.AddOnMetered, UnitPrice: TableRate, Unit: "kom", Step: TableStep},
		{ID: models.AddOnWaiterHours, Label: "Konobar", Kind: models.AddOnMetered, UnitPrice: WaiterRate, Unit: "h", Step: WaiterStep},
	}
}

// StepAddOn moves a metered add-on one step up or down. Quantities never go
// below zero.
func StepAddOn(sel models.AddOnSelection, id models.AddOnID, up bool) (models.AddOnSelection, error) {
	var qty *int
	var step int
	switch id {
	case models.AddOnTables:
		qty, step = &sel.Tables, TableStep
	case models.AddOnWaiterHours:
		qty, step = &sel.WaiterHours, WaiterStep
	case models.AddOnIceKg:
		qty, step = &sel.IceKg, IceStep
	default:
		return sel, newBookingError(CodeValidation, fmt.Sprintf("add-on %q has no quantity", id), ErrValidation)
	}
	if up {
		*qty += step
	} else {
		*qty -= step
		if *qty < 0 {
			*qty = 0
		}
	}
	return sel, nil
}

// ValidateAddOns checks that quantities are non-negative and aligned to their
// step.
func ValidateAddOns(sel models.AddOnSelection) error {
	var fields []string
	if sel.Tables < 0 {
		fields = append(fields, string(models.AddOnTables))
	}
	if sel.WaiterHours < 0 {
		fields = append(fields, string(models.AddOnWaiterHours))
	}
	if sel.IceKg < 0 || sel.IceKg%IceStep != 0 {
		fields = append(fields, string(models.AddOnIceKg))
	}
	if len(fields) > 0 {
		return newValidationError("add-on quantities must be non-negative whole steps", fields)
	}
	return nil
}
