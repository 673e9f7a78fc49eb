package booking

import (
	"indodjija/models"
)

// ComputeTotal prices a booking: the variant's base tariff plus metered
// add-ons. Binary add-ons are quoted on request and never counted. A
// ByAgreement variant returns the ByAgreement price whatever the inputs.
func ComputeTotal(v *PackageVariant, g models.GuestComposition, slot string, addOns models.AddOnSelection) models.Price {
	if v.ByAgreement || v.price == nil {
		return models.ByAgreement()
	}
	base := v.price(g, slot)
	if base < 0 {
		base = 0
	}
	return models.Priced(base + AddOnContribution(addOns))
}

// AddOnContribution sums the metered add-ons. Negative quantities count as
// zero.
func AddOnContribution(sel models.AddOnSelection) models.Money {
	return models.Money(nonNegative(sel.Tables))*TableRate +
		models.Money(nonNegative(sel.WaiterHours))*WaiterRate +
		models.Money(nonNegative(sel.IceKg))*IceRate
}

// Remaining is the balance due on-site. It does not exist for negotiated
// prices and never goes below zero.
func Remaining(total models.Price) (models.Money, bool) {
	if total.IsByAgreement() {
		return 0, false
	}
	r := total.Amount - models.DepositAmount
	if r < 0 {
		r = 0
	}
	return r, true
}

// BuildQuote computes the full price breakdown for a draft.
func BuildQuote(v *PackageVariant, g models.GuestComposition, slot string, addOns models.AddOnSelection) models.Quote {
	q := models.Quote{Deposit: models.DepositAmount}
	if v.ByAgreement || v.price == nil {
		q.Base = models.ByAgreement()
		q.Total = models.ByAgreement()
		return q
	}
	base := v.price(g, slot)
	if base < 0 {
		base = 0
	}
	q.Base = models.Priced(base)
	q.AddOns = AddOnContribution(addOns)
	q.Total = models.Priced(base + q.AddOns)
	if r, ok := Remaining(q.Total); ok {
		q.Remaining = &r
	}
	return q
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
