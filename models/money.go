package models

import (
	"encoding/json"
	"fmt"
	"math"
)

// Money is an amount of euro cents.
type Money int64

// Euros converts cents into a euro value for display.
func (m Money) Euros() float64 { return float64(m) / 100 }

func (m Money) String() string { return fmt.Sprintf("%.2f€", m.Euros()) }

// MarshalJSON renders euros; storage keeps the integer cents.
func (m Money) MarshalJSON() ([]byte, error) { return json.Marshal(m.Euros()) }

func (m *Money) UnmarshalJSON(b []byte) error {
	var eur float64
	if err := json.Unmarshal(b, &eur); err != nil {
		return err
	}
	*m = EurosToMoney(eur)
	return nil
}

// EurosToMoney rounds a euro amount to the nearest cent.
func EurosToMoney(eur float64) Money { return Money(math.Round(eur * 100)) }

// DepositAmount is the flat prepayment that moves a draft to confirmed.
// It never depends on the computed total.
const DepositAmount Money = 4000

// PriceKind tags a Price as a numeric amount or a negotiated one.
type PriceKind string

const (
	PriceKindPriced      PriceKind = "priced"
	PriceKindByAgreement PriceKind = "by_agreement"
)

// ByAgreementMarker is how a negotiated price is rendered on the wire.
const ByAgreementMarker = "by_agreement"

// Price is either Priced(amount) or ByAgreement. A ByAgreement price has no
// numeric value; callers must check IsByAgreement before using Amount.
type Price struct {
	Kind   PriceKind `bson:"kind" json:"-"`
	Amount Money     `bson:"amountCents" json:"-"`
}

func Priced(amount Money) Price { return Price{Kind: PriceKindPriced, Amount: amount} }

func ByAgreement() Price { return Price{Kind: PriceKindByAgreement} }

func (p Price) IsByAgreement() bool { return p.Kind == PriceKindByAgreement }

func (p Price) String() string {
	if p.IsByAgreement() {
		return ByAgreementMarker
	}
	return p.Amount.String()
}

// MarshalJSON renders a priced value as a number of euros and a negotiated one
// as the "by_agreement" marker.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.IsByAgreement() {
		return json.Marshal(ByAgreementMarker)
	}
	return json.Marshal(p.Amount.Euros())
}

func (p *Price) UnmarshalJSON(b []byte) error {
	var marker string
	if err := json.Unmarshal(b, &marker); err == nil {
		if marker != ByAgreementMarker {
			return fmt.Errorf("unknown price marker %q", marker)
		}
		*p = ByAgreement()
		return nil
	}
	var eur float64
	if err := json.Unmarshal(b, &eur); err != nil {
		return fmt.Errorf("price must be a number or %q: %w", ByAgreementMarker, err)
	}
	*p = Priced(EurosToMoney(eur))
	return nil
}

// Quote is the price breakdown shown next to the booking form.
// Remaining is nil for negotiated prices.
type Quote struct {
	Base      Price  `json:"base"`
	AddOns    Money  `json:"addOns"`
	Total     Price  `json:"total"`
	Deposit   Money  `json:"deposit"`
	Remaining *Money `json:"remaining,omitempty"`
}
