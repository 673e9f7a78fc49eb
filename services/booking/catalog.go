package booking

import (
	"fmt"

	"indodjija/models"
)

const (
	// ClosedCeiling bounds every enclosed-hall booking.
	ClosedCeiling = 70
	// OpenAirCeiling bounds open-air bookings of regular packages.
	OpenAirCeiling = 200
	// PremiumOpenAirCeiling bounds open-air bookings of the premium package.
	PremiumOpenAirCeiling = 120
)

// PriceFunc maps a guest composition and slot label to the base tariff.
type PriceFunc func(g models.GuestComposition, slot string) models.Money

// PackageVariant is one bookable offering. Variants are built once in
// NewCatalog and never mutated.
type PackageVariant struct {
	ID         models.PackageID
	Name       string
	Emoji      string
	Inclusions string
	Slots      []string

	// Composite variants count children and adults separately.
	Composite bool
	// ByAgreement variants have no numeric price.
	ByAgreement    bool
	OpenAirCeiling int

	price PriceFunc
}

// HasSlot reports whether label is one of the variant's candidate slots.
func (v *PackageVariant) HasSlot(label string) bool {
	for _, s := range v.Slots {
		if s == label {
			return true
		}
	}
	return false
}

// Ceiling returns the guest ceiling for the given space.
func (v *PackageVariant) Ceiling(space models.SpaceType) int {
	if space == models.SpaceClosed {
		return ClosedCeiling
	}
	return v.OpenAirCeiling
}

// Info is the public view of the variant.
func (v *PackageVariant) Info() models.PackageInfo {
	slots := make([]string, len(v.Slots))
	copy(slots, v.Slots)
	return models.PackageInfo{
		ID:             v.ID,
		Name:           v.Name,
		Emoji:          v.Emoji,
		Inclusions:     v.Inclusions,
		Slots:          slots,
		Composite:      v.Composite,
		ByAgreement:    v.ByAgreement,
		OpenAirCeiling: v.OpenAirCeiling,
		ClosedCeiling:  ClosedCeiling,
	}
}

// Slot labels. The namespace is venue-wide: two packages offering the same
// label compete for the same (date, slot) pair.
const (
	SlotMorning     = "10:00 - 13:00"
	SlotAfternoon   = "14:00 - 17:00"
	SlotEarlyEve    = "17:30 - 20:30"
	SlotMidday      = "12:00 - 17:00"
	SlotEvening     = "18:00 - 23:00"
	SlotLateEvening = "20:00 - 02:00"
)

// Catalog is the static registry of package variants.
type Catalog struct {
	order    []models.PackageID
	variants map[models.PackageID]*PackageVariant
	allSlots []string
}

// NewCatalog builds the venue offer.
func NewCatalog() *Catalog {
	variants := []*PackageVariant{
		{
			ID:             models.PackageKids,
			Name:           "Dečiji rođendan",
			Emoji:          "🎈",
			Inclusions:     "animatori, torta, sokovi i grickalice za decu",
			Slots:          []string{SlotMorning, SlotAfternoon, SlotEarlyEve},
			Composite:      true,
			OpenAirCeiling: OpenAirCeiling,
			price:          kidsPrice,
		},
		{
			ID:             models.PackageTeen,
			Name:           "Tinejdžerska žurka",
			Emoji:          "🎧",
			Inclusions:     "ozvučenje, svetla, bezalkoholni bar",
			Slots:          []string{SlotAfternoon, SlotEvening},
			OpenAirCeiling: OpenAirCeiling,
			price: slotTariff(map[string]models.Money{
				SlotAfternoon: 18000,
				SlotEvening:   25000,
			}, 30, 500),
		},
		{
			ID:             models.PackageAdult,
			Name:           "Rođendan za odrasle",
			Emoji:          "🥂",
			Inclusions:     "sedeća mesta, stolovi, escajg, osnovna dekoracija",
			Slots:          []string{SlotEvening, SlotLateEvening},
			OpenAirCeiling: OpenAirCeiling,
			price: slotTariff(map[string]models.Money{
				SlotEvening:     30000,
				SlotLateEvening: 38000,
			}, 40, 600),
		},
		{
			ID:             models.PackageBaby,
			Name:           "Baby shower",
			Emoji:          "🍼",
			Inclusions:     "pastelna dekoracija, slatki sto, sedeća mesta",
			Slots:          []string{SlotMidday, SlotEarlyEve},
			OpenAirCeiling: OpenAirCeiling,
			price: slotTariff(map[string]models.Money{
				SlotMidday:   22000,
				SlotEarlyEve: 26000,
			}, 30, 500),
		},
		{
			ID:             models.PackageGender,
			Name:           "Gender reveal",
			Emoji:          "💙",
			Inclusions:     "reveal efekti, dekoracija, sedeća mesta",
			Slots:          []string{SlotMidday, SlotEarlyEve},
			OpenAirCeiling: OpenAirCeiling,
			price: slotTariff(map[string]models.Money{
				SlotMidday:   20000,
				SlotEarlyEve: 24000,
			}, 30, 500),
		},
		{
			ID:             models.PackageEighteen,
			Name:           "Punoletstvo",
			Emoji:          "🎉",
			Inclusions:     "DJ pult, svetla, šank, sedeća mesta",
			Slots:          []string{SlotEvening, SlotLateEvening},
			OpenAirCeiling: OpenAirCeiling,
			price: slotTariff(map[string]models.Money{
				SlotEvening:     35000,
				SlotLateEvening: 42000,
			}, 50, 600),
		},
		{
			ID:             models.PackageSlavlja,
			Name:           "Slavlja",
			Emoji:          "👑",
			Inclusions:     "sedeća mesta, stolovi, escajg i premium postavka",
			Slots:          []string{SlotMidday, SlotEvening},
			ByAgreement:    true,
			OpenAirCeiling: PremiumOpenAirCeiling,
		},
	}

	c := &Catalog{variants: make(map[models.PackageID]*PackageVariant, len(variants))}
	seen := make(map[string]bool)
	for _, v := range variants {
		c.order = append(c.order, v.ID)
		c.variants[v.ID] = v
	}
	// Union in canonical display order.
	for _, label := range []string{SlotMorning, SlotAfternoon, SlotEarlyEve, SlotMidday, SlotEvening, SlotLateEvening} {
		for _, v := range variants {
			if v.HasSlot(label) && !seen[label] {
				seen[label] = true
				c.allSlots = append(c.allSlots, label)
			}
		}
	}
	return c
}

// Get looks a variant up by id.
func (c *Catalog) Get(id models.PackageID) (*PackageVariant, error) {
	v, ok := c.variants[id]
	if !ok {
		return nil, newBookingError(CodeUnknownPackage, fmt.Sprintf("unknown package %q", id), ErrUnknownPackage)
	}
	return v, nil
}

// Variants returns the variants in display order.
func (c *Catalog) Variants() []*PackageVariant {
	out := make([]*PackageVariant, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.variants[id])
	}
	return out
}

// AllDaySlots is every slot label that exists for a day, venue-wide.
func (c *Catalog) AllDaySlots() []string {
	out := make([]string, len(c.allSlots))
	copy(out, c.allSlots)
	return out
}

// Describe builds the public catalog.
func (c *Catalog) Describe() models.Catalog {
	out := models.Catalog{
		AddOns:   AddOnCatalog(),
		Deposit:  models.DepositAmount,
		AllSlots: c.AllDaySlots(),
	}
	for _, v := range c.Variants() {
		out.Packages = append(out.Packages, v.Info())
	}
	return out
}

// kidsPrice: 200€ covers 20 children and 30 adults, 8€ per extra child and
// 4€ per extra adult. The slot does not matter.
func kidsPrice(g models.GuestComposition, _ string) models.Money {
	return 20000 + models.Money(extra(g.Children, 20))*800 + models.Money(extra(g.Adults, 30))*400
}

// slotTariff prices by slot: a base per slot covering included guests, plus
// perGuest for each guest above that. An unknown or empty slot uses the
// cheapest base so a quote can be shown before a slot is picked.
func slotTariff(base map[string]models.Money, included int, perGuest models.Money) PriceFunc {
	var cheapest models.Money = -1
	for _, b := range base {
		if cheapest < 0 || b < cheapest {
			cheapest = b
		}
	}
	return func(g models.GuestComposition, slot string) models.Money {
		b, ok := base[slot]
		if !ok {
			b = cheapest
		}
		return b + models.Money(extra(g.Total(), included))*perGuest
	}
}

func extra(n, included int) int {
	if n <= included {
		return 0
	}
	return n - included
}
