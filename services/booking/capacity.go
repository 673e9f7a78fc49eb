package booking

import "indodjija/models"

// MinGroupSize is the smallest bookable head count, per group for composite
// packages.
const MinGroupSize = 10

// GuardCapacity restores the guest ceiling of the selected space. It is a
// pure recomputation run after every change to space, children, adults or
// the single count.
//
// Clamp order is fixed: the ceiling comes from the space first, then
// children are bounded by the ceiling, then adults take what is left.
// Children are authoritative; adults are the dependent count. Negative
// counts become zero. With no space selected nothing is clamped.
func GuardCapacity(v *PackageVariant, space models.SpaceType, g models.GuestComposition) models.GuestComposition {
	g.Composite = v.Composite
	g.Guests = nonNegative(g.Guests)
	g.Children = nonNegative(g.Children)
	g.Adults = nonNegative(g.Adults)

	if !space.Valid() {
		return g
	}
	ceiling := v.Ceiling(space)

	if !v.Composite {
		if g.Guests > ceiling {
			g.Guests = ceiling
		}
		return g
	}

	if g.Children > ceiling {
		g.Children = ceiling
	}
	if g.Children+g.Adults > ceiling {
		g.Adults = nonNegative(ceiling - g.Children)
	}
	return g
}

// DefaultGuests is the starting composition of a new draft.
func DefaultGuests(v *PackageVariant) models.GuestComposition {
	if v.Composite {
		return models.GuestComposition{Composite: true, Children: 20, Adults: 30}
	}
	return models.GuestComposition{Guests: 30}
}

// belowMinimum names the counts of g under MinGroupSize.
func belowMinimum(g models.GuestComposition) []string {
	var short []string
	if !g.Composite {
		if g.Guests < MinGroupSize {
			short = append(short, "guests")
		}
		return short
	}
	if g.Children < MinGroupSize {
		short = append(short, "children")
	}
	if g.Adults < MinGroupSize {
		short = append(short, "adults")
	}
	return short
}
