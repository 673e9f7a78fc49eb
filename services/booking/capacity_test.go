package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indodjija/models"
)

func kidsVariant(t *testing.T) *PackageVariant {
	t.Helper()
	v, err := NewCatalog().Get(models.PackageKids)
	require.NoError(t, err)
	return v
}

func TestGuardCapacity_ClosedClampsAdults(t *testing.T) {
	g := GuardCapacity(kidsVariant(t), models.SpaceClosed, models.GuestComposition{Children: 50, Adults: 30})
	assert.Equal(t, 50, g.Children)
	assert.Equal(t, 20, g.Adults)
}

func TestGuardCapacity_ClosedInvariantHolds(t *testing.T) {
	v := kidsVariant(t)
	for children := 0; children <= 120; children += 3 {
		for adults := 0; adults <= 120; adults += 7 {
			g := GuardCapacity(v, models.SpaceClosed, models.GuestComposition{Children: children, Adults: adults})
			assert.LessOrEqual(t, g.Children+g.Adults, ClosedCeiling)
			assert.LessOrEqual(t, g.Adults, adults, "adults never grow")
			if children <= ClosedCeiling {
				assert.Equal(t, children, g.Children, "children are authoritative")
			}
		}
	}
}

func TestGuardCapacity_ChildrenAboveCeiling(t *testing.T) {
	g := GuardCapacity(kidsVariant(t), models.SpaceClosed, models.GuestComposition{Children: 90, Adults: 10})
	assert.Equal(t, 70, g.Children)
	assert.Equal(t, 0, g.Adults)
}

func TestGuardCapacity_SingleCount(t *testing.T) {
	cat := NewCatalog()
	adult, err := cat.Get(models.PackageAdult)
	require.NoError(t, err)
	premium, err := cat.Get(models.PackageSlavlja)
	require.NoError(t, err)

	assert.Equal(t, 70, GuardCapacity(adult, models.SpaceClosed, models.GuestComposition{Guests: 95}).Guests)
	assert.Equal(t, 200, GuardCapacity(adult, models.SpaceOpen, models.GuestComposition{Guests: 250}).Guests)
	assert.Equal(t, 120, GuardCapacity(premium, models.SpaceOpen, models.GuestComposition{Guests: 150}).Guests)
	assert.Equal(t, 150, GuardCapacity(adult, models.SpaceOpen, models.GuestComposition{Guests: 150}).Guests)
}

func TestGuardCapacity_NoSpaceNoClamp(t *testing.T) {
	g := GuardCapacity(kidsVariant(t), "", models.GuestComposition{Children: 100, Adults: 100})
	assert.Equal(t, 100, g.Children)
	assert.Equal(t, 100, g.Adults)
}

func TestGuardCapacity_NegativeCountsBecomeZero(t *testing.T) {
	g := GuardCapacity(kidsVariant(t), models.SpaceOpen, models.GuestComposition{Children: -4, Adults: -1})
	assert.Equal(t, 0, g.Children)
	assert.Equal(t, 0, g.Adults)
}

func TestGuardCapacity_Idempotent(t *testing.T) {
	v := kidsVariant(t)
	once := GuardCapacity(v, models.SpaceClosed, models.GuestComposition{Children: 40, Adults: 60})
	assert.Equal(t, once, GuardCapacity(v, models.SpaceClosed, once))
}
