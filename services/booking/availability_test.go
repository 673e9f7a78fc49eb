package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indodjija/models"
)

func TestAvailableSlots_NoDateSelected(t *testing.T) {
	out := AvailableSlots(kidsVariant(t), "", nil)
	assert.False(t, out.DateSelected)
	assert.False(t, out.AllBooked)
	assert.Empty(t, out.Slots)
}

func TestAvailableSlots_FiltersConfirmedKeepsOrder(t *testing.T) {
	v := kidsVariant(t)
	confirmed := []models.Reservation{
		confirmedAt(models.PackageTeen, testDate, SlotAfternoon),
		confirmedAt(models.PackageKids, "2025-06-21", SlotMorning),
	}
	out := AvailableSlots(v, testDate, confirmed)
	assert.True(t, out.DateSelected)
	assert.False(t, out.AllBooked)
	assert.Equal(t, []string{SlotMorning, SlotEarlyEve}, out.Slots)
}

func TestAvailableSlots_AllBooked(t *testing.T) {
	v := kidsVariant(t)
	var confirmed []models.Reservation
	for _, s := range v.Slots {
		confirmed = append(confirmed, confirmedAt(models.PackageKids, testDate, s))
	}
	out := AvailableSlots(v, testDate, confirmed)
	assert.True(t, out.DateSelected)
	assert.True(t, out.AllBooked)
	assert.Empty(t, out.Slots)
}

func TestAvailableSlots_NeverReturnsBookedSlot(t *testing.T) {
	cat := NewCatalog()
	confirmed := []models.Reservation{
		confirmedAt(models.PackageAdult, testDate, SlotEvening),
		confirmedAt(models.PackageBaby, testDate, SlotMidday),
	}
	for _, v := range cat.Variants() {
		out := AvailableSlots(v, testDate, confirmed)
		assert.NotContains(t, out.Slots, SlotEvening, v.ID)
		assert.NotContains(t, out.Slots, SlotMidday, v.ID)
	}
}

func TestCatalog_AllDaySlots(t *testing.T) {
	cat := NewCatalog()
	assert.Len(t, cat.AllDaySlots(), 6)

	_, err := cat.Get("wedding")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPackage)
}
