package booking

import "indodjija/models"

// AvailableSlots filters the variant's candidate slots against confirmed
// reservations on date, keeping display order. The slot namespace is shared
// by every package, so any confirmed reservation on a label removes it.
func AvailableSlots(v *PackageVariant, date string, confirmed []models.Reservation) models.AvailableSlots {
	out := models.AvailableSlots{PackageID: v.ID, Date: date, Slots: []string{}}
	if date == "" {
		return out
	}
	out.DateSelected = true

	taken := takenSlots(date, confirmed)
	for _, s := range v.Slots {
		if !taken[s] {
			out.Slots = append(out.Slots, s)
		}
	}
	out.AllBooked = len(v.Slots) > 0 && len(out.Slots) == 0
	return out
}

// IsSlotFree reports whether (date, slot) is not held by a confirmed
// reservation.
func IsSlotFree(date, slot string, confirmed []models.Reservation) bool {
	return !takenSlots(date, confirmed)[slot]
}

func takenSlots(date string, confirmed []models.Reservation) map[string]bool {
	taken := make(map[string]bool)
	for _, r := range confirmed {
		if r.Status == models.StatusConfirmed && r.Date == date {
			taken[r.TimeSlot] = true
		}
	}
	return taken
}
