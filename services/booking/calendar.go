package booking

import (
	"fmt"
	"time"

	"indodjija/models"
)

// DateLayout is the ISO calendar date used for reservation dates.
const DateLayout = "2006-01-02"

// DayStatus buckets a day by its confirmed reservations, across all packages.
func DayStatus(date string, confirmed []models.Reservation, totalSlots int) models.Occupancy {
	booked := countBooked(date, confirmed)
	switch {
	case booked == 0:
		return models.OccupancyFree
	case booked >= totalSlots:
		return models.OccupancyFull
	default:
		return models.OccupancyPartial
	}
}

// ProjectMonth builds the calendar of a month. today decides which days are
// past; past days are not selectable but keep their occupancy.
func ProjectMonth(year int, month time.Month, today time.Time, confirmed []models.Reservation, totalSlots int) (models.CalendarMonth, error) {
	if month < time.January || month > time.December {
		return models.CalendarMonth{}, newValidationError(fmt.Sprintf("month %d out of range", month), []string{"month"})
	}
	cal := models.CalendarMonth{Year: year, Month: int(month), TotalSlots: totalSlots}

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		date := d.Format(DateLayout)
		status := DayStatus(date, confirmed, totalSlots)
		past := d.Before(todayDate)
		cal.Days = append(cal.Days, models.DayStatus{
			Date:       date,
			Status:     status,
			Booked:     countBooked(date, confirmed),
			Past:       past,
			Selectable: !past && status != models.OccupancyFull,
		})
	}
	return cal, nil
}

// IsPastDate reports whether date lies before today's calendar day.
func IsPastDate(date string, today time.Time) (bool, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return false, err
	}
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return d.Before(todayDate), nil
}

func countBooked(date string, confirmed []models.Reservation) int {
	n := 0
	for _, r := range confirmed {
		if r.Status == models.StatusConfirmed && r.Date == date {
			n++
		}
	}
	return n
}
