package utils

import (
	"fmt"
	"time"
)

// RentalDurationDays computes the billable duration of a rental in whole
// days: the number of full days between start and end, rounded up, with a
// one-day minimum. A same-day rental is billed as one day.
func RentalDurationDays(start, end time.Time) (int64, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end date must not be before start date")
	}
	diff := end.Sub(start)
	days := int64(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days, nil
}

// RentalAmountCents computes the total payment amount for a rental.
func RentalAmountCents(pricePerDayCents int64, start, end time.Time) (int64, error) {
	days, err := RentalDurationDays(start, end)
	if err != nil {
		return 0, err
	}
	return pricePerDayCents * days, nil
}
