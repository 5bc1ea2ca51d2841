package validators

import (
	"time"

	"github.com/pintabarberia/pinta-booking/internal/timezone"
)

func IsValidDate(date string) bool {
	_, err := time.Parse(timezone.DateLayout, date)
	return err == nil
}

func IsValidClock(clock string) bool {
	_, err := time.Parse(timezone.ClockLayout, clock)
	return err == nil
}
