package booking

import (
	"time"

	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/timezone"
)

// ======================================================
// DISPONIBILIDAD
// ======================================================

// IsTaken responde si ya existe una reserva para la tripleta
// (date, time, barbero). La unicidad es por barbero: el mismo slot
// puede estar reservado con dos barberos distintos a la vez.
func IsTaken(bookings []models.Booking, date, slot, barbero string) bool {
	for _, b := range bookings {
		if b.Date == date && b.Time == slot && b.Barbero == barbero {
			return true
		}
	}
	return false
}

// AvailableSlots filtra el catálogo a los slots ofrecibles para un
// barbero en una fecha: quita los ya reservados por ese barbero y, si
// la fecha es hoy, los que ya pasaron según now. Una lista vacía es un
// resultado válido, no un error.
func AvailableSlots(date, barbero string, bookings []models.Booking, now time.Time) []string {
	isToday := date == timezone.DateOf(now)
	nowMinute := now.Hour()*60 + now.Minute()

	available := make([]string, 0)
	for _, slot := range Slots() {
		if IsTaken(bookings, date, slot, barbero) {
			continue
		}

		if isToday && slotMinute(slot) <= nowMinute {
			continue
		}

		available = append(available, slot)
	}

	return available
}

func slotMinute(slot string) int {
	t, err := time.Parse(timezone.ClockLayout, slot)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}
