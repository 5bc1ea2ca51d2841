package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pintabarberia/pinta-booking/internal/models"
)

func TestAvailableSlotsExcludesTakenSlot(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Date: "2024-06-01", Time: "08:50", Barbero: "Jhon Reales"},
	}

	// now en otra fecha: no aplica el filtro de horas pasadas
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	slots := AvailableSlots("2024-06-01", "Jhon Reales", bookings, now)

	assert.NotContains(t, slots, "08:50")
	assert.Contains(t, slots, "08:00")
	assert.Contains(t, slots, "09:40")
	assert.Len(t, slots, 14)
}

func TestAvailableSlotsPerBarberUniqueness(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Date: "2024-06-01", Time: "08:50", Barbero: "Jhon Reales"},
	}
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	// el slot ocupado por Jhon sigue libre para otro barbero
	slots := AvailableSlots("2024-06-01", "Carlos Mena", bookings, now)
	assert.Contains(t, slots, "08:50")
	assert.Len(t, slots, 15)
}

func TestAvailableSlotsTodayFiltersPastTimes(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	slots := AvailableSlots("2024-06-01", "Jhon Reales", nil, now)

	// 10:30 es "ya pasó": sólo slots estrictamente futuros
	assert.NotContains(t, slots, "08:00")
	assert.NotContains(t, slots, "09:40")
	assert.NotContains(t, slots, "10:30")
	assert.Contains(t, slots, "11:20")
	assert.Equal(t, "11:20", slots[0])
}

func TestAvailableSlotsFutureDateNoTimeFilter(t *testing.T) {
	now := time.Date(2024, 6, 1, 19, 59, 0, 0, time.UTC)

	slots := AvailableSlots("2024-06-02", "Jhon Reales", nil, now)
	assert.Len(t, slots, 15)
}

func TestAvailableSlotsEmptyWhenDayIsOver(t *testing.T) {
	now := time.Date(2024, 6, 1, 21, 0, 0, 0, time.UTC)

	slots := AvailableSlots("2024-06-01", "Jhon Reales", nil, now)
	assert.Empty(t, slots)
}

func TestAvailableSlotsAllTaken(t *testing.T) {
	bookings := make([]models.Booking, 0, 15)
	for _, s := range Slots() {
		bookings = append(bookings, models.Booking{
			Date: "2024-06-01", Time: s, Barbero: "Jhon Reales",
		})
	}
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	slots := AvailableSlots("2024-06-01", "Jhon Reales", bookings, now)
	assert.Empty(t, slots)
}

func TestIsTaken(t *testing.T) {
	bookings := []models.Booking{
		{Date: "2024-06-01", Time: "08:50", Barbero: "Jhon Reales"},
	}

	tests := []struct {
		name    string
		date    string
		slot    string
		barbero string
		want    bool
	}{
		{"misma tripleta", "2024-06-01", "08:50", "Jhon Reales", true},
		{"otro barbero", "2024-06-01", "08:50", "Carlos Mena", false},
		{"otra fecha", "2024-06-02", "08:50", "Jhon Reales", false},
		{"otro slot", "2024-06-01", "09:40", "Jhon Reales", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTaken(bookings, tt.date, tt.slot, tt.barbero))
		})
	}
}
