package booking

import (
	"context"
	"time"

	domain "github.com/pintabarberia/pinta-booking/internal/domain/booking"
	"github.com/pintabarberia/pinta-booking/internal/store"
)

type GetAvailability struct {
	bookings store.BookingStore
	now      func() time.Time
}

func NewGetAvailability(
	bookings store.BookingStore,
	now func() time.Time,
) *GetAvailability {
	return &GetAvailability{
		bookings: bookings,
		now:      now,
	}
}

// Execute recarga la colección en cada llamada: ningún componente
// guarda una copia privada entre llamadas.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
	barbero string,
) ([]string, error) {

	if barbero == "" {
		barbero = domain.DefaultBarbero
	}

	bookings, err := uc.bookings.Load(ctx)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(date, barbero, bookings, uc.now()), nil
}
