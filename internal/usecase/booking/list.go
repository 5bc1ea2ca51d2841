package booking

import (
	"context"

	domain "github.com/pintabarberia/pinta-booking/internal/domain/booking"
	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/store"
)

type ListBookings struct {
	bookings store.BookingStore
}

func NewListBookings(bookings store.BookingStore) *ListBookings {
	return &ListBookings{bookings: bookings}
}

func (uc *ListBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	bookings, err := uc.bookings.Load(ctx)
	if err != nil {
		return nil, err
	}

	domain.SortForListing(bookings)
	return bookings, nil
}
