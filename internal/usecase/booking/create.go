package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pintabarberia/pinta-booking/internal/audit"
	domain "github.com/pintabarberia/pinta-booking/internal/domain/booking"
	"github.com/pintabarberia/pinta-booking/internal/httperr"
	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/store"
	"github.com/pintabarberia/pinta-booking/internal/timezone"
	"github.com/pintabarberia/pinta-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Name    string
	Phone   string
	Date    string
	Time    string
	Service string
	Barbero string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	bookings store.BookingStore
	audit    *audit.Dispatcher
	now      func() time.Time

	// La secuencia recargar→verificar→anexar→guardar es la sección
	// crítica que cierra la ventana entre "slot mostrado libre" y
	// "slot ya reservado". Un solo escritor lógico a la vez.
	mu sync.Mutex
}

func NewCreateBooking(
	bookings store.BookingStore,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CreateBooking {
	return &CreateBooking{
		bookings: bookings,
		audit:    audit,
		now:      now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Validación de campos
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)

	if name == "" || phone == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrValidation("missing_fields")
	}

	if !validators.IsValidDate(in.Date) {
		return nil, httperr.ErrValidation("invalid_date")
	}
	if !validators.IsValidClock(in.Time) {
		return nil, httperr.ErrValidation("invalid_time")
	}

	service := strings.TrimSpace(in.Service)
	if service == "" {
		service = domain.DefaultService
	}
	barbero := strings.TrimSpace(in.Barbero)
	if barbero == "" {
		barbero = domain.DefaultBarbero
	}

	// --------------------------------------------------
	// 2. Fecha pasada (comparación sólo de fecha: reservar
	//    para hoy siempre está permitido, sin importar la hora)
	// --------------------------------------------------
	if in.Date < timezone.DateOf(uc.now()) {
		return nil, httperr.ErrValidation("past_date")
	}

	// --------------------------------------------------
	// 3. Sección crítica: recargar, verificar, anexar, guardar
	// --------------------------------------------------
	uc.mu.Lock()
	defer uc.mu.Unlock()

	bookings, err := uc.bookings.Load(ctx)
	if err != nil {
		return nil, err
	}

	if domain.IsTaken(bookings, in.Date, in.Time, barbero) {
		uc.audit.Dispatch(audit.Event{
			Action: "booking_conflict",
			Entity: "booking",
			Metadata: map[string]string{
				"date":    in.Date,
				"time":    in.Time,
				"barbero": barbero,
			},
		})
		return nil, httperr.ErrConflict("slot_taken")
	}

	b := models.Booking{
		ID:      uuid.NewString(),
		Name:    name,
		Phone:   phone,
		Date:    in.Date,
		Time:    in.Time,
		Service: service,
		Barbero: barbero,
	}

	bookings = append(bookings, b)
	if err := uc.bookings.Save(ctx, bookings); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Auditoría
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return &b, nil
}
