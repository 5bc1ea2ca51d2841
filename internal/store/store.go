package store

import (
	"context"

	"github.com/pintabarberia/pinta-booking/internal/models"
)

// Las colecciones se persisten completas: load-entire / save-entire,
// igual que el blob único del prototipo original. Los stores no aplican
// ninguna regla de negocio; la unicidad (date, time, barbero) la
// garantiza el usecase que escribe.
//
// Un payload ausente o corrupto carga como colección vacía, nunca como
// error. Un fallo real del backend (Redis caído, error de SQL) sí sube
// como error.

type BookingStore interface {
	Load(ctx context.Context) ([]models.Booking, error)
	Save(ctx context.Context, bookings []models.Booking) error
}

type RecordStore interface {
	Load(ctx context.Context) ([]models.ServiceRecord, error)
	Save(ctx context.Context, records []models.ServiceRecord) error
}

type AuditStore interface {
	Load(ctx context.Context) ([]models.AuditEvent, error)
	Save(ctx context.Context, events []models.AuditEvent) error
}
