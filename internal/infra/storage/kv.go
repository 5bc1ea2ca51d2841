package storage

import "context"

// Claves heredadas del prototipo: cada colección vive entera bajo una
// clave fija, como en localStorage.
const (
	BookingsKey = "pinta_bookings"
	RecordsKey  = "pinta_records"
	AuditKey    = "pinta_audit"
)

// KV es el contrato mínimo de un backend clave→blob.
// Get devuelve (nil, nil) cuando la clave no existe.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
