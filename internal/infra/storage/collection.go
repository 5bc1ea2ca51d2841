package storage

import (
	"context"
	"encoding/json"

	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/store"
)

// Collection serializa una colección completa como JSON bajo una clave
// fija de un KV. JSON corrupto se trata como colección vacía: este core
// no tiene forma de recuperar un blob dañado, así que favorecemos
// disponibilidad sobre señalización estricta.
type Collection[T any] struct {
	kv  KV
	key string
}

func NewCollection[T any](kv KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return []T{}, nil
	}
	if items == nil {
		return []T{}, nil
	}
	return items, nil
}

func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.kv.Set(ctx, c.key, raw)
}

// Compile-time checks
var (
	_ store.BookingStore = (*Collection[models.Booking])(nil)
	_ store.RecordStore  = (*Collection[models.ServiceRecord])(nil)
	_ store.AuditStore   = (*Collection[models.AuditEvent])(nil)
)
