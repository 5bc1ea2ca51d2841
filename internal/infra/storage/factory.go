package storage

import (
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/pintabarberia/pinta-booking/internal/config"
	dbpkg "github.com/pintabarberia/pinta-booking/internal/db"
	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/store"
)

type Stores struct {
	Bookings store.BookingStore
	Records  store.RecordStore
	Audit    store.AuditStore
}

// New arma las tres colecciones sobre el backend configurado.
func New(cfg *config.Config) (*Stores, error) {
	switch cfg.StorageBackend {

	case "memory":
		return fromKV(NewMemoryKV()), nil

	case "file":
		kv, err := NewFileKV(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return fromKV(kv), nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		return fromKV(NewRedisKV(client)), nil

	case "postgres":
		db := dbpkg.NewDB(cfg)
		return &Stores{
			Bookings: NewGormBookingStore(db),
			Records:  NewGormRecordStore(db),
			Audit:    NewGormAuditStore(db),
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func fromKV(kv KV) *Stores {
	return &Stores{
		Bookings: NewCollection[models.Booking](kv, BookingsKey),
		Records:  NewCollection[models.ServiceRecord](kv, RecordsKey),
		Audit:    NewCollection[models.AuditEvent](kv, AuditKey),
	}
}
