package storage

import (
	"context"

	"gorm.io/gorm"

	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/store"
)

// Los stores gorm mantienen la semántica load-entire / save-entire del
// blob original, sólo que sobre filas: Save reemplaza la colección
// completa dentro de una transacción.

// --------------------------------------------------
// Bookings
// --------------------------------------------------

type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) Load(ctx context.Context) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := s.db.WithContext(ctx).
		Order("date ASC, time ASC, barbero ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormBookingStore) Save(ctx context.Context, bookings []models.Booking) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		if len(bookings) == 0 {
			return nil
		}
		return tx.Create(&bookings).Error
	})
}

// --------------------------------------------------
// ServiceRecords
// --------------------------------------------------

type GormRecordStore struct {
	db *gorm.DB
}

func NewGormRecordStore(db *gorm.DB) *GormRecordStore {
	return &GormRecordStore{db: db}
}

func (s *GormRecordStore) Load(ctx context.Context) ([]models.ServiceRecord, error) {
	records := []models.ServiceRecord{}
	if err := s.db.WithContext(ctx).
		Order("date ASC, time ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *GormRecordStore) Save(ctx context.Context, records []models.ServiceRecord) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ServiceRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

type GormAuditStore struct {
	db *gorm.DB
}

func NewGormAuditStore(db *gorm.DB) *GormAuditStore {
	return &GormAuditStore{db: db}
}

func (s *GormAuditStore) Load(ctx context.Context) ([]models.AuditEvent, error) {
	events := []models.AuditEvent{}
	if err := s.db.WithContext(ctx).
		Order("at ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *GormAuditStore) Save(ctx context.Context, events []models.AuditEvent) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.AuditEvent{}).Error; err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}
		return tx.Create(&events).Error
	})
}

// Compile-time checks
var (
	_ store.BookingStore = (*GormBookingStore)(nil)
	_ store.RecordStore  = (*GormRecordStore)(nil)
	_ store.AuditStore   = (*GormAuditStore)(nil)
)
