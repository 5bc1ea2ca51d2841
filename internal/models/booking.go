package models

// Booking es la reserva de un cliente: un slot, un barbero, una fecha.
// Inmutable después de creada; no existe cancelación ni edición.
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`

	// Date en formato 2006-01-02, Time en formato 15:04 (slot del catálogo).
	Date string `gorm:"size:10;not null;index:idx_booking_slot" json:"date"`
	Time string `gorm:"size:5;not null;index:idx_booking_slot" json:"time"`

	Service string `gorm:"size:100" json:"service"`
	Barbero string `gorm:"size:100;index:idx_booking_slot" json:"barbero"`
}
