package models

// ServiceRecord es un corte ya realizado y cobrado, registrado por el barbero.
// Date y Time se capturan del reloj en el momento del registro, nunca del cliente.
type ServiceRecord struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Service string  `gorm:"size:100;not null" json:"service"`
	Price   float64 `gorm:"not null" json:"price"`

	Time string `gorm:"size:5;not null" json:"time"`
	Date string `gorm:"size:10;not null;index" json:"date"`
}
