package booking

import (
	"sort"

	"github.com/pintabarberia/pinta-booking/internal/models"
)

// Valores por defecto cuando el cliente no elige servicio o barbero.
// Viven aquí, en la capa de dominio, y no regados por la presentación.
const (
	DefaultService = "Corte"
	DefaultBarbero = "Jhon Reales"
)

// SortForListing ordena las reservas por fecha, luego hora, luego
// barbero, que es el orden del listado lateral de la página del cliente.
func SortForListing(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.Barbero < b.Barbero
	})
}
