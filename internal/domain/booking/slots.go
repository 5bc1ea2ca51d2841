package booking

import "fmt"

// ======================================================
// CATÁLOGO DE SLOTS
// ======================================================
//
// La jornada va de 08:00 a 20:00 inclusive, con slots cada 50 minutos
// medidos desde la apertura. El último slot que cabe es 19:40: el
// siguiente paso (20:30) ya supera el cierre.

const (
	openingMinute = 8 * 60
	closingMinute = 20 * 60

	SlotIntervalMinutes = 50
)

// Slots devuelve el catálogo completo en orden ascendente. Es
// determinista; se recalcula bajo demanda, no se cachea.
func Slots() []string {
	slots := make([]string, 0, (closingMinute-openingMinute)/SlotIntervalMinutes+1)

	for cur := openingMinute; cur <= closingMinute; cur += SlotIntervalMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", cur/60, cur%60))
	}

	return slots
}
