package handlers

// Mensajes para el usuario final, heredados del prototipo.
var userMessages = map[string]string{
	"missing_fields": "Completa todos los campos antes de reservar.",
	"invalid_date":   "Fecha inválida.",
	"invalid_time":   "Hora inválida.",
	"past_date":      "No puedes reservar fechas pasadas.",
	"slot_taken":     "Ese horario ya fue reservado. Elige otro.",
	"invalid_price":  "Ingresa un precio válido.",
}

func userMessage(code string) string {
	if msg, ok := userMessages[code]; ok {
		return msg
	}
	return "Solicitud inválida."
}
