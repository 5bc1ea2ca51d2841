package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/pintabarberia/pinta-booking/internal/domain/booking"
	"github.com/pintabarberia/pinta-booking/internal/httperr"
	"github.com/pintabarberia/pinta-booking/internal/httpresp"
	ucBooking "github.com/pintabarberia/pinta-booking/internal/usecase/booking"
	"github.com/pintabarberia/pinta-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateBooking
	listUC         *ucBooking.ListBookings
}

func NewBookingHandler(
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
	listUC *ucBooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Service string `json:"service"`
	Barbero string `json:"barbero"`
}

// ======================================================
// SLOTS (catálogo completo)
// ======================================================

func (h *BookingHandler) Slots(c *gin.Context) {
	httpresp.List(c, domain.Slots())
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Fecha obligatoria.")
		return
	}
	if !validators.IsValidDate(date) {
		httperr.BadRequest(c, "invalid_date", userMessage("invalid_date"))
		return
	}

	barbero := c.Query("barbero")

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date, barbero)
	if err != nil {
		httperr.Internal(c, "availability_error", "Error al consultar disponibilidad.")
		return
	}

	// Lista vacía es una respuesta válida; el placeholder
	// "No hay horarios disponibles" lo pone la UI.
	httpresp.List(c, slots)
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Date:    req.Date,
		Time:    req.Time,
		Service: req.Service,
		Barbero: req.Barbero,
	})
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			httperr.BadRequest(c, ve.Code, userMessage(ve.Code))
			return
		}
		if ce, ok := httperr.AsConflict(err); ok {
			httperr.Conflict(c, ce.Code, userMessage(ce.Code))
			return
		}
		httperr.Internal(c, "failed_to_create_booking", "Error al crear la reserva.")
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Error al listar reservas.")
		return
	}

	httpresp.List(c, bookings)
}
