package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pintabarberia/pinta-booking/internal/httperr"
	"github.com/pintabarberia/pinta-booking/internal/httpresp"
	"github.com/pintabarberia/pinta-booking/internal/timezone"
	ucLedger "github.com/pintabarberia/pinta-booking/internal/usecase/ledger"
	"github.com/pintabarberia/pinta-booking/internal/validators"
)

// ======================================================
// HANDLER — panel del barbero
// ======================================================

type LedgerHandler struct {
	registerUC   *ucLedger.RegisterService
	daySummaryUC *ucLedger.DaySummary
	now          func() time.Time
}

func NewLedgerHandler(
	registerUC *ucLedger.RegisterService,
	daySummaryUC *ucLedger.DaySummary,
	now func() time.Time,
) *LedgerHandler {
	return &LedgerHandler{
		registerUC:   registerUC,
		daySummaryUC: daySummaryUC,
		now:          now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterServiceRequest struct {
	Service string  `json:"service"`
	Price   float64 `json:"price"`
}

// ======================================================
// REGISTER
// ======================================================

func (h *LedgerHandler) Register(c *gin.Context) {
	var req RegisterServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	rec, err := h.registerUC.Execute(c.Request.Context(), req.Service, req.Price)
	if err != nil {
		if ve, ok := httperr.AsValidation(err); ok {
			httperr.BadRequest(c, ve.Code, userMessage(ve.Code))
			return
		}
		httperr.Internal(c, "failed_to_register_service", "Error al registrar el corte.")
		return
	}

	httpresp.Created(c, rec)
}

// ======================================================
// DAY SUMMARY (historial + total del día)
// ======================================================

func (h *LedgerHandler) DaySummary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timezone.DateOf(h.now())
	}
	if !validators.IsValidDate(date) {
		httperr.BadRequest(c, "invalid_date", userMessage("invalid_date"))
		return
	}

	summary, err := h.daySummaryUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_summarize_day", "Error al consultar el día.")
		return
	}

	httpresp.OK(c, summary)
}
