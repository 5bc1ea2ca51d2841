package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pintabarberia/pinta-booking/internal/audit"
	"github.com/pintabarberia/pinta-booking/internal/config"
	"github.com/pintabarberia/pinta-booking/internal/handlers"
	"github.com/pintabarberia/pinta-booking/internal/infra/storage"
	"github.com/pintabarberia/pinta-booking/internal/middleware"
	"github.com/pintabarberia/pinta-booking/internal/timezone"
	ucBooking "github.com/pintabarberia/pinta-booking/internal/usecase/booking"
	ucLedger "github.com/pintabarberia/pinta-booking/internal/usecase/ledger"
)

func RegisterRoutes(r *gin.Engine, st *storage.Stores, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	now := timezone.NowFunc(cfg.Timezone)

	auditLogger := audit.New(st.Audit)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(st.Bookings, now)
	createBookingUC := ucBooking.NewCreateBooking(st.Bookings, auditDispatcher, now)
	listBookingsUC := ucBooking.NewListBookings(st.Bookings)

	registerServiceUC := ucLedger.NewRegisterService(st.Records, auditDispatcher, now)
	daySummaryUC := ucLedger.NewDaySummary(st.Records)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		availabilityUC,
		createBookingUC,
		listBookingsUC,
	)

	ledgerHandler := handlers.NewLedgerHandler(
		registerServiceUC,
		daySummaryUC,
		now,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CLIENTE
		// ------------------------------
		api.GET("/slots", bookingHandler.Slots)
		api.GET("/availability", bookingHandler.Availability)
		api.GET("/bookings", bookingHandler.List)
		api.POST("/bookings", bookingHandler.Create)

		// ------------------------------
		// PANEL BARBERO
		// ------------------------------
		api.POST("/records", ledgerHandler.Register)
		api.GET("/records", ledgerHandler.DaySummary)
	}
}
