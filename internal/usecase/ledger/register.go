package ledger

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pintabarberia/pinta-booking/internal/audit"
	domain "github.com/pintabarberia/pinta-booking/internal/domain/booking"
	"github.com/pintabarberia/pinta-booking/internal/httperr"
	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/store"
	"github.com/pintabarberia/pinta-booking/internal/timezone"
)

// ======================================================
// USE CASE — registrar un corte realizado
// ======================================================

type RegisterService struct {
	records store.RecordStore
	audit   *audit.Dispatcher
	now     func() time.Time

	mu sync.Mutex
}

func NewRegisterService(
	records store.RecordStore,
	audit *audit.Dispatcher,
	now func() time.Time,
) *RegisterService {
	return &RegisterService{
		records: records,
		audit:   audit,
		now:     now,
	}
}

// Execute registra el corte con la fecha y hora del reloj del sistema
// en el momento del registro, nunca con valores del cliente.
func (uc *RegisterService) Execute(
	ctx context.Context,
	service string,
	price float64,
) (*models.ServiceRecord, error) {

	if price <= 0 {
		return nil, httperr.ErrValidation("invalid_price")
	}

	service = strings.TrimSpace(service)
	if service == "" {
		service = domain.DefaultService
	}

	now := uc.now()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	records, err := uc.records.Load(ctx)
	if err != nil {
		return nil, err
	}

	rec := models.ServiceRecord{
		ID:      uuid.NewString(),
		Service: service,
		Price:   price,
		Time:    timezone.ClockOf(now),
		Date:    timezone.DateOf(now),
	}

	records = append(records, rec)
	if err := uc.records.Save(ctx, records); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_registered",
		Entity:   "service_record",
		EntityID: rec.ID,
	})

	return &rec, nil
}
