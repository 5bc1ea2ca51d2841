package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pintabarberia/pinta-booking/internal/audit"
	"github.com/pintabarberia/pinta-booking/internal/httperr"
	"github.com/pintabarberia/pinta-booking/internal/infra/storage"
	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/store"
)

func newTestDispatcher() *audit.Dispatcher {
	kv := storage.NewMemoryKV()
	events := storage.NewCollection[models.AuditEvent](kv, storage.AuditKey)
	return audit.NewDispatcher(audit.New(events))
}

func memoryRecords() store.RecordStore {
	kv := storage.NewMemoryKV()
	return storage.NewCollection[models.ServiceRecord](kv, storage.RecordsKey)
}

func TestRegisterServiceCapturesClock(t *testing.T) {
	ctx := context.Background()
	records := memoryRecords()
	now := time.Date(2024, 6, 1, 10, 5, 33, 0, time.UTC)
	uc := NewRegisterService(records, newTestDispatcher(), func() time.Time { return now })

	rec, err := uc.Execute(ctx, "Corte", 15000)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Corte", rec.Service)
	assert.Equal(t, float64(15000), rec.Price)
	assert.Equal(t, "10:05", rec.Time, "hora del reloj, no del cliente")
	assert.Equal(t, "2024-06-01", rec.Date)
}

func TestRegisterServiceInvalidPrice(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 5, 0, 0, time.UTC)

	tests := []struct {
		name  string
		price float64
	}{
		{"precio cero", 0},
		{"precio negativo", -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterService(memoryRecords(), newTestDispatcher(), func() time.Time { return now })

			_, err := uc.Execute(context.Background(), "Corte", tt.price)
			require.Error(t, err)
			assert.True(t, httperr.IsValidation(err, "invalid_price"))
		})
	}
}

func TestDailyTotal(t *testing.T) {
	ctx := context.Background()
	records := memoryRecords()
	now := time.Date(2024, 6, 1, 10, 5, 0, 0, time.UTC)
	register := NewRegisterService(records, newTestDispatcher(), func() time.Time { return now })
	summary := NewDaySummary(records)

	_, err := register.Execute(ctx, "Corte", 15000)
	require.NoError(t, err)

	day, err := summary.Execute(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, float64(15000), day.Total)
	assert.Len(t, day.Records, 1)

	// un registro rechazado no altera el total
	_, err = register.Execute(ctx, "Corte", 0)
	require.Error(t, err)

	day, err = summary.Execute(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, float64(15000), day.Total)

	// otro día suma aparte
	day, err = summary.Execute(ctx, "2024-06-02")
	require.NoError(t, err)
	assert.Zero(t, day.Total)
	assert.Empty(t, day.Records)
}

func TestDailyTotalAccumulates(t *testing.T) {
	ctx := context.Background()
	records := memoryRecords()
	now := time.Date(2024, 6, 1, 10, 5, 0, 0, time.UTC)
	register := NewRegisterService(records, newTestDispatcher(), func() time.Time { return now })

	_, err := register.Execute(ctx, "Corte", 15000)
	require.NoError(t, err)
	_, err = register.Execute(ctx, "Barba", 8000)
	require.NoError(t, err)

	day, err := NewDaySummary(records).Execute(ctx, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, float64(23000), day.Total)
	assert.Len(t, day.Records, 2)
}
