package ledger

import (
	"context"

	"github.com/pintabarberia/pinta-booking/internal/dto"
	"github.com/pintabarberia/pinta-booking/internal/models"
	"github.com/pintabarberia/pinta-booking/internal/store"
)

// ======================================================
// USE CASE — historial y total del día
// ======================================================

type DaySummary struct {
	records store.RecordStore
}

func NewDaySummary(records store.RecordStore) *DaySummary {
	return &DaySummary{records: records}
}

// Execute recalcula el total recorriendo la colección completa en cada
// llamada. La colección es pequeña en este dominio; no hay caché ni
// mantenimiento incremental.
func (uc *DaySummary) Execute(
	ctx context.Context,
	date string,
) (*dto.DaySummaryDTO, error) {

	records, err := uc.records.Load(ctx)
	if err != nil {
		return nil, err
	}

	dayRecords := make([]models.ServiceRecord, 0)
	var total float64

	for _, r := range records {
		if r.Date != date {
			continue
		}
		dayRecords = append(dayRecords, r)
		total += r.Price
	}

	return &dto.DaySummaryDTO{
		Date:    date,
		Records: dayRecords,
		Total:   total,
	}, nil
}
