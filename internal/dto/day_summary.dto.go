package dto

import "github.com/pintabarberia/pinta-booking/internal/models"

type DaySummaryDTO struct {
	Date    string                 `json:"date"`
	Records []models.ServiceRecord `json:"records"`
	Total   float64                `json:"total"`
}
