package models

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// Request модели

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	Date          time.Time        `json:"date"`
	StartTime     types.TimeString `json:"startTime"`
	VisitType     domain.VisitType `json:"visitType"`
	PriceOverride *float64         `json:"priceOverride,omitempty"`
}

// SetPriceRequest запрос на установку базовой цены типа визита
type SetPriceRequest struct {
	VisitType domain.VisitType `json:"visitType"`
	BasePrice float64          `json:"basePrice"`
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID            int64    `json:"id"`
	Date          string   `json:"date"` // "2026-09-14"
	StartTime     string   `json:"startTime"`
	VisitType     string   `json:"visitType"`
	PriceOverride *float64 `json:"priceOverride,omitempty"`
}

// SlotListResponse ответ со списком слотов дня
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}
	return &SlotResponse{
		ID:            s.ID,
		Date:          s.SlotDate.Format(domain.DateFormat),
		StartTime:     s.StartTime.String(),
		VisitType:     string(s.VisitType),
		PriceOverride: s.PriceOverride,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	out := &SlotListResponse{Slots: make([]SlotResponse, 0, len(slots))}
	for _, s := range slots {
		out.Slots = append(out.Slots, *FromDomainSlot(s))
	}
	return out
}
