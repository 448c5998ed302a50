package models

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
)

// Request модели

// GetDayVisitsRequest запрос на получение визитов дня
type GetDayVisitsRequest struct {
	Day              time.Time         `json:"day"`
	IncludeCancelled bool              `json:"includeCancelled,omitempty"`
	VisitType        *domain.VisitType `json:"visitType,omitempty"`
}

// CancelVisitRequest запрос на отмену визита
type CancelVisitRequest struct {
	VisitID            int64  `json:"visitId"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdatePartySizeRequest запрос на изменение размера группы.
// Force пропускает проверку вместимости (только административный вызов).
type UpdatePartySizeRequest struct {
	VisitID   int64 `json:"visitId"`
	PartySize int   `json:"partySize"`
	Force     bool  `json:"force,omitempty"`
}

// Response модели

// VisitResponse ответ с данными визита
type VisitResponse struct {
	ID              int64   `json:"id"`
	VisitDate       string  `json:"visitDate"` // "2026-09-14"
	StartTime       string  `json:"startTime"` // "10:00"
	EndTime         string  `json:"endTime,omitempty"`
	VisitType       string  `json:"visitType"`
	DurationMinutes int     `json:"durationMinutes"`
	PartySize       int     `json:"partySize"`
	Status          string  `json:"status"`
	Price           float64 `json:"price"`

	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	Notes         *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VisitListResponse ответ со списком визитов дня
type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
}

// Методы конвертации

// FromDomainVisit конвертирует domain модель в DTO
func FromDomainVisit(v *domain.Visit) *VisitResponse {
	if v == nil {
		return nil
	}

	resp := &VisitResponse{
		ID:              v.ID,
		VisitDate:       v.VisitDate.Format(domain.DateFormat),
		StartTime:       v.StartTime.String(),
		VisitType:       string(v.VisitType),
		DurationMinutes: v.DurationMinutes,
		PartySize:       v.PartySize,
		Status:          string(v.Status),
		Price:           v.Price,
		CustomerName:    v.CustomerName,
		CustomerEmail:   v.CustomerEmail,
		CustomerPhone:   v.CustomerPhone,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}

	if end, err := v.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	resp.CancellationReason = v.CancellationReason
	if v.CancelledAt != nil {
		formatted := v.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &formatted
	}

	return resp
}

// FromDomainVisitList конвертирует список domain моделей в DTO
func FromDomainVisitList(visits []*domain.Visit) *VisitListResponse {
	out := &VisitListResponse{Visits: make([]VisitResponse, 0, len(visits))}
	for _, v := range visits {
		out.Visits = append(out.Visits, *FromDomainVisit(v))
	}
	return out
}
