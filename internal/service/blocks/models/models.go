package models

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
)

// Request модели

// CreateBlockRequest запрос на создание блокировки.
// Для scope=month Date нормализуется к первому числу месяца.
type CreateBlockRequest struct {
	Scope  string    `json:"scope"` // "date" | "month"
	Date   time.Time `json:"date"`
	Reason *string   `json:"reason,omitempty"`
}

// ListBlocksRequest запрос списка блокировок за период
type ListBlocksRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Response модели

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID        int64     `json:"id"`
	Scope     string    `json:"scope"`
	Date      string    `json:"date"` // "2026-09-14", для month первое число месяца
	Reason    *string   `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Методы конвертации

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.DayBlock) *BlockResponse {
	if b == nil {
		return nil
	}
	return &BlockResponse{
		ID:        b.ID,
		Scope:     string(b.Scope),
		Date:      b.BlockDate.Format(domain.DateFormat),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.DayBlock) *BlockListResponse {
	out := &BlockListResponse{Blocks: make([]BlockResponse, 0, len(blocks))}
	for _, b := range blocks {
		out.Blocks = append(out.Blocks, *FromDomainBlock(b))
	}
	return out
}
