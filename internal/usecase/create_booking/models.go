package create_booking

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Либо указывается SlotID, либо тройка Date+StartTime+VisitType,
// которая должна точно совпасть с существующим слотом.
type Request struct {
	SlotID    *int64           // ID предопределённого слота (опционально)
	Date      time.Time        // Дата визита (без времени)
	StartTime types.TimeString // Время начала ("10:00")
	VisitType domain.VisitType // Тип визита

	PartySize     int     // Размер группы
	CustomerName  string  // Имя клиента
	CustomerEmail *string // Email для подтверждения (опционально)
	CustomerPhone *string // Телефон (опционально)
	Notes         *string // Дополнительные заметки (опционально)

	// AdminOverride пропускает проверки блокировок и вместимости.
	// Выставляется только административным вызывающим.
	AdminOverride bool
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	VisitDate       time.Time
	StartTime       types.TimeString
	VisitType       domain.VisitType
	DurationMinutes int
	PartySize       int
	Status          string
	Price           float64

	CustomerName  string
	CustomerEmail *string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidationResult результат предварительной проверки бронирования
type ValidationResult struct {
	Valid  bool
	Reason string // пусто при Valid=true
}

func fromDomain(v *domain.Visit) *Response {
	return &Response{
		ID:              v.ID,
		VisitDate:       v.VisitDate,
		StartTime:       v.StartTime,
		VisitType:       v.VisitType,
		DurationMinutes: v.DurationMinutes,
		PartySize:       v.PartySize,
		Status:          string(v.Status),
		Price:           v.Price,
		CustomerName:    v.CustomerName,
		CustomerEmail:   v.CustomerEmail,
		Notes:           v.Notes,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
