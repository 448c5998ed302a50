package get_available_starts

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// Request модель запроса доступных времён начала
type Request struct {
	Date      time.Time        // Дата визита
	VisitType domain.VisitType // Тип визита
	PartySize int              // Размер группы
}

// Response список допустимых времён начала в хронологическом порядке.
// Пустой список означает, что день закрыт или свободных окон нет.
type Response struct {
	Date            time.Time
	VisitType       domain.VisitType
	PartySize       int
	DurationMinutes int
	Starts          []types.TimeString
	DayBlocked      bool // день закрыт административной блокировкой
}
