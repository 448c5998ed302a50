package capacity

import (
	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// AvailableStarts перечисляет все допустимые времена начала визита на день.
//
// Кандидаты идут сеткой policy.SlotGranularityMinutes от открытия, последний
// кандидат такой, что кандидат+длительность не выходит за закрытие
// (фактически closing - duration, усечённое к сетке). Каждый кандидат
// проверяется оракулом Feasible против существующих резерваций.
//
// Функция чистая и детерминированная: повторный вызов с теми же аргументами
// даёт тот же результат. Blackout-проверка (DayBlock) выполняется на уровне
// usecase до вызова: при закрытом дне сюда приходить не нужно.
func AvailableStarts(
	policy domain.BookingPolicy,
	visitType domain.VisitType,
	partySize int,
	existing []Reservation,
) []types.TimeString {
	duration := policy.DurationFor(visitType)
	granularity := policy.SlotGranularityMinutes

	open := policy.OpeningTime.Minutes()
	closing := policy.ClosingTime.Minutes()

	starts := make([]types.TimeString, 0)
	if granularity <= 0 || duration <= 0 || open >= closing {
		return starts
	}

	for candidate := open; candidate+duration <= closing; candidate += granularity {
		start, err := types.NewTimeStringFromMinutes(candidate)
		if err != nil {
			break
		}

		proposed := Reservation{
			Start:           start,
			DurationMinutes: duration,
			PartySize:       partySize,
		}

		if Feasible(proposed, existing, policy.RoomCapacity) {
			starts = append(starts, start)
		}
	}

	return starts
}
