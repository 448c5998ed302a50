// Package capacity содержит чистую логику проверки вместимости зала:
// sweep-line оракул и перечисление доступных стартов. Пакет не ходит в БД,
// работает только со снапшотами, которые передают usecase-слои.
package capacity

import (
	"sort"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// Reservation занятый интервал: party человек в зале на [Start, Start+Duration)
type Reservation struct {
	Start           types.TimeString
	DurationMinutes int
	PartySize       int
}

// End возвращает правую (исключаемую) границу интервала в минутах
func (r Reservation) endMinutes() int {
	return r.Start.Minutes() + r.DurationMinutes
}

// FromVisits конвертирует визиты в снапшот для расчётов,
// отбрасывая отменённые: они не занимают вместимость
func FromVisits(visits []*domain.Visit) []Reservation {
	result := make([]Reservation, 0, len(visits))
	for _, v := range visits {
		if !v.IsActive() {
			continue
		}
		result = append(result, Reservation{
			Start:           v.StartTime,
			DurationMinutes: v.DurationMinutes,
			PartySize:       v.PartySize,
		})
	}
	return result
}

// event точка изменения занятости: +party на старте, -party на конце интервала
type event struct {
	at    int // минуты с начала суток
	delta int
}

// Feasible проверяет, можно ли добавить proposed к existing, не превысив
// capacity ни в один момент времени.
//
// Алгоритм: sweep-line по точкам событий:
//  1. Если party сам по себе больше вместимости, отказ сразу.
//  2. Оставляем только реально пересекающиеся интервалы (строгое пересечение
//     полуоткрытых интервалов: s1 < e2 && s2 < e1). Граничащие интервалы
//     не влияют на результат.
//  3. Для каждого интервала два события: (+party, start) и (-party, end).
//  4. Сортировка по времени; при равных временах уходы раньше приходов.
//     Это сознательный tie-break: группа, уходящая ровно в момент прихода
//     новой, освобождает места ДО того, как новая будет посчитана. Без него
//     бронирования "впритык" ошибочно отклонялись бы. Не менять без
//     согласования с продуктом.
//  5. Проход с накоплением занятости; строгое превышение capacity даёт отказ.
func Feasible(proposed Reservation, existing []Reservation, capacity int) bool {
	if proposed.PartySize > capacity {
		return false
	}

	pStart := proposed.Start.Minutes()
	pEnd := proposed.endMinutes()

	events := make([]event, 0, 2*len(existing)+2)
	events = append(events,
		event{at: pStart, delta: proposed.PartySize},
		event{at: pEnd, delta: -proposed.PartySize},
	)

	for _, r := range existing {
		s := r.Start.Minutes()
		e := r.endMinutes()
		// Строгое пересечение с proposed; остальные интервалы не могут
		// повлиять на пик занятости внутри его окна
		if s < pEnd && pStart < e {
			events = append(events,
				event{at: s, delta: r.PartySize},
				event{at: e, delta: -r.PartySize},
			)
		}
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].at != events[j].at {
			return events[i].at < events[j].at
		}
		// Уходы (отрицательные дельты) раньше приходов
		return events[i].delta < events[j].delta
	})

	usage := 0
	for _, ev := range events {
		usage += ev.delta
		if usage > capacity {
			return false
		}
	}

	return true
}
