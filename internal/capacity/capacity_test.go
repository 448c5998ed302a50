package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/ptr"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

func res(start string, duration, party int) Reservation {
	return Reservation{
		Start:           types.TimeString(start),
		DurationMinutes: duration,
		PartySize:       party,
	}
}

func TestFeasible(t *testing.T) {
	const capacity = 92

	t.Run("empty room accepts any party within capacity", func(t *testing.T) {
		assert.True(t, Feasible(res("10:00", 30, 92), nil, capacity))
		assert.True(t, Feasible(res("10:00", 30, 1), []Reservation{}, capacity))
	})

	t.Run("party bigger than capacity is always rejected", func(t *testing.T) {
		assert.False(t, Feasible(res("10:00", 30, 93), nil, capacity))
		assert.False(t, Feasible(res("10:00", 80, 93), []Reservation{}, capacity))
	})

	t.Run("overlap exceeding capacity is rejected", func(t *testing.T) {
		existing := []Reservation{res("10:00", 30, 80)}

		// 80 + 15 = 95 > 92 в интервале 10:15-10:30
		assert.False(t, Feasible(res("10:15", 30, 15), existing, capacity))
	})

	t.Run("back-to-back at shared boundary does not conflict", func(t *testing.T) {
		existing := []Reservation{res("10:00", 30, 80)}

		// Существующая заканчивается ровно в 10:30, места освобождаются
		// до прихода новой группы
		assert.True(t, Feasible(res("10:30", 30, 15), existing, capacity))
		assert.True(t, Feasible(res("10:30", 30, 92), existing, capacity))
	})

	t.Run("adjacency holds even when combined size exceeds capacity", func(t *testing.T) {
		existing := []Reservation{res("09:00", 60, 90)}

		// 90 + 90 > 92, но интервалы граничат в 10:00 и не пересекаются
		assert.True(t, Feasible(res("10:00", 30, 90), existing, capacity))
	})

	t.Run("proposed ending at existing start does not conflict", func(t *testing.T) {
		existing := []Reservation{res("10:30", 80, 90)}

		assert.True(t, Feasible(res("10:00", 30, 90), existing, capacity))
	})

	t.Run("peak across several overlapping reservations", func(t *testing.T) {
		existing := []Reservation{
			res("10:00", 80, 30),
			res("10:30", 30, 30),
			res("10:45", 30, 30),
		}

		// Пик в 10:45-11:00: 30+30+30 = 90; ещё 2 помещаются, 3 уже нет
		assert.True(t, Feasible(res("10:45", 15, 2), existing, capacity))
		assert.False(t, Feasible(res("10:45", 15, 3), existing, capacity))
	})

	t.Run("non overlapping reservations are ignored", func(t *testing.T) {
		existing := []Reservation{
			res("10:00", 30, 92),
			res("12:00", 80, 92),
		}

		assert.True(t, Feasible(res("11:00", 30, 92), existing, capacity))
	})

	t.Run("usage may reach capacity exactly", func(t *testing.T) {
		existing := []Reservation{res("10:00", 30, 77)}

		assert.True(t, Feasible(res("10:00", 30, 15), existing, capacity))
		assert.False(t, Feasible(res("10:00", 30, 16), existing, capacity))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		existing := []Reservation{
			res("10:00", 80, 40),
			res("11:00", 30, 40),
		}
		proposed := res("10:45", 30, 13)

		first := Feasible(proposed, existing, capacity)
		second := Feasible(proposed, existing, capacity)
		assert.Equal(t, first, second)
	})
}

func TestFromVisits(t *testing.T) {
	visits := []*domain.Visit{
		{StartTime: "10:00", DurationMinutes: 30, PartySize: 10, Status: domain.StatusConfirmed},
		{StartTime: "11:00", DurationMinutes: 80, PartySize: 20, Status: domain.StatusCancelled},
		{StartTime: "12:00", DurationMinutes: 30, PartySize: 5, Status: domain.StatusConfirmed},
	}

	snapshot := FromVisits(visits)

	require.Len(t, snapshot, 2, "cancelled visits must not occupy capacity")
	assert.Equal(t, types.TimeString("10:00"), snapshot[0].Start)
	assert.Equal(t, types.TimeString("12:00"), snapshot[1].Start)
}

func TestFeasible_CapacityInvariant(t *testing.T) {
	// Для принятого бронирования ни в один момент суммарная занятость
	// не превышает вместимость, проверяем прямым подсчётом по минутам.
	const capacity = 92

	existing := []Reservation{
		res("10:00", 80, 35),
		res("10:15", 30, 25),
		res("11:00", 30, 30),
		res("11:30", 80, 40),
	}

	policy := domain.DefaultBookingPolicy()
	for _, start := range AvailableStarts(policy, domain.TypeWorkshop, 20, existing) {
		proposed := Reservation{Start: start, DurationMinutes: 80, PartySize: 20}
		all := append([]Reservation{proposed}, existing...)

		for minute := proposed.Start.Minutes(); minute < proposed.endMinutes(); minute++ {
			usage := 0
			for _, r := range all {
				if r.Start.Minutes() <= minute && minute < r.endMinutes() {
					usage += r.PartySize
				}
			}
			require.LessOrEqualf(t, usage, capacity,
				"capacity exceeded at minute %d for start %s", minute, start)
		}
	}
}

func TestFromVisits_ExcludesOnlyCancelled(t *testing.T) {
	visits := []*domain.Visit{
		{ID: 1, StartTime: "10:00", DurationMinutes: 30, PartySize: 10, Status: domain.StatusConfirmed, Notes: ptr.Ptr("group tour")},
	}

	assert.Len(t, FromVisits(visits), 1)
}
