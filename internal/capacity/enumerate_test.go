package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// testPolicy зал на 92 места, 10:00-16:00, сетка 15 минут
func testPolicy() domain.BookingPolicy {
	return domain.BookingPolicy{
		RoomCapacity:           92,
		OpeningTime:            "10:00",
		ClosingTime:            "16:00",
		SlotGranularityMinutes: 15,
		Durations: map[domain.VisitType]int{
			domain.TypeSightseeing: 30,
			domain.TypeWorkshop:    80,
		},
	}
}

func TestAvailableStarts_GridAdherence(t *testing.T) {
	policy := testPolicy()

	starts := AvailableStarts(policy, domain.TypeSightseeing, 10, nil)
	require.NotEmpty(t, starts)

	open := policy.OpeningTime.Minutes()
	closing := policy.ClosingTime.Minutes()

	for _, s := range starts {
		// Каждый старт строго на сетке: opening + k*15
		offset := s.Minutes() - open
		assert.Zerof(t, offset%policy.SlotGranularityMinutes, "start %s is off-grid", s)
		assert.GreaterOrEqual(t, s.Minutes(), open)
		// Визит целиком помещается до закрытия
		assert.LessOrEqual(t, s.Minutes()+30, closing)
	}

	// 10:00..15:30 включительно с шагом 15 минут
	assert.Len(t, starts, 23)
	assert.Equal(t, types.TimeString("10:00"), starts[0])
	assert.Equal(t, types.TimeString("15:30"), starts[len(starts)-1])
}

func TestAvailableStarts_WorkshopWindow(t *testing.T) {
	policy := testPolicy()

	starts := AvailableStarts(policy, domain.TypeWorkshop, 10, nil)
	require.NotEmpty(t, starts)

	last := starts[len(starts)-1]
	// 80-минутный мастер-класс: последний кандидат на сетке, целиком
	// помещающийся до 16:00, это 14:30 (14:40 вне 15-минутной сетки,
	// перечислитель его не предлагает)
	assert.Equal(t, types.TimeString("14:30"), last)
	assert.LessOrEqual(t, last.Minutes()+80, policy.ClosingTime.Minutes())

	// 14:45 + 80 = 16:05 за закрытием, предлагаться не должен
	for _, s := range starts {
		assert.NotEqual(t, types.TimeString("14:45"), s)
	}
}

func TestAvailableStarts_FullRoomHidesOverlappingStarts(t *testing.T) {
	policy := testPolicy()

	existing := []Reservation{
		{Start: "10:00", DurationMinutes: 30, PartySize: 80},
	}

	starts := AvailableStarts(policy, domain.TypeSightseeing, 15, existing)

	// 80+15 > 92: старты, пересекающие 10:00-10:30, скрыты
	assert.NotContains(t, starts, types.TimeString("10:00"))
	assert.NotContains(t, starts, types.TimeString("10:15"))
	// 10:30 граничит с концом существующей, доступен (tie-break)
	assert.Contains(t, starts, types.TimeString("10:30"))
}

func TestAvailableStarts_SmallPartyFitsAlongside(t *testing.T) {
	policy := testPolicy()

	existing := []Reservation{
		{Start: "10:00", DurationMinutes: 30, PartySize: 80},
	}

	// 80+12 = 92, ровно вместимость, допустимо
	starts := AvailableStarts(policy, domain.TypeSightseeing, 12, existing)
	assert.Contains(t, starts, types.TimeString("10:00"))
	assert.Contains(t, starts, types.TimeString("10:15"))
}

func TestAvailableStarts_PartyOverCapacity(t *testing.T) {
	policy := testPolicy()

	starts := AvailableStarts(policy, domain.TypeSightseeing, policy.RoomCapacity+1, nil)
	assert.Empty(t, starts)
}

func TestAvailableStarts_Deterministic(t *testing.T) {
	policy := testPolicy()
	existing := []Reservation{
		{Start: "11:00", DurationMinutes: 80, PartySize: 50},
		{Start: "12:00", DurationMinutes: 30, PartySize: 50},
	}

	first := AvailableStarts(policy, domain.TypeWorkshop, 45, existing)
	second := AvailableStarts(policy, domain.TypeWorkshop, 45, existing)
	assert.Equal(t, first, second)
}

func TestAvailableStarts_DegeneratePolicies(t *testing.T) {
	t.Run("zero granularity", func(t *testing.T) {
		policy := testPolicy()
		policy.SlotGranularityMinutes = 0
		assert.Empty(t, AvailableStarts(policy, domain.TypeSightseeing, 1, nil))
	})

	t.Run("window shorter than visit", func(t *testing.T) {
		policy := testPolicy()
		policy.OpeningTime = "15:00"
		policy.ClosingTime = "16:00"
		assert.Empty(t, AvailableStarts(policy, domain.TypeWorkshop, 1, nil))
	})

	t.Run("closing before opening", func(t *testing.T) {
		policy := testPolicy()
		policy.OpeningTime = "16:00"
		policy.ClosingTime = "10:00"
		assert.Empty(t, AvailableStarts(policy, domain.TypeSightseeing, 1, nil))
	})
}
