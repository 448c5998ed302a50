package get_available_starts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

type fakeVisitRepo struct {
	visits []*domain.Visit
}

func (r *fakeVisitRepo) GetByDay(_ context.Context, filter domain.DayVisitsFilter) ([]*domain.Visit, error) {
	var out []*domain.Visit
	for _, v := range r.visits {
		if !v.VisitDate.Equal(filter.Day) {
			continue
		}
		if !filter.IncludeCancelled && v.IsCancelled() {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

type fakeBlockRepo struct {
	blocks []*domain.DayBlock
}

func (r *fakeBlockRepo) GetCovering(_ context.Context, day time.Time) ([]*domain.DayBlock, error) {
	var out []*domain.DayBlock
	for _, b := range r.blocks {
		if b.Covers(day) {
			out = append(out, b)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDay = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func ts(s string) types.TimeString { return types.TimeString(s) }

func newUseCase(visits *fakeVisitRepo, blocks *fakeBlockRepo) *UseCase {
	return NewUseCase(visits, blocks, domain.DefaultBookingPolicy(), nil, nopLogger{})
}

func TestExecute_EmptyDay_FullGrid(t *testing.T) {
	uc := newUseCase(&fakeVisitRepo{}, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDay, VisitType: domain.TypeSightseeing, PartySize: 10,
	})
	require.NoError(t, err)

	// 10:00..15:30 с шагом 15 минут: 23 кандидата
	assert.Len(t, resp.Starts, 23)
	assert.Equal(t, ts("10:00"), resp.Starts[0])
	assert.Equal(t, ts("15:30"), resp.Starts[len(resp.Starts)-1])
	assert.False(t, resp.DayBlocked)
	assert.Equal(t, domain.SightseeingDurationMinutes, resp.DurationMinutes)
}

func TestExecute_WorkshopGridEndsAtHalfPastTwo(t *testing.T) {
	uc := newUseCase(&fakeVisitRepo{}, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDay, VisitType: domain.TypeWorkshop, PartySize: 10,
	})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Starts)
	// 14:30: последний кандидат на сетке, для которого 80 минут
	// помещаются до закрытия в 16:00
	assert.Equal(t, ts("14:30"), resp.Starts[len(resp.Starts)-1])
}

func TestExecute_BlockedDay_EmptyList(t *testing.T) {
	blocks := &fakeBlockRepo{blocks: []*domain.DayBlock{
		{Scope: domain.BlockScopeDate, BlockDate: testDay},
	}}
	visits := &fakeVisitRepo{}
	uc := newUseCase(visits, blocks)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDay, VisitType: domain.TypeSightseeing, PartySize: 1,
	})
	require.NoError(t, err)

	assert.True(t, resp.DayBlocked)
	assert.Empty(t, resp.Starts)
}

func TestExecute_MonthBlock_EmptyList(t *testing.T) {
	blocks := &fakeBlockRepo{blocks: []*domain.DayBlock{
		{Scope: domain.BlockScopeMonth, BlockDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
	}}
	uc := newUseCase(&fakeVisitRepo{}, blocks)

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDay, VisitType: domain.TypeWorkshop, PartySize: 2,
	})
	require.NoError(t, err)
	assert.True(t, resp.DayBlocked)
	assert.Empty(t, resp.Starts)
}

func TestExecute_FullRoomHidesOverlappingStarts(t *testing.T) {
	// Зал занят полностью 10:00-10:30
	visits := &fakeVisitRepo{visits: []*domain.Visit{{
		VisitDate: testDay, StartTime: ts("10:00"),
		VisitType: domain.TypeSightseeing, DurationMinutes: 30,
		PartySize: 92, Status: domain.StatusConfirmed,
	}}}
	uc := newUseCase(visits, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDay, VisitType: domain.TypeSightseeing, PartySize: 1,
	})
	require.NoError(t, err)

	assert.NotContains(t, resp.Starts, ts("10:00"))
	assert.NotContains(t, resp.Starts, ts("10:15"))
	// Смежный интервал с 10:30 свободен: уход до прихода при равном времени
	assert.Contains(t, resp.Starts, ts("10:30"))
}

func TestExecute_CancelledVisitsDoNotOccupy(t *testing.T) {
	visits := &fakeVisitRepo{visits: []*domain.Visit{{
		VisitDate: testDay, StartTime: ts("10:00"),
		VisitType: domain.TypeSightseeing, DurationMinutes: 30,
		PartySize: 92, Status: domain.StatusCancelled,
	}}}
	uc := newUseCase(visits, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDay, VisitType: domain.TypeSightseeing, PartySize: 92,
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Starts, ts("10:00"))
}

func TestExecute_PartyLargerThanRoom_EmptyList(t *testing.T) {
	uc := newUseCase(&fakeVisitRepo{}, &fakeBlockRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Date: testDay, VisitType: domain.TypeSightseeing, PartySize: 93,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Starts)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeVisitRepo{}, &fakeBlockRepo{})

	cases := []struct {
		name string
		req  *Request
	}{
		{"zero date", &Request{VisitType: domain.TypeSightseeing, PartySize: 1}},
		{"bad type", &Request{Date: testDay, VisitType: domain.VisitType("banquet"), PartySize: 1}},
		{"zero party", &Request{Date: testDay, VisitType: domain.TypeSightseeing}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
