package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	"github.com/glashaus-studio/GH-VisitService/internal/infra/storage/settings"
	"github.com/glashaus-studio/GH-VisitService/internal/infra/storage/slot"
	"github.com/glashaus-studio/GH-VisitService/pkg/ptr"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

type fakeVisitRepo struct {
	visits []*domain.Visit
	nextID int64
}

func (r *fakeVisitRepo) Create(_ context.Context, v *domain.Visit) (*domain.Visit, error) {
	r.nextID++
	created := *v
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.visits = append(r.visits, &created)
	return &created, nil
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

type fakeSlotRepo struct {
	slots []*domain.Slot
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	for _, s := range r.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, slot.ErrSlotNotFound
}

func (r *fakeSlotRepo) GetByDateTime(_ context.Context, date time.Time, start types.TimeString, visitType domain.VisitType) (*domain.Slot, error) {
	for _, s := range r.slots {
		if s.SlotDate.Equal(date) && s.StartTime == start && s.VisitType == visitType {
			return s, nil
		}
	}
	return nil, slot.ErrSlotNotFound
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

type fakeSettingsRepo struct {
	prices map[domain.VisitType]float64
}

func (r *fakeSettingsRepo) GetPrice(_ context.Context, visitType domain.VisitType) (float64, error) {
	p, ok := r.prices[visitType]
	if !ok {
		return 0, settings.ErrPriceNotFound
	}
	return p, nil
}

// directTxManager выполняет функцию без реальной транзакции
type directTxManager struct{}

func (m *directTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	confirmed []*domain.Visit
}

func (n *recordingNotifier) VisitConfirmed(v *domain.Visit) {
	n.confirmed = append(n.confirmed, v)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var testDay = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func ts(s string) types.TimeString { return types.TimeString(s) }

type fixture struct {
	uc       *UseCase
	visits   *fakeVisitRepo
	slots    *fakeSlotRepo
	blocks   *fakeBlockRepo
	settings *fakeSettingsRepo
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		visits: &fakeVisitRepo{},
		slots: &fakeSlotRepo{slots: []*domain.Slot{
			{ID: 1, SlotDate: testDay, StartTime: ts("10:00"), VisitType: domain.TypeWorkshop},
			{ID: 2, SlotDate: testDay, StartTime: ts("10:15"), VisitType: domain.TypeSightseeing},
			{ID: 3, SlotDate: testDay, StartTime: ts("10:30"), VisitType: domain.TypeSightseeing},
			{ID: 4, SlotDate: testDay, StartTime: ts("15:45"), VisitType: domain.TypeWorkshop},
			{ID: 5, SlotDate: testDay, StartTime: ts("11:00"), VisitType: domain.TypeSightseeing, PriceOverride: ptr.Ptr(99.5)},
		}},
		blocks:   &fakeBlockRepo{},
		settings: &fakeSettingsRepo{prices: map[domain.VisitType]float64{domain.TypeSightseeing: 12, domain.TypeWorkshop: 35}},
		notifier: &recordingNotifier{},
	}
	f.uc = NewUseCase(
		f.visits, f.slots, f.blocks, f.settings,
		&directTxManager{}, f.notifier,
		domain.DefaultBookingPolicy(), nil,
		fixedTime{t: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)},
		nopLogger{},
	)
	return f
}

func workshopRequest(party int) *Request {
	return &Request{
		Date:         testDay,
		StartTime:    ts("10:00"),
		VisitType:    domain.TypeWorkshop,
		PartySize:    party,
		CustomerName: "Anna Weber",
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), workshopRequest(20))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.WorkshopDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, 35.0, resp.Price)
	assert.Equal(t, ts("10:00"), resp.StartTime)
	require.Len(t, f.notifier.confirmed, 1)
	assert.Equal(t, resp.ID, f.notifier.confirmed[0].ID)
}

func TestExecute_BySlotID(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		SlotID:       ptr.Ptr(int64(2)),
		PartySize:    10,
		CustomerName: "Jonas Keller",
	})
	require.NoError(t, err)

	assert.Equal(t, ts("10:15"), resp.StartTime)
	assert.Equal(t, domain.TypeSightseeing, resp.VisitType)
	assert.Equal(t, domain.SightseeingDurationMinutes, resp.DurationMinutes)
}

func TestExecute_NoSlotDefined(t *testing.T) {
	f := newFixture(t)

	req := workshopRequest(10)
	req.StartTime = ts("10:05") // слота с таким временем нет

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrNoSlotDefined)
	assert.Empty(t, f.visits.visits)
}

func TestExecute_DayBlocked(t *testing.T) {
	f := newFixture(t)
	f.blocks.blocks = append(f.blocks.blocks, &domain.DayBlock{Scope: domain.BlockScopeDate, BlockDate: testDay})

	_, err := f.uc.Execute(context.Background(), workshopRequest(5))
	require.ErrorIs(t, err, ErrDayBlocked)
	assert.Empty(t, f.notifier.confirmed)
}

func TestExecute_MonthBlockCoversDay(t *testing.T) {
	f := newFixture(t)
	firstOfMonth := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	f.blocks.blocks = append(f.blocks.blocks, &domain.DayBlock{Scope: domain.BlockScopeMonth, BlockDate: firstOfMonth})

	_, err := f.uc.Execute(context.Background(), workshopRequest(5))
	require.ErrorIs(t, err, ErrDayBlocked)
}

func TestExecute_CapacityExceeded_OverlapAtQuarterPast(t *testing.T) {
	f := newFixture(t)

	// Занимаем зал: 80 человек на мастер-класс 10:00-11:20
	_, err := f.uc.Execute(context.Background(), workshopRequest(80))
	require.NoError(t, err)

	// 15 человек на 10:15 пересекаются с мастер-классом: 95 > 92
	req := &Request{
		Date:         testDay,
		StartTime:    ts("10:15"),
		VisitType:    domain.TypeSightseeing,
		PartySize:    15,
		CustomerName: "Mia Fischer",
	}
	_, err = f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestExecute_AdjacentIntervalsDoNotConflict(t *testing.T) {
	f := newFixture(t)

	// Экскурсия 10:00-10:30 с полной загрузкой не мешает экскурсии с 10:30
	f.slots.slots = append(f.slots.slots,
		&domain.Slot{ID: 10, SlotDate: testDay, StartTime: ts("10:00"), VisitType: domain.TypeSightseeing})

	_, err := f.uc.Execute(context.Background(), &Request{
		SlotID: ptr.Ptr(int64(10)), PartySize: 92, CustomerName: "Gruppe A",
	})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{
		Date: testDay, StartTime: ts("10:30"), VisitType: domain.TypeSightseeing,
		PartySize: 92, CustomerName: "Gruppe B",
	})
	require.NoError(t, err)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	f := newFixture(t)

	// Слот 15:45 существует, но мастер-класс на 80 минут кончается в 17:05
	_, err := f.uc.Execute(context.Background(), &Request{
		SlotID: ptr.Ptr(int64(4)), PartySize: 5, CustomerName: "Lena Brandt",
	})
	require.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_PastDateRejected(t *testing.T) {
	f := newFixture(t)
	past := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	f.slots.slots = append(f.slots.slots,
		&domain.Slot{ID: 20, SlotDate: past, StartTime: ts("10:00"), VisitType: domain.TypeSightseeing})

	_, err := f.uc.Execute(context.Background(), &Request{
		SlotID: ptr.Ptr(int64(20)), PartySize: 4, CustomerName: "Tom Berger",
	})
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_AdminOverride_SkipsChecks(t *testing.T) {
	f := newFixture(t)
	f.blocks.blocks = append(f.blocks.blocks, &domain.DayBlock{Scope: domain.BlockScopeDate, BlockDate: testDay})

	req := workshopRequest(150) // превышает вместимость и день заблокирован
	req.AdminOverride = true

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.Len(t, f.notifier.confirmed, 1)
}

func TestExecute_SlotPriceOverride(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		SlotID: ptr.Ptr(int64(5)), PartySize: 3, CustomerName: "Nora Vogt",
	})
	require.NoError(t, err)
	assert.Equal(t, 99.5, resp.Price)
}

func TestExecute_MissingBasePriceDefaultsToZero(t *testing.T) {
	f := newFixture(t)
	delete(f.settings.prices, domain.TypeWorkshop)

	resp, err := f.uc.Execute(context.Background(), workshopRequest(10))
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.Price)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	cases := []struct {
		name string
		mod  func(r *Request)
	}{
		{"zero party", func(r *Request) { r.PartySize = 0 }},
		{"negative party", func(r *Request) { r.PartySize = -3 }},
		{"huge party", func(r *Request) { r.PartySize = domain.MaxPartySize + 1 }},
		{"no customer name", func(r *Request) { r.CustomerName = "" }},
		{"bad visit type", func(r *Request) { r.VisitType = domain.VisitType("banquet") }},
		{"bad time format", func(r *Request) { r.StartTime = ts("25:99") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := workshopRequest(10)
			tc.mod(req)
			_, err := f.uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestValidate_ReportsRejectionWithoutWriting(t *testing.T) {
	f := newFixture(t)

	// Заполняем день до упора
	_, err := f.uc.Execute(context.Background(), workshopRequest(92))
	require.NoError(t, err)

	res, err := f.uc.Validate(context.Background(), &Request{
		Date: testDay, StartTime: ts("10:15"), VisitType: domain.TypeSightseeing,
		PartySize: 1, CustomerName: "Check Only",
	})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Reason, "capacity")
	assert.Len(t, f.visits.visits, 1) // ничего не записано
}

func TestValidate_OK(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Validate(context.Background(), workshopRequest(10))
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Reason)
}
