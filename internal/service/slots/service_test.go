package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	slotRepo "github.com/glashaus-studio/GH-VisitService/internal/infra/storage/slot"
	"github.com/glashaus-studio/GH-VisitService/internal/service/slots/models"
	"github.com/glashaus-studio/GH-VisitService/pkg/ptr"
	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

type fakeSlotRepo struct {
	slots  []*domain.Slot
	nextID int64
}

func (r *fakeSlotRepo) Create(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	for _, s := range r.slots {
		if s.SlotDate.Equal(slot.SlotDate) && s.StartTime == slot.StartTime && s.VisitType == slot.VisitType {
			return nil, slotRepo.ErrDuplicateSlot
		}
	}
	r.nextID++
	slot.ID = r.nextID
	slot.CreatedAt = time.Now()
	r.slots = append(r.slots, slot)
	return slot, nil
}

func (r *fakeSlotRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Slot, error) {
	var out []*domain.Slot
	for _, s := range r.slots {
		if s.SlotDate.Equal(date) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) Delete(_ context.Context, id int64) error {
	for i, s := range r.slots {
		if s.ID == id {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return nil
		}
	}
	return slotRepo.ErrSlotNotFound
}

type fakeSettingsRepo struct {
	prices map[domain.VisitType]float64
}

func (r *fakeSettingsRepo) GetPrice(_ context.Context, visitType domain.VisitType) (float64, error) {
	return r.prices[visitType], nil
}

func (r *fakeSettingsRepo) SetPrice(_ context.Context, visitType domain.VisitType, price float64) error {
	r.prices[visitType] = price
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDay = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func ts(s string) types.TimeString { return types.TimeString(s) }

func newService(repo *fakeSlotRepo, settings *fakeSettingsRepo) *Service {
	if settings == nil {
		settings = &fakeSettingsRepo{prices: map[domain.VisitType]float64{}}
	}
	return NewService(repo, settings, domain.DefaultBookingPolicy(), nopLogger{})
}

func TestCreate(t *testing.T) {
	svc := newService(&fakeSlotRepo{}, nil)

	resp, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Date:          testDay,
		StartTime:     ts("10:15"),
		VisitType:     domain.TypeSightseeing,
		PriceOverride: ptr.Ptr(25.0),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-14", resp.Date)
	assert.Equal(t, "10:15", resp.StartTime)
	require.NotNil(t, resp.PriceOverride)
	assert.Equal(t, 25.0, *resp.PriceOverride)
}

func TestCreate_Duplicate(t *testing.T) {
	svc := newService(&fakeSlotRepo{}, nil)
	req := &models.CreateSlotRequest{
		Date: testDay, StartTime: ts("10:15"), VisitType: domain.TypeSightseeing,
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	require.ErrorIs(t, err, ErrDuplicateSlot)
}

func TestCreate_OutsideOperatingWindow(t *testing.T) {
	svc := newService(&fakeSlotRepo{}, nil)

	// Мастер-класс с 15:45 кончался бы в 17:05, после закрытия
	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Date: testDay, StartTime: ts("15:45"), VisitType: domain.TypeWorkshop,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreate_OffGridStartAllowed(t *testing.T) {
	svc := newService(&fakeSlotRepo{}, nil)

	// 14:40 вне 15-минутной сетки перечислителя, но мастер-класс
	// помещается до закрытия, слот допустим
	_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Date: testDay, StartTime: ts("14:40"), VisitType: domain.TypeWorkshop,
	})
	require.NoError(t, err)
}

func TestListByDate(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := newService(repo, nil)

	for _, start := range []string{"10:00", "11:00"} {
		_, err := svc.Create(context.Background(), &models.CreateSlotRequest{
			Date: testDay, StartTime: ts(start), VisitType: domain.TypeSightseeing,
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListByDate(context.Background(), testDay)
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 2)
}

func TestDelete(t *testing.T) {
	repo := &fakeSlotRepo{}
	svc := newService(repo, nil)

	created, err := svc.Create(context.Background(), &models.CreateSlotRequest{
		Date: testDay, StartTime: ts("10:00"), VisitType: domain.TypeSightseeing,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrSlotNotFound)
}

func TestSetPrice(t *testing.T) {
	settings := &fakeSettingsRepo{prices: map[domain.VisitType]float64{}}
	svc := newService(&fakeSlotRepo{}, settings)

	require.NoError(t, svc.SetPrice(context.Background(), &models.SetPriceRequest{
		VisitType: domain.TypeWorkshop, BasePrice: 35,
	}))
	assert.Equal(t, 35.0, settings.prices[domain.TypeWorkshop])

	err := svc.SetPrice(context.Background(), &models.SetPriceRequest{
		VisitType: domain.TypeWorkshop, BasePrice: -1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
