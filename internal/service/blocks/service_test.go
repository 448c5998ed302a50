package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glashaus-studio/GH-VisitService/internal/domain"
	blockRepo "github.com/glashaus-studio/GH-VisitService/internal/infra/storage/dayblock"
	"github.com/glashaus-studio/GH-VisitService/internal/service/blocks/models"
	"github.com/glashaus-studio/GH-VisitService/pkg/ptr"
)

type fakeBlockRepo struct {
	blocks []*domain.DayBlock
	nextID int64
}

func (r *fakeBlockRepo) Create(_ context.Context, block *domain.DayBlock) (*domain.DayBlock, error) {
	for _, b := range r.blocks {
		if b.Scope == block.Scope && b.BlockDate.Equal(block.BlockDate) {
			return nil, blockRepo.ErrDuplicateBlock
		}
	}
	r.nextID++
	block.ID = r.nextID
	block.CreatedAt = time.Now()
	r.blocks = append(r.blocks, block)
	return block, nil
}

func (r *fakeBlockRepo) GetRange(_ context.Context, from, to time.Time) ([]*domain.DayBlock, error) {
	var out []*domain.DayBlock
	for _, b := range r.blocks {
		if !b.BlockDate.Before(from) && !b.BlockDate.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBlockRepo) Delete(_ context.Context, id int64) error {
	for i, b := range r.blocks {
		if b.ID == id {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)
			return nil
		}
	}
	return blockRepo.ErrBlockNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_DateBlock(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateBlockRequest{
		Scope:  "date",
		Date:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Reason: ptr.Ptr("техническое обслуживание"),
	})
	require.NoError(t, err)
	assert.Equal(t, "date", resp.Scope)
	assert.Equal(t, "2026-09-14", resp.Date)
}

func TestCreate_MonthBlockNormalizedToFirst(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateBlockRequest{
		Scope: "month",
		Date:  time.Date(2026, 12, 19, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-12-01", resp.Date)
}

func TestCreate_Duplicate(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewService(repo, nopLogger{})
	req := &models.CreateBlockRequest{
		Scope: "date",
		Date:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	}

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	require.ErrorIs(t, err, ErrDuplicateBlock)
}

func TestCreate_InvalidScope(t *testing.T) {
	svc := NewService(&fakeBlockRepo{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateBlockRequest{
		Scope: "week",
		Date:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestList(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewService(repo, nopLogger{})

	for _, d := range []time.Time{
		time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
	} {
		_, err := svc.Create(context.Background(), &models.CreateBlockRequest{Scope: "date", Date: d})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), &models.ListBlocksRequest{
		From: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Blocks, 2)
}

func TestList_InvalidRange(t *testing.T) {
	svc := NewService(&fakeBlockRepo{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBlocksRequest{
		From: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), &models.CreateBlockRequest{
		Scope: "date",
		Date:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrBlockNotFound)
}
