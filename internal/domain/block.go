package domain

import "time"

// BlockScope granularity of a blackout record
type BlockScope string

const (
	// BlockScopeDate закрывает один конкретный день
	BlockScopeDate BlockScope = "date"
	// BlockScopeMonth закрывает весь календарный месяц (BlockDate хранит первое число месяца)
	BlockScopeMonth BlockScope = "month"
)

// IsValid returns true for a known block scope
func (s BlockScope) IsValid() bool {
	return s == BlockScopeDate || s == BlockScopeMonth
}

// DayBlock is an administrative blackout: while present, the covered day
// cannot be booked regardless of remaining capacity.
type DayBlock struct {
	ID        int64
	Scope     BlockScope
	BlockDate time.Time // date for scope=date, first of month for scope=month
	Reason    *string
	CreatedAt time.Time
}

// Covers reports whether the block makes the given day unbookable
func (b *DayBlock) Covers(day time.Time) bool {
	switch b.Scope {
	case BlockScopeDate:
		return sameDay(b.BlockDate, day)
	case BlockScopeMonth:
		return b.BlockDate.Year() == day.Year() && b.BlockDate.Month() == day.Month()
	default:
		return false
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// AnyBlockCovers reports whether any of the blocks covers the day
func AnyBlockCovers(blocks []*DayBlock, day time.Time) bool {
	for _, b := range blocks {
		if b.Covers(day) {
			return true
		}
	}
	return false
}
