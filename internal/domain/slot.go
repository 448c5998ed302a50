package domain

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// Slot is a predefined bookable date/time record. Bookings resolve against
// slots: a request for a date with no matching slot is rejected.
type Slot struct {
	ID            int64
	SlotDate      time.Time // date only
	StartTime     types.TimeString
	VisitType     VisitType
	PriceOverride *float64 // overrides the per-type base price when set
	CreatedAt     time.Time
}

// HasPriceOverride returns true if the slot defines its own price
func (s *Slot) HasPriceOverride() bool {
	return s.PriceOverride != nil
}

// Matches reports whether the slot is for the given date, time and type
func (s *Slot) Matches(date time.Time, start types.TimeString, visitType VisitType) bool {
	return sameDay(s.SlotDate, date) && s.StartTime == start && s.VisitType == visitType
}
