package domain

import "github.com/glashaus-studio/GH-VisitService/pkg/types"

// BookingPolicy holds the capacity and operating-window configuration.
// It is passed explicitly into the capacity computations; the algorithms
// themselves carry no ambient constants.
type BookingPolicy struct {
	RoomCapacity           int
	OpeningTime            types.TimeString
	ClosingTime            types.TimeString
	SlotGranularityMinutes int
	Durations              map[VisitType]int // minutes per visit type
}

// DefaultBookingPolicy returns the policy with deployment defaults applied
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		RoomCapacity:           DefaultRoomCapacity,
		OpeningTime:            types.TimeString(DefaultOpeningTime),
		ClosingTime:            types.TimeString(DefaultClosingTime),
		SlotGranularityMinutes: DefaultSlotGranularityMinutes,
		Durations: map[VisitType]int{
			TypeSightseeing: SightseeingDurationMinutes,
			TypeWorkshop:    WorkshopDurationMinutes,
		},
	}
}

// DurationFor returns the visit duration in minutes for the given type,
// falling back to the built-in defaults when the policy map has no entry.
func (p BookingPolicy) DurationFor(t VisitType) int {
	if d, ok := p.Durations[t]; ok && d > 0 {
		return d
	}
	switch t {
	case TypeWorkshop:
		return WorkshopDurationMinutes
	default:
		return SightseeingDurationMinutes
	}
}

// WithinOperatingWindow reports whether a visit starting at start and lasting
// duration minutes fits the operating hours: start >= opening and
// start+duration <= closing.
func (p BookingPolicy) WithinOperatingWindow(start types.TimeString, durationMinutes int) bool {
	if start.IsBefore(p.OpeningTime) {
		return false
	}
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return false
	}
	return !end.IsAfter(p.ClosingTime)
}
