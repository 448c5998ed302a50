package domain

import (
	"time"

	"github.com/glashaus-studio/GH-VisitService/pkg/types"
)

// VisitStatus represents the status of a visit booking
type VisitStatus string

const (
	StatusConfirmed VisitStatus = "confirmed"
	StatusCancelled VisitStatus = "cancelled"
)

// VisitType represents the kind of visit the venue offers
type VisitType string

const (
	TypeSightseeing VisitType = "sightseeing"
	TypeWorkshop    VisitType = "workshop"
)

// IsValid returns true for a known visit type
func (t VisitType) IsValid() bool {
	return t == TypeSightseeing || t == TypeWorkshop
}

// Visit represents a booked visit occupying part of the room capacity
type Visit struct {
	ID              int64
	VisitDate       time.Time // day the visit takes place, date only
	StartTime       types.TimeString
	VisitType       VisitType
	DurationMinutes int
	PartySize       int // people attending; occupies capacity for the whole interval
	Status          VisitStatus
	Price           float64

	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the visit still counts against room capacity
func (v *Visit) IsActive() bool {
	return v.Status != StatusCancelled
}

// CanBeCancelled returns true if the visit can be cancelled
func (v *Visit) CanBeCancelled() bool {
	return v.Status == StatusConfirmed
}

// IsCancelled returns true if the visit has been cancelled
func (v *Visit) IsCancelled() bool {
	return v.Status == StatusCancelled
}

// EndTime returns the exclusive end of the visit's interval
func (v *Visit) EndTime() (types.TimeString, error) {
	return v.StartTime.AddMinutes(v.DurationMinutes)
}

// DayVisitsFilter фильтр для получения визитов на день
type DayVisitsFilter struct {
	Day              time.Time // Обязательный параметр, только дата
	IncludeCancelled bool      // Включать ли отменённые визиты
	ExcludeVisitID   *int64    // Исключить конкретный визит (для пересчёта при изменении)
	VisitType        *VisitType
}
