package domain

// Default booking policy values (current deployment).
// Все значения переопределяются через config.toml, алгоритмы получают их
// только через BookingPolicy.
const (
	DefaultRoomCapacity           = 92
	DefaultOpeningTime            = "10:00"
	DefaultClosingTime            = "16:00"
	DefaultSlotGranularityMinutes = 15

	SightseeingDurationMinutes = 30
	WorkshopDurationMinutes    = 80
)

// Business validation constants
const (
	MinPartySize = 1
	MaxPartySize = 200 // sanity bound on input, capacity check is the real limit

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// VisitTypes список всех поддерживаемых типов визитов
var VisitTypes = []VisitType{
	TypeSightseeing,
	TypeWorkshop,
}
