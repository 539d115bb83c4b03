package domain

// Slot granularity is fixed platform-wide. Variable slot length is a known
// limitation of the base design.
const SlotDurationMinutes = 30

// Default work window used when a barber's schedule string cannot be parsed
const (
	DefaultWorkStartHour = 9
	DefaultWorkEndHour   = 19
)

// Reminder scheduler settings
const (
	ReminderLeadLongMinutes  = 60
	ReminderLeadShortMinutes = 30
	ReminderToleranceMinutes = 1
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

const MaxNotesLength = 500

// SlotOccupyingStatuses are the statuses that keep a (barber, date, time) cell taken.
// Used when filtering bookings for availability checks.
var SlotOccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
