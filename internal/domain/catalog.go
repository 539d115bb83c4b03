package domain

// Catalog entities are owned by the shop-management side of the platform.
// This service only reads them: schedules for availability, names and prices
// for notifications and listings.

// Barber works at a barbershop and is booked by time slot
type Barber struct {
	ID           int64
	BarbershopID int64
	FullName     string
	WorkSchedule string // raw "HH:MM-HH:MM" string, parsed via ParseWorkSchedule
	IsActive     bool
}

// Barbershop groups barbers and services under one owner
type Barbershop struct {
	ID       int64
	OwnerID  int64
	Name     string
	IsActive bool
}

// Service is an offering of a barbershop, optional on a booking
type Service struct {
	ID              int64
	BarbershopID    int64
	Name            string
	Price           int64
	DurationMinutes int
	IsActive        bool
}
