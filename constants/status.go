package constants

// User status
const (
	UserStatusInactive = 0
	UserStatusActive   = 1
)

// User role
const (
	RoleCustomer  = 0
	RoleAdmin     = 1
	RoleOrganizer = 2
)

// Trip status
const (
	TripStatusDraft     = 0
	TripStatusPublished = 1
	TripStatusFull      = 2
	TripStatusCompleted = 3
	TripStatusHidden    = 4
)

// Booking status
const (
	BookingStatusPending   = 0
	BookingStatusConfirmed = 1
	BookingStatusCompleted = 2
	BookingStatusCancelled = 3
)
