package entity

// AppointmentFilter is a domain-level filter for listing appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	StartDate string // Format: YYYY-MM-DD, inclusive
	EndDate   string // Format: YYYY-MM-DD, inclusive
	Limit     int
	Offset    int
}
