package domain

type AttendeeStatus string

const (
	AttendeeStatusRegistered AttendeeStatus = "registered"
	AttendeeStatusCheckedIn  AttendeeStatus = "checked_in"
	AttendeeStatusCancelled  AttendeeStatus = "cancelled"
	AttendeeStatusNoShow     AttendeeStatus = "no_show"
	AttendeeStatusCompleted  AttendeeStatus = "completed"
)

type EventAttendee struct {
	ID               string         `json:"id"`
	EventID          string         `json:"eventId"`
	UserID           string         `json:"userId"`
	RegistrationDate string         `json:"registrationDate"`
	Status           AttendeeStatus `json:"status"`
	CreatedAt        string         `json:"createdAt"`
	UpdatedAt        string         `json:"updatedAt"`
}

type CreateEventAttendeeInput struct {
	EventID string         `json:"eventId"`
	UserID  string         `json:"userId"`
	Status  AttendeeStatus `json:"status,omitempty"`
}

type UpdateEventAttendeeInput struct {
	Status AttendeeStatus `json:"status,omitempty"`
}

// Registered reports whether the attendee record still counts as an active
// registration for display purposes.
func (a EventAttendee) Registered() bool {
	return a.Status != AttendeeStatusCancelled
}
