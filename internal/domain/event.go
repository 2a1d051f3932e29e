package domain

import "encoding/json"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPending   EventStatus = "pending"
	EventStatusPublished EventStatus = "published"
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusOpen      EventStatus = "open"
	EventStatusClosed    EventStatus = "closed"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// Event mirrors the backend entity. Dates stay RFC 3339 strings on the wire;
// registrationOpenDate <= registrationCloseDate <= eventDate is enforced by
// the backend, not here.
type Event struct {
	ID                    string      `json:"id"`
	Title                 string      `json:"title"`
	Description           string      `json:"description"`
	RegistrationOpenDate  string      `json:"registrationOpenDate"`
	RegistrationCloseDate string      `json:"registrationCloseDate"`
	EventDate             string      `json:"eventDate"`
	VenueID               string      `json:"venueId"`
	OrganizerID           string      `json:"organizerId"`
	OrganizationID        *string     `json:"organizationId"`
	Status                EventStatus `json:"status"`
	CreatedAt             string      `json:"createdAt"`
	UpdatedAt             string      `json:"updatedAt"`
}

// RelationName tolerates the two shapes the list endpoints use for related
// entities: an embedded object ({"name": "..."}), or a bare name string.
type RelationName string

func (r *RelationName) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = RelationName(s)
		return nil
	}

	var rel struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(b, &rel); err != nil {
		return err
	}
	*r = RelationName(rel.Name)

	return nil
}

// EventSummary is the list-endpoint shape: one event with its venue and
// organization relations reduced to names.
type EventSummary struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	EventDate    string       `json:"eventDate"`
	Date         string       `json:"date"`
	Venue        RelationName `json:"venue"`
	Organization RelationName `json:"organization"`
	Status       EventStatus  `json:"status"`
}

// When reports the event date, whichever field the endpoint used.
func (e EventSummary) When() string {
	if e.EventDate != "" {
		return e.EventDate
	}
	return e.Date
}
