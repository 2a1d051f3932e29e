package domain

// Composite request/response shapes for the backend orchestration endpoint,
// which creates or updates event + venue + organization + tickets as one
// logical operation.

type VenueBranch struct {
	CreateNew bool              `json:"createNew"`
	VenueData *CreateVenueInput `json:"venueData,omitempty"`
}

type VenueUpdateBranch struct {
	Update    bool              `json:"update"`
	VenueData *UpdateVenueInput `json:"venueData,omitempty"`
}

type OrganizationBranch struct {
	CreateNew        bool                     `json:"createNew"`
	OrganizationData *CreateOrganizationInput `json:"organizationData,omitempty"`
}

type CreateEventOrchestration struct {
	Title                 string              `json:"title"`
	Description           string              `json:"description"`
	RegistrationOpenDate  string              `json:"registrationOpenDate"`
	RegistrationCloseDate string              `json:"registrationCloseDate"`
	EventDate             string              `json:"eventDate"`
	OrganizerID           string              `json:"organizerId"`
	VenueID               string              `json:"venueId,omitempty"`
	OrganizationID        string              `json:"organizationId,omitempty"`
	Venue                 *VenueBranch        `json:"venue,omitempty"`
	VenueAddress          *AddressInput       `json:"venueAddress,omitempty"`
	Organization          *OrganizationBranch `json:"organization,omitempty"`
	Tickets               []TicketCreate      `json:"tickets,omitempty"`
}

// TicketOperations bundles the three independent ticket sub-operations of a
// composite update. All three may be present at once.
type TicketOperations struct {
	Create []TicketCreate `json:"create,omitempty"`
	Update []TicketPatch  `json:"update,omitempty"`
	Delete []string       `json:"delete,omitempty"`
}

func (t TicketOperations) Empty() bool {
	return len(t.Create) == 0 && len(t.Update) == 0 && len(t.Delete) == 0
}

// UpdateEventOrchestration has partial-update semantics: only fields the
// form supplied are serialized.
type UpdateEventOrchestration struct {
	Title                 *string            `json:"title,omitempty"`
	Description           *string            `json:"description,omitempty"`
	RegistrationOpenDate  *string            `json:"registrationOpenDate,omitempty"`
	RegistrationCloseDate *string            `json:"registrationCloseDate,omitempty"`
	EventDate             *string            `json:"eventDate,omitempty"`
	VenueID               *string            `json:"venueId,omitempty"`
	OrganizationID        *string            `json:"organizationId,omitempty"`
	Status                *EventStatus       `json:"status,omitempty"`
	Venue                 *VenueUpdateBranch `json:"venue,omitempty"`
	Tickets               *TicketOperations  `json:"tickets,omitempty"`
}

// EventDetails is the composite bundle returned by the orchestration
// details and create endpoints.
type EventDetails struct {
	Event         Event         `json:"event"`
	Venue         *Venue        `json:"venue,omitempty"`
	Address       *Address      `json:"address,omitempty"`
	Organization  *Organization `json:"organization,omitempty"`
	Tickets       []Ticket      `json:"tickets,omitempty"`
	AttendeeCount int           `json:"attendeeCount,omitempty"`
	Message       string        `json:"message,omitempty"`
}

type UpdateEventOrchestrationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
