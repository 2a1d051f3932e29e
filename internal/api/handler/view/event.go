package view

import (
	"strings"

	"eventdash/internal/domain"
)

// Fallback labels for detail/list rows whose relations are missing.
const (
	UnknownVenue        = "Unknown Venue"
	UnknownOrganization = "Unknown Organization"
)

// EventRow is one line of an event list page.
type EventRow struct {
	ID           string
	Title        string
	Description  string
	Date         string
	Venue        string
	Organization string
	Status       domain.EventStatus
	Badge        string
}

func EventRows(events []domain.EventSummary) []EventRow {
	rows := make([]EventRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, EventRow{
			ID:           e.ID,
			Title:        e.Title,
			Description:  e.Description,
			Date:         FormatDate(e.When()),
			Venue:        relationOr(e.Venue, UnknownVenue),
			Organization: relationOr(e.Organization, UnknownOrganization),
			Status:       e.Status,
			Badge:        EventBadge(e.Status),
		})
	}
	return rows
}

func relationOr(name domain.RelationName, fallback string) string {
	if name == "" {
		return fallback
	}
	return string(name)
}

// TicketView carries a ticket with display-ready prices.
type TicketView struct {
	ID                string
	Name              string
	Description       string
	Price             string
	PurchasePrice     string
	Quantity          int
	AvailableQuantity int
	PromoCode         string
}

// EventDetail is the flattened composite bundle a detail or edit page
// renders from.
type EventDetail struct {
	ID                    string
	Title                 string
	Description           string
	EventDate             string
	RegistrationOpenDate  string
	RegistrationCloseDate string
	// Input* carry the same dates as datetime-local values for edit forms.
	InputEventDate             string
	InputRegistrationOpenDate  string
	InputRegistrationCloseDate string
	Status                     domain.EventStatus
	Badge                      string
	VenueID                    string
	VenueName                  string
	VenueCapacity              int
	VenueStatus                domain.VenueStatus
	VenueAddress               string
	OrganizationID             string
	OrganizationName           string
	OrganizationType           domain.OrganizationType
	Tickets                    []TicketView
	AttendeeCount              int
}

// FlattenEventDetails reduces the orchestration details bundle to a flat
// page model. Missing relations fall back to the Unknown labels.
func FlattenEventDetails(d domain.EventDetails) EventDetail {
	out := EventDetail{
		ID:                         d.Event.ID,
		Title:                      d.Event.Title,
		Description:                d.Event.Description,
		EventDate:                  FormatDate(d.Event.EventDate),
		RegistrationOpenDate:       FormatDate(d.Event.RegistrationOpenDate),
		RegistrationCloseDate:      FormatDate(d.Event.RegistrationCloseDate),
		InputEventDate:             FormatInputDate(d.Event.EventDate),
		InputRegistrationOpenDate:  FormatInputDate(d.Event.RegistrationOpenDate),
		InputRegistrationCloseDate: FormatInputDate(d.Event.RegistrationCloseDate),
		Status:                     d.Event.Status,
		Badge:                      EventBadge(d.Event.Status),
		VenueName:                  UnknownVenue,
		OrganizationName:           UnknownOrganization,
		AttendeeCount:              d.AttendeeCount,
	}

	if d.Venue != nil {
		out.VenueID = d.Venue.ID
		out.VenueName = d.Venue.Name
		out.VenueCapacity = d.Venue.Capacity
		out.VenueStatus = d.Venue.Status
	}
	if d.Address != nil {
		out.VenueAddress = FormatAddress(*d.Address)
	}
	if d.Organization != nil {
		out.OrganizationID = d.Organization.ID
		out.OrganizationName = d.Organization.Name
		out.OrganizationType = d.Organization.Type
	}

	out.Tickets = make([]TicketView, 0, len(d.Tickets))
	for _, t := range d.Tickets {
		out.Tickets = append(out.Tickets, TicketView{
			ID:                t.ID,
			Name:              t.Name,
			Description:       t.Description,
			Price:             FormatPrice(t.Price),
			PurchasePrice:     FormatPrice(t.PurchasePrice),
			Quantity:          t.Quantity,
			AvailableQuantity: t.AvailableQuantity,
			PromoCode:         t.PromoCode,
		})
	}

	return out
}

// FormatAddress joins the populated address parts into one display line.
func FormatAddress(a domain.Address) string {
	parts := make([]string, 0, 6)
	if a.Unit != nil && *a.Unit != "" {
		parts = append(parts, *a.Unit)
	}
	for _, p := range []string{a.Street, a.City, a.State, a.Country, a.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
