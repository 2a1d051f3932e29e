package request

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"eventdash/internal/domain"
)

// datetime-local inputs arrive without a zone, with or without seconds.
var formDateLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

var purchasePriceFactor = decimal.NewFromFloat(0.9)

// BuildCreateRequest assembles the composite orchestration request for a
// new event: base fields, the venue branch (existing id or create-new with
// full address), the optional organization branch, and the ticket create
// list. Returns *domain.ValidationError on the first failed section.
func BuildCreateRequest(form CreateEventForm, organizerID string) (domain.CreateEventOrchestration, error) {
	var zero domain.CreateEventOrchestration

	if form.Title == "" || form.Description == "" || form.EventDate == "" ||
		form.RegistrationOpenDate == "" || form.RegistrationCloseDate == "" {
		return zero, domain.NewValidationError(
			"Missing required fields",
			"Title, description, and all dates are required",
		)
	}

	eventDate, err := normalizeFormDate(form.EventDate)
	if err != nil {
		return zero, err
	}
	regOpen, err := normalizeFormDate(form.RegistrationOpenDate)
	if err != nil {
		return zero, err
	}
	regClose, err := normalizeFormDate(form.RegistrationCloseDate)
	if err != nil {
		return zero, err
	}

	req := domain.CreateEventOrchestration{
		Title:                 form.Title,
		Description:           form.Description,
		RegistrationOpenDate:  regOpen,
		RegistrationCloseDate: regClose,
		EventDate:             eventDate,
		OrganizerID:           organizerID,
	}

	if form.VenueID != "" {
		req.VenueID = form.VenueID
	} else {
		if form.VenueName == "" || form.VenueCapacity == nil {
			return zero, domain.NewValidationError(
				"Venue details are required when creating a new venue",
				"Venue name and capacity are required",
			)
		}
		if form.VenueStreet == "" || form.VenueCity == "" || form.VenueState == "" ||
			form.VenueCountry == "" || form.VenuePostalCode == "" {
			return zero, domain.NewValidationError(
				"Venue address is required when creating a new venue",
				"Street, city, state, country, and postal code are required",
			)
		}

		req.Venue = &domain.VenueBranch{
			CreateNew: true,
			VenueData: &domain.CreateVenueInput{
				Name:        form.VenueName,
				Description: form.VenueDescription,
				Capacity:    *form.VenueCapacity,
				Status:      domain.VenueStatusAvailable,
			},
		}
		req.VenueAddress = &domain.AddressInput{
			Unit:       form.VenueUnit,
			Street:     form.VenueStreet,
			City:       form.VenueCity,
			State:      form.VenueState,
			Country:    form.VenueCountry,
			PostalCode: form.VenuePostalCode,
		}
	}

	if form.OrganizationID != "" {
		req.OrganizationID = form.OrganizationID
	} else if form.OrgName != "" && form.OrgType != "" {
		if !domain.ValidOrganizationType(form.OrgType) {
			return zero, domain.NewValidationError(
				"Invalid organization type",
				fmt.Sprintf("Organization type must be one of: %s. Received: %q",
					joinOrganizationTypes(), form.OrgType),
			)
		}

		req.Organization = &domain.OrganizationBranch{
			CreateNew: true,
			OrganizationData: &domain.CreateOrganizationInput{
				Name:        form.OrgName,
				Description: form.OrgDescription,
				Type:        domain.OrganizationType(form.OrgType),
				Status:      domain.OrganizationStatusActive,
			},
		}
	}
	// No organization fields at all: the event is simply created without one.

	if tickets := buildTicketCreates(form.Tickets); len(tickets) > 0 {
		req.Tickets = tickets
	}

	return req, nil
}

// BuildUpdateRequest assembles a composite partial update: only fields the
// form supplied end up in the request.
func BuildUpdateRequest(form UpdateEventForm) (domain.UpdateEventOrchestration, error) {
	var zero domain.UpdateEventOrchestration
	var req domain.UpdateEventOrchestration

	if form.Title != "" {
		req.Title = &form.Title
	}
	if form.Description != "" {
		req.Description = &form.Description
	}
	if form.EventDate != "" {
		normalized, err := normalizeFormDate(form.EventDate)
		if err != nil {
			return zero, err
		}
		req.EventDate = &normalized
	}
	if form.RegistrationOpenDate != "" {
		normalized, err := normalizeFormDate(form.RegistrationOpenDate)
		if err != nil {
			return zero, err
		}
		req.RegistrationOpenDate = &normalized
	}
	if form.RegistrationCloseDate != "" {
		normalized, err := normalizeFormDate(form.RegistrationCloseDate)
		if err != nil {
			return zero, err
		}
		req.RegistrationCloseDate = &normalized
	}
	if form.Status != "" {
		status := domain.EventStatus(form.Status)
		req.Status = &status
	}

	if form.UpdateVenue {
		venueData := &domain.UpdateVenueInput{}
		if form.VenueName != "" {
			venueData.Name = &form.VenueName
		}
		if form.VenueDescription != "" {
			venueData.Description = &form.VenueDescription
		}
		if form.VenueCapacity != nil {
			venueData.Capacity = form.VenueCapacity
		}
		if form.VenueStatus != "" {
			status := domain.VenueStatus(form.VenueStatus)
			venueData.Status = &status
		}
		req.Venue = &domain.VenueUpdateBranch{Update: true, VenueData: venueData}
	}

	ops := domain.TicketOperations{
		Create: buildTicketCreates(form.NewTickets),
		Update: buildTicketPatches(form.UpdateTickets),
		Delete: form.DeleteTicketIDs,
	}
	if !ops.Empty() {
		req.Tickets = &ops
	}

	return req, nil
}

func buildTicketCreates(forms []TicketForm) []domain.TicketCreate {
	var tickets []domain.TicketCreate
	for _, t := range forms {
		if !t.Valid() {
			continue
		}

		purchasePrice := t.PurchasePrice
		if !t.HasPurchasePrice {
			purchasePrice = t.Price.Mul(purchasePriceFactor)
		}

		tickets = append(tickets, domain.TicketCreate{
			Name:              t.Name,
			Description:       t.Description,
			Price:             t.Price.InexactFloat64(),
			PurchasePrice:     purchasePrice.InexactFloat64(),
			Quantity:          t.Quantity,
			AvailableQuantity: t.Quantity,
			PromoCode:         t.PromoCode,
		})
	}

	return tickets
}

func buildTicketPatches(forms []TicketPatchForm) []domain.TicketPatch {
	var patches []domain.TicketPatch
	for _, p := range forms {
		if p.ID == "" || p.Empty() {
			continue
		}

		data := domain.TicketPatchData{
			Name:              p.Name,
			Description:       p.Description,
			Quantity:          p.Quantity,
			AvailableQuantity: p.AvailableQuantity,
			PromoCode:         p.PromoCode,
		}
		if p.Price != nil {
			price := p.Price.InexactFloat64()
			data.Price = &price
		}
		if p.PurchasePrice != nil {
			purchase := p.PurchasePrice.InexactFloat64()
			data.PurchasePrice = &purchase
		}

		patches = append(patches, domain.TicketPatch{ID: p.ID, Data: data})
	}

	return patches
}

// normalizeFormDate converts a datetime-local value to RFC 3339 UTC. An
// unparseable date rejects the whole submission; nothing is sent to the
// backend.
func normalizeFormDate(raw string) (string, error) {
	for _, layout := range formDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}

	return "", domain.NewValidationError(
		"Invalid date format",
		fmt.Sprintf("%q is not a valid date", raw),
	)
}

func joinOrganizationTypes() string {
	parts := make([]string, len(domain.OrganizationTypes))
	for i, t := range domain.OrganizationTypes {
		parts[i] = string(t)
	}

	return strings.Join(parts, ", ")
}
