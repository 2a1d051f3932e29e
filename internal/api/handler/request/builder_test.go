package request

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdash/internal/domain"
)

func validCreateForm() CreateEventForm {
	return CreateEventForm{
		Title:                 "Launch Party",
		Description:           "Annual launch",
		EventDate:             "2026-09-20T18:00",
		RegistrationOpenDate:  "2026-09-01T09:00",
		RegistrationCloseDate: "2026-09-19T17:00",
		VenueID:               "venue-1",
	}
}

func localToUTC(t *testing.T, raw string) string {
	t.Helper()

	parsed, err := time.ParseInLocation("2006-01-02T15:04", raw, time.Local)
	require.NoError(t, err)
	return parsed.UTC().Format(time.RFC3339)
}

func TestBuildCreateRequest_MissingRequiredFields(t *testing.T) {
	form := validCreateForm()
	form.Description = ""

	_, err := BuildCreateRequest(form, "user-1")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Missing required fields", verr.Message)
	assert.Contains(t, verr.Details, "Title, description, and all dates are required")
}

func TestBuildCreateRequest_InvalidDateRejected(t *testing.T) {
	form := validCreateForm()
	form.EventDate = "next tuesday"

	_, err := BuildCreateRequest(form, "user-1")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid date format", verr.Message)
}

func TestBuildCreateRequest_NormalizesDatesToUTC(t *testing.T) {
	form := validCreateForm()

	req, err := BuildCreateRequest(form, "user-1")

	require.NoError(t, err)
	assert.Equal(t, localToUTC(t, "2026-09-20T18:00"), req.EventDate)
	assert.Equal(t, localToUTC(t, "2026-09-01T09:00"), req.RegistrationOpenDate)
	assert.Equal(t, localToUTC(t, "2026-09-19T17:00"), req.RegistrationCloseDate)
	assert.Equal(t, "user-1", req.OrganizerID)
	assert.Equal(t, "venue-1", req.VenueID)
	assert.Nil(t, req.Venue)
}

func TestBuildCreateRequest_NewVenueRequiresNameAndCapacity(t *testing.T) {
	form := validCreateForm()
	form.VenueID = ""
	form.VenueName = "The Loft"

	_, err := BuildCreateRequest(form, "user-1")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Venue details are required when creating a new venue", verr.Message)
	assert.Contains(t, verr.Details, "Venue name and capacity are required")
}

func TestBuildCreateRequest_NewVenueRequiresAddress(t *testing.T) {
	capacity := 200
	form := validCreateForm()
	form.VenueID = ""
	form.VenueName = "The Loft"
	form.VenueCapacity = &capacity
	form.VenueStreet = "1 Rue de la Paix"
	form.VenueCity = "Lyon"

	_, err := BuildCreateRequest(form, "user-1")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Venue address is required when creating a new venue", verr.Message)
	assert.Contains(t, verr.Details, "Street, city, state, country, and postal code are required")
}

func TestBuildCreateRequest_NewVenueBranch(t *testing.T) {
	capacity := 200
	form := validCreateForm()
	form.VenueID = ""
	form.VenueName = "The Loft"
	form.VenueCapacity = &capacity
	form.VenueUnit = "Suite 4"
	form.VenueStreet = "1 Rue de la Paix"
	form.VenueCity = "Lyon"
	form.VenueState = "ARA"
	form.VenueCountry = "France"
	form.VenuePostalCode = "69000"

	req, err := BuildCreateRequest(form, "user-1")

	require.NoError(t, err)
	require.NotNil(t, req.Venue)
	assert.True(t, req.Venue.CreateNew)
	require.NotNil(t, req.Venue.VenueData)
	assert.Equal(t, "The Loft", req.Venue.VenueData.Name)
	assert.Equal(t, 200, req.Venue.VenueData.Capacity)
	assert.Equal(t, domain.VenueStatusAvailable, req.Venue.VenueData.Status)
	require.NotNil(t, req.VenueAddress)
	assert.Equal(t, "Suite 4", req.VenueAddress.Unit)
	assert.Equal(t, "69000", req.VenueAddress.PostalCode)
}

func TestBuildCreateRequest_InvalidOrganizationType(t *testing.T) {
	form := validCreateForm()
	form.OrgName = "Acme"
	form.OrgType = "charity"

	_, err := BuildCreateRequest(form, "user-1")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid organization type", verr.Message)
	assert.Contains(t, verr.Details, `Organization type must be one of: admin, sponsor, vendor, user. Received: "charity"`)
}

func TestBuildCreateRequest_OrganizationBranch(t *testing.T) {
	form := validCreateForm()
	form.OrgName = "Acme"
	form.OrgType = "sponsor"

	req, err := BuildCreateRequest(form, "user-1")

	require.NoError(t, err)
	require.NotNil(t, req.Organization)
	assert.True(t, req.Organization.CreateNew)
	assert.Equal(t, domain.OrganizationTypeSponsor, req.Organization.OrganizationData.Type)
	assert.Equal(t, domain.OrganizationStatusActive, req.Organization.OrganizationData.Status)
}

func TestBuildCreateRequest_NoOrganization(t *testing.T) {
	req, err := BuildCreateRequest(validCreateForm(), "user-1")

	require.NoError(t, err)
	assert.Nil(t, req.Organization)
	assert.Empty(t, req.OrganizationID)
}

func TestBuildCreateRequest_DefaultPurchasePrice(t *testing.T) {
	form := validCreateForm()
	form.Tickets = []TicketForm{{
		Name:       "General",
		Price:      decimal.NewFromInt(50),
		PriceOK:    true,
		Quantity:   100,
		QuantityOK: true,
		PromoCode:  "EARLY",
	}}

	req, err := BuildCreateRequest(form, "user-1")

	require.NoError(t, err)
	require.Len(t, req.Tickets, 1)
	assert.Equal(t, 45.0, req.Tickets[0].PurchasePrice)
	assert.Equal(t, 100, req.Tickets[0].AvailableQuantity)
}

func TestBuildCreateRequest_ExplicitPurchasePriceKept(t *testing.T) {
	form := validCreateForm()
	form.Tickets = []TicketForm{{
		Name:             "Comp",
		Price:            decimal.NewFromInt(50),
		PriceOK:          true,
		PurchasePrice:    decimal.Zero,
		HasPurchasePrice: true,
		Quantity:         10,
		QuantityOK:       true,
		PromoCode:        "FREE",
	}}

	req, err := BuildCreateRequest(form, "user-1")

	require.NoError(t, err)
	require.Len(t, req.Tickets, 1)
	assert.Equal(t, 0.0, req.Tickets[0].PurchasePrice)
}

func TestBuildCreateRequest_InvalidTicketsSkipped(t *testing.T) {
	form := validCreateForm()
	form.Tickets = []TicketForm{
		{Name: "No price", Quantity: 10, QuantityOK: true, PromoCode: "X"},
		{Name: "Good", Price: decimal.NewFromInt(20), PriceOK: true, Quantity: 5, QuantityOK: true, PromoCode: "Y"},
	}

	req, err := BuildCreateRequest(form, "user-1")

	require.NoError(t, err)
	require.Len(t, req.Tickets, 1)
	assert.Equal(t, "Good", req.Tickets[0].Name)
}

func TestBuildUpdateRequest_TitleOnly(t *testing.T) {
	req, err := BuildUpdateRequest(UpdateEventForm{Title: "Renamed"})

	require.NoError(t, err)
	require.NotNil(t, req.Title)
	assert.Equal(t, "Renamed", *req.Title)
	assert.Nil(t, req.Description)
	assert.Nil(t, req.EventDate)
	assert.Nil(t, req.Venue)
	assert.Nil(t, req.Tickets)
}

func TestBuildUpdateRequest_InvalidDateRejected(t *testing.T) {
	_, err := BuildUpdateRequest(UpdateEventForm{EventDate: "soon"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Invalid date format", verr.Message)
}

func TestBuildUpdateRequest_VenueBranch(t *testing.T) {
	capacity := 300
	req, err := BuildUpdateRequest(UpdateEventForm{
		UpdateVenue:   true,
		VenueName:     "Bigger Hall",
		VenueCapacity: &capacity,
	})

	require.NoError(t, err)
	require.NotNil(t, req.Venue)
	assert.True(t, req.Venue.Update)
	require.NotNil(t, req.Venue.VenueData.Name)
	assert.Equal(t, "Bigger Hall", *req.Venue.VenueData.Name)
	require.NotNil(t, req.Venue.VenueData.Capacity)
	assert.Equal(t, 300, *req.Venue.VenueData.Capacity)
	assert.Nil(t, req.Venue.VenueData.Status)
}

func TestBuildUpdateRequest_TicketOperations(t *testing.T) {
	name := "Renamed ticket"
	req, err := BuildUpdateRequest(UpdateEventForm{
		UpdateTickets: []TicketPatchForm{
			{ID: "t-1", Name: &name},
			{ID: "t-2"}, // nothing to patch
		},
		DeleteTicketIDs: []string{"t-3"},
	})

	require.NoError(t, err)
	require.NotNil(t, req.Tickets)
	require.Len(t, req.Tickets.Update, 1)
	assert.Equal(t, "t-1", req.Tickets.Update[0].ID)
	assert.Equal(t, []string{"t-3"}, req.Tickets.Delete)
	assert.Empty(t, req.Tickets.Create)
}
