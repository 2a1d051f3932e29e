package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCreateEventForm_BaseFields(t *testing.T) {
	values := url.Values{
		"title":                 {" Launch Party "},
		"description":           {"Annual launch"},
		"eventDate":             {"2026-09-20T18:00"},
		"registrationOpenDate":  {"2026-09-01T09:00"},
		"registrationCloseDate": {"2026-09-19T17:00"},
		"venueId":               {"venue-1"},
	}

	form := ParseCreateEventForm(values)

	assert.Equal(t, "Launch Party", form.Title)
	assert.Equal(t, "venue-1", form.VenueID)
	assert.Empty(t, form.Tickets)
}

func TestParseCreateEventForm_IndexedTickets(t *testing.T) {
	values := url.Values{
		"tickets[0].name":      {"General"},
		"tickets[0].price":     {"50.00"},
		"tickets[0].quantity":  {"100"},
		"tickets[0].promoCode": {"EARLY"},
		"tickets[1].name":      {"VIP"},
		"tickets[1].price":     {"not-a-number"},
		"tickets[1].quantity":  {"10"},
		"tickets[1].promoCode": {"VIP1"},
	}

	form := ParseCreateEventForm(values)

	require.Len(t, form.Tickets, 2)
	assert.True(t, form.Tickets[0].PriceOK)
	assert.Equal(t, "50", form.Tickets[0].Price.String())
	assert.True(t, form.Tickets[0].Valid())
	assert.False(t, form.Tickets[1].PriceOK)
	assert.False(t, form.Tickets[1].Valid())
}

func TestParseTicketGroup_StopsAtGap(t *testing.T) {
	values := url.Values{
		"tickets[0].name": {"First"},
		"tickets[2].name": {"Orphaned"},
	}

	form := ParseCreateEventForm(values)

	require.Len(t, form.Tickets, 1)
	assert.Equal(t, "First", form.Tickets[0].Name)
}

func TestParseUpdateEventForm_Groups(t *testing.T) {
	values := url.Values{
		"title":                     {"Renamed"},
		"updateVenue":               {"true"},
		"venueCapacity":             {"300"},
		"newTickets[0].name":        {"Late"},
		"newTickets[0].price":       {"30"},
		"newTickets[0].quantity":    {"25"},
		"newTickets[0].promoCode":   {"LATE"},
		"updateTickets[0].id":       {"t-1"},
		"updateTickets[0].price":    {"45.50"},
		"updateTickets[0].quantity": {"oops"},
		"deleteTickets[0]":          {"t-2"},
		"deleteTickets[1]":          {""},
	}

	form := ParseUpdateEventForm(values)

	assert.Equal(t, "Renamed", form.Title)
	assert.True(t, form.UpdateVenue)
	require.NotNil(t, form.VenueCapacity)
	assert.Equal(t, 300, *form.VenueCapacity)

	require.Len(t, form.NewTickets, 1)
	assert.True(t, form.NewTickets[0].Valid())

	require.Len(t, form.UpdateTickets, 1)
	patch := form.UpdateTickets[0]
	assert.Equal(t, "t-1", patch.ID)
	require.NotNil(t, patch.Price)
	assert.Equal(t, "45.5", patch.Price.String())
	assert.Nil(t, patch.Quantity)

	// deleteTickets scanning stops only at a missing key; empty values are
	// skipped but don't end the scan.
	values.Set("deleteTickets[2]", "t-4")
	form = ParseUpdateEventForm(values)
	assert.Equal(t, []string{"t-2", "t-4"}, form.DeleteTicketIDs)
}

func TestTicketPatchForm_Empty(t *testing.T) {
	assert.True(t, TicketPatchForm{ID: "t-1"}.Empty())

	name := "x"
	assert.False(t, TicketPatchForm{ID: "t-1", Name: &name}.Empty())
}

func TestRegisterForm_PasswordPolicy(t *testing.T) {
	base := RegisterForm{
		Email:     "a@b.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}

	noDigit := base
	noDigit.Password = "lettersonly"
	noDigit.ConfirmPassword = "lettersonly"
	assert.ErrorIs(t, noDigit.Validate(), errInvalidPassword)

	tooShort := base
	tooShort.Password = "a1b2c3"
	tooShort.ConfirmPassword = "a1b2c3"
	assert.ErrorIs(t, tooShort.Validate(), errInvalidPassword)

	mismatch := base
	mismatch.Password = "password1"
	mismatch.ConfirmPassword = "password2"
	assert.ErrorIs(t, mismatch.Validate(), errConfirmPasswordMismatch)

	valid := base
	valid.Password = "password1"
	valid.ConfirmPassword = "password1"
	assert.NoError(t, valid.Validate())
}

func TestPurchaseTicketForm_QuantityBounds(t *testing.T) {
	form := PurchaseTicketForm{TicketID: "t-1", AttendeeID: "a-1", Quantity: 25}
	err := form.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Maximum 20 tickets allowed per purchase")

	form.Quantity = 20
	assert.NoError(t, form.Validate())
}

func TestProfileForm_Validate(t *testing.T) {
	assert.NoError(t, (&ProfileForm{}).Validate())
	assert.NoError(t, (&ProfileForm{NewPassword: "password1"}).Validate())
	assert.ErrorIs(t, (&ProfileForm{NewPassword: "short"}).Validate(), errInvalidPassword)
	assert.Error(t, (&ProfileForm{Email: "not-an-email"}).Validate())
}

func TestProfileForm_SparseInput(t *testing.T) {
	form := ProfileForm{FirstName: "Grace", NewPassword: "password1"}

	input := form.Input()

	require.NotNil(t, input.FirstName)
	assert.Equal(t, "Grace", *input.FirstName)
	require.NotNil(t, input.Password)
	assert.Equal(t, "password1", *input.Password)
	assert.Nil(t, input.LastName)
	assert.Nil(t, input.Email)
	assert.Nil(t, input.Phone)
}
