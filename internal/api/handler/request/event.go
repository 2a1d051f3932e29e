package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TicketForm is one parsed entry of an indexed ticket group
// (tickets[i].field / newTickets[i].field). Valid reports whether the entry
// carries everything a ticket create needs; invalid entries are skipped,
// they never fail the whole submission.
type TicketForm struct {
	Name             string
	Description      string
	Price            decimal.Decimal
	PriceOK          bool
	PurchasePrice    decimal.Decimal
	HasPurchasePrice bool
	Quantity         int
	QuantityOK       bool
	PromoCode        string
}

func (t TicketForm) Valid() bool {
	return t.Name != "" && t.PriceOK && t.QuantityOK && t.PromoCode != ""
}

// TicketPatchForm is one parsed entry of the updateTickets group: a sparse
// per-field patch keyed by ticket id. A malformed numeric field silently
// excludes that field only.
type TicketPatchForm struct {
	ID                string
	Name              *string
	Description       *string
	Price             *decimal.Decimal
	PurchasePrice     *decimal.Decimal
	Quantity          *int
	AvailableQuantity *int
	PromoCode         *string
}

func (t TicketPatchForm) Empty() bool {
	return t.Name == nil && t.Description == nil && t.Price == nil &&
		t.PurchasePrice == nil && t.Quantity == nil &&
		t.AvailableQuantity == nil && t.PromoCode == nil
}

type CreateEventForm struct {
	Title                 string
	Description           string
	EventDate             string
	RegistrationOpenDate  string
	RegistrationCloseDate string

	VenueID          string
	VenueName        string
	VenueDescription string
	VenueCapacity    *int
	VenueUnit        string
	VenueStreet      string
	VenueCity        string
	VenueState       string
	VenueCountry     string
	VenuePostalCode  string

	OrganizationID string
	OrgName        string
	OrgType        string
	OrgDescription string

	Tickets []TicketForm
}

type UpdateEventForm struct {
	Title                 string
	Description           string
	EventDate             string
	RegistrationOpenDate  string
	RegistrationCloseDate string
	Status                string

	UpdateVenue      bool
	VenueName        string
	VenueDescription string
	VenueCapacity    *int
	VenueStatus      string

	NewTickets      []TicketForm
	UpdateTickets   []TicketPatchForm
	DeleteTicketIDs []string
}

// ParseCreateEventForm extracts the multi-section create form. Pure
// extraction: validation of the result happens in the request builder.
func ParseCreateEventForm(values url.Values) CreateEventForm {
	return CreateEventForm{
		Title:                 field(values, "title"),
		Description:           field(values, "description"),
		EventDate:             field(values, "eventDate"),
		RegistrationOpenDate:  field(values, "registrationOpenDate"),
		RegistrationCloseDate: field(values, "registrationCloseDate"),

		VenueID:          field(values, "venueId"),
		VenueName:        field(values, "venueName"),
		VenueDescription: field(values, "venueDescription"),
		VenueCapacity:    intField(values, "venueCapacity"),
		VenueUnit:        field(values, "venueUnit"),
		VenueStreet:      field(values, "venueStreet"),
		VenueCity:        field(values, "venueCity"),
		VenueState:       field(values, "venueState"),
		VenueCountry:     field(values, "venueCountry"),
		VenuePostalCode:  field(values, "venuePostalCode"),

		OrganizationID: field(values, "organizationId"),
		OrgName:        field(values, "orgName"),
		OrgType:        field(values, "orgType"),
		OrgDescription: field(values, "orgDescription"),

		Tickets: parseTicketGroup(values, "tickets"),
	}
}

func ParseUpdateEventForm(values url.Values) UpdateEventForm {
	return UpdateEventForm{
		Title:                 field(values, "title"),
		Description:           field(values, "description"),
		EventDate:             field(values, "eventDate"),
		RegistrationOpenDate:  field(values, "registrationOpenDate"),
		RegistrationCloseDate: field(values, "registrationCloseDate"),
		Status:                field(values, "status"),

		UpdateVenue:      field(values, "updateVenue") == "true",
		VenueName:        field(values, "venueName"),
		VenueDescription: field(values, "venueDescription"),
		VenueCapacity:    intField(values, "venueCapacity"),
		VenueStatus:      field(values, "venueStatus"),

		NewTickets:      parseTicketGroup(values, "newTickets"),
		UpdateTickets:   parseTicketPatchGroup(values, "updateTickets"),
		DeleteTicketIDs: parseDeleteGroup(values, "deleteTickets"),
	}
}

// parseTicketGroup scans group[0], group[1], ... stopping at the first
// index without a name key. No gaps are permitted.
func parseTicketGroup(values url.Values, group string) []TicketForm {
	var tickets []TicketForm
	for i := 0; ; i++ {
		if !values.Has(groupKey(group, i, "name")) {
			break
		}

		t := TicketForm{
			Name:        field(values, groupKey(group, i, "name")),
			Description: field(values, groupKey(group, i, "description")),
			PromoCode:   field(values, groupKey(group, i, "promoCode")),
		}
		t.Price, t.PriceOK = decimalValue(values, groupKey(group, i, "price"))
		t.PurchasePrice, t.HasPurchasePrice = decimalValue(values, groupKey(group, i, "purchasePrice"))
		t.Quantity, t.QuantityOK = intValue(values, groupKey(group, i, "quantity"))

		tickets = append(tickets, t)
	}

	return tickets
}

func parseTicketPatchGroup(values url.Values, group string) []TicketPatchForm {
	var patches []TicketPatchForm
	for i := 0; ; i++ {
		if !values.Has(groupKey(group, i, "id")) {
			break
		}

		p := TicketPatchForm{
			ID:          field(values, groupKey(group, i, "id")),
			Name:        strPtr(values, groupKey(group, i, "name")),
			Description: strPtr(values, groupKey(group, i, "description")),
			PromoCode:   strPtr(values, groupKey(group, i, "promoCode")),
		}
		if price, ok := decimalValue(values, groupKey(group, i, "price")); ok {
			p.Price = &price
		}
		if purchase, ok := decimalValue(values, groupKey(group, i, "purchasePrice")); ok {
			p.PurchasePrice = &purchase
		}
		if qty, ok := intValue(values, groupKey(group, i, "quantity")); ok {
			p.Quantity = &qty
		}
		if avail, ok := intValue(values, groupKey(group, i, "availableQuantity")); ok {
			p.AvailableQuantity = &avail
		}

		patches = append(patches, p)
	}

	return patches
}

func parseDeleteGroup(values url.Values, group string) []string {
	var ids []string
	for i := 0; ; i++ {
		key := fmt.Sprintf("%s[%d]", group, i)
		if !values.Has(key) {
			break
		}
		if id := field(values, key); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}

func groupKey(group string, i int, name string) string {
	return fmt.Sprintf("%s[%d].%s", group, i, name)
}

func field(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func intField(values url.Values, key string) *int {
	if v, ok := intValue(values, key); ok {
		return &v
	}
	return nil
}

func intValue(values url.Values, key string) (int, bool) {
	v, err := strconv.Atoi(field(values, key))
	if err != nil {
		return 0, false
	}
	return v, true
}

func decimalValue(values url.Values, key string) (decimal.Decimal, bool) {
	raw := field(values, key)
	if raw == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func strPtr(values url.Values, key string) *string {
	if v := field(values, key); v != "" {
		return &v
	}
	return nil
}
