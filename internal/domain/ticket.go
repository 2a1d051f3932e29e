package domain

// Purchase quantity bounds per attendee-ticket request. Enforced locally
// before any backend call.
const (
	MinPurchaseQuantity = 1
	MaxPurchaseQuantity = 20
)

// Ticket as served by the backend; prices are string-encoded decimals.
type Ticket struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             string `json:"price"`
	PurchasePrice     string `json:"purchasePrice"`
	Quantity          int    `json:"quantity"`
	AvailableQuantity int    `json:"availableQuantity"`
	PromoCode         string `json:"promoCode"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// TicketCreate is the create-side wire shape of the orchestration request.
type TicketCreate struct {
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	Price             float64 `json:"price"`
	PurchasePrice     float64 `json:"purchasePrice"`
	Quantity          int     `json:"quantity"`
	AvailableQuantity int     `json:"availableQuantity"`
	PromoCode         string  `json:"promoCode"`
}

// TicketPatchData carries only the fields the form actually supplied.
type TicketPatchData struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Price             *float64 `json:"price,omitempty"`
	PurchasePrice     *float64 `json:"purchasePrice,omitempty"`
	Quantity          *int     `json:"quantity,omitempty"`
	AvailableQuantity *int     `json:"availableQuantity,omitempty"`
	PromoCode         *string  `json:"promoCode,omitempty"`
}

func (d TicketPatchData) Empty() bool {
	return d.Name == nil && d.Description == nil && d.Price == nil &&
		d.PurchasePrice == nil && d.Quantity == nil &&
		d.AvailableQuantity == nil && d.PromoCode == nil
}

type TicketPatch struct {
	ID   string          `json:"id"`
	Data TicketPatchData `json:"data"`
}

// AttendeeTicket is a ticket purchase made by a registered attendee.
type AttendeeTicket struct {
	ID         string `json:"id"`
	AttendeeID string `json:"attendeeId"`
	TicketID   string `json:"ticketId"`
	Quantity   int    `json:"quantity"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type PurchaseTicketInput struct {
	AttendeeID string `json:"attendeeId"`
	TicketID   string `json:"ticketId"`
	Quantity   int    `json:"quantity"`
}
