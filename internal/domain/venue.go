package domain

type VenueStatus string

const (
	VenueStatusAvailable   VenueStatus = "available"
	VenueStatusUnavailable VenueStatus = "unavailable"
	VenueStatusMaintenance VenueStatus = "maintenance"
	VenueStatusClosed      VenueStatus = "closed"
)

type Venue struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Capacity    int         `json:"capacity"`
	Status      VenueStatus `json:"status"`
	AddressID   *string     `json:"addressId"`
	CreatedAt   string      `json:"createdAt"`
	UpdatedAt   string      `json:"updatedAt"`
}

type CreateVenueInput struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Capacity    int         `json:"capacity"`
	Status      VenueStatus `json:"status"`
}

// UpdateVenueInput is a sparse patch; nil fields are left untouched.
type UpdateVenueInput struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Capacity    *int         `json:"capacity,omitempty"`
	Status      *VenueStatus `json:"status,omitempty"`
}

type Address struct {
	ID         string  `json:"id"`
	Unit       *string `json:"unit"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postalCode"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type AddressInput struct {
	Unit       string `json:"unit,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}
