package domain

type OrganizationType string

const (
	OrganizationTypeAdmin   OrganizationType = "admin"
	OrganizationTypeSponsor OrganizationType = "sponsor"
	OrganizationTypeVendor  OrganizationType = "vendor"
	OrganizationTypeUser    OrganizationType = "user"
)

// OrganizationTypes lists the values the backend accepts, in the order they
// are reported in validation messages.
var OrganizationTypes = []OrganizationType{
	OrganizationTypeAdmin,
	OrganizationTypeSponsor,
	OrganizationTypeVendor,
	OrganizationTypeUser,
}

func ValidOrganizationType(t string) bool {
	for _, v := range OrganizationTypes {
		if string(v) == t {
			return true
		}
	}
	return false
}

type OrganizationStatus string

const (
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusInactive  OrganizationStatus = "inactive"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
	OrganizationStatusPending   OrganizationStatus = "pending"
)

type Organization struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Type        OrganizationType   `json:"type"`
	Status      OrganizationStatus `json:"status"`
	AddressID   *string            `json:"addressId"`
	CreatedAt   string             `json:"createdAt"`
	UpdatedAt   string             `json:"updatedAt"`
}

type CreateOrganizationInput struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Type        OrganizationType   `json:"type"`
	Status      OrganizationStatus `json:"status,omitempty"`
}

type UpdateOrganizationInput struct {
	Name        *string             `json:"name,omitempty"`
	Description *string             `json:"description,omitempty"`
	Type        *OrganizationType   `json:"type,omitempty"`
	Status      *OrganizationStatus `json:"status,omitempty"`
}
