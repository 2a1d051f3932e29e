package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"eventdash/internal/domain"
)

type CreateOrganizationForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Type        string `form:"type"`
}

func (f *CreateOrganizationForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.Length(2, 256)),
		validation.Field(&f.Description, validation.Length(0, 1024)),
		validation.Field(&f.Type, validation.Required, validation.In("admin", "sponsor", "vendor", "user")),
	)
}

// Input converts the form into a create payload. New organizations
// start out active.
func (f *CreateOrganizationForm) Input() domain.CreateOrganizationInput {
	return domain.CreateOrganizationInput{
		Name:        f.Name,
		Description: f.Description,
		Type:        domain.OrganizationType(f.Type),
		Status:      domain.OrganizationStatusActive,
	}
}

type UpdateOrganizationForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Type        string `form:"type"`
}

func (f *UpdateOrganizationForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Length(2, 256)),
		validation.Field(&f.Description, validation.Length(0, 1024)),
		validation.Field(&f.Type, validation.In("admin", "sponsor", "vendor", "user")),
	)
}

// Input builds a sparse patch from the submitted fields only.
func (f *UpdateOrganizationForm) Input() domain.UpdateOrganizationInput {
	var input domain.UpdateOrganizationInput
	if f.Name != "" {
		input.Name = &f.Name
	}
	if f.Description != "" {
		input.Description = &f.Description
	}
	if f.Type != "" {
		orgType := domain.OrganizationType(f.Type)
		input.Type = &orgType
	}

	return input
}
