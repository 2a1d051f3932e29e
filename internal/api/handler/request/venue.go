package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"eventdash/internal/domain"
)

type CreateVenueForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Capacity    int    `form:"capacity"`
	Status      string `form:"status"`
}

func (f *CreateVenueForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Required, validation.Length(2, 256)),
		validation.Field(&f.Description, validation.Length(0, 1024)),
		validation.Field(&f.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&f.Status, validation.In("available", "unavailable", "maintenance", "closed")),
	)
}

// Input converts the form into a create payload, defaulting new venues
// to the available status when none was picked.
func (f *CreateVenueForm) Input() domain.CreateVenueInput {
	status := domain.VenueStatus(f.Status)
	if f.Status == "" {
		status = domain.VenueStatusAvailable
	}

	return domain.CreateVenueInput{
		Name:        f.Name,
		Description: f.Description,
		Capacity:    f.Capacity,
		Status:      status,
	}
}

type UpdateVenueForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Capacity    int    `form:"capacity"`
	Status      string `form:"status"`
}

func (f *UpdateVenueForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Name, validation.Length(2, 256)),
		validation.Field(&f.Description, validation.Length(0, 1024)),
		validation.Field(&f.Capacity, validation.Min(0)),
		validation.Field(&f.Status, validation.In("available", "unavailable", "maintenance", "closed")),
	)
}

// Input builds a sparse patch from the submitted fields only.
func (f *UpdateVenueForm) Input() domain.UpdateVenueInput {
	var input domain.UpdateVenueInput
	if f.Name != "" {
		input.Name = &f.Name
	}
	if f.Description != "" {
		input.Description = &f.Description
	}
	if f.Capacity > 0 {
		input.Capacity = &f.Capacity
	}
	if f.Status != "" {
		status := domain.VenueStatus(f.Status)
		input.Status = &status
	}

	return input
}
