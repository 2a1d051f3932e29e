package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"eventdash/internal/domain"
)

type PurchaseTicketForm struct {
	TicketID   string `form:"ticketId"`
	AttendeeID string `form:"attendeeId"`
	Quantity   int    `form:"quantity"`
}

func (f *PurchaseTicketForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.TicketID, validation.Required),
		validation.Field(&f.AttendeeID, validation.Required),
		validation.Field(&f.Quantity,
			validation.Required,
			validation.Min(domain.MinPurchaseQuantity).Error("At least 1 ticket is required per purchase"),
			validation.Max(domain.MaxPurchaseQuantity).Error("Maximum 20 tickets allowed per purchase"),
		),
	)
}

type UpdateAttendeeStatusForm struct {
	Status string `form:"status"`
}

func (f *UpdateAttendeeStatusForm) Validate() error {
	return validation.ValidateStruct(
		f,
		validation.Field(&f.Status, validation.Required,
			validation.In("registered", "checked_in", "cancelled", "no_show", "completed")),
	)
}
