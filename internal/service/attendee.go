package service

import (
	"context"
	"fmt"

	"eventdash/internal/domain"
)

type AttendeeGateway interface {
	RegisterForEvent(ctx context.Context, token string, input domain.CreateEventAttendeeInput) (domain.EventAttendee, error)
	ListEventAttendees(ctx context.Context, token, eventID string) ([]domain.EventAttendee, error)
	ListUserRegistrations(ctx context.Context, token, userID string) ([]domain.EventAttendee, error)
	UpdateAttendeeStatus(ctx context.Context, token, id string, input domain.UpdateEventAttendeeInput) (domain.EventAttendee, error)
	CancelRegistration(ctx context.Context, token, id string) error
	PurchaseTickets(ctx context.Context, token string, input domain.PurchaseTicketInput) (domain.AttendeeTicket, error)
}

type AttendeeService struct {
	gw AttendeeGateway
}

func NewAttendeeService(gw AttendeeGateway) *AttendeeService {
	return &AttendeeService{gw: gw}
}

func (s *AttendeeService) Register(ctx context.Context, p domain.Principal, eventID string) (domain.EventAttendee, error) {
	attendee, err := s.gw.RegisterForEvent(ctx, p.Token, domain.CreateEventAttendeeInput{
		EventID: eventID,
		UserID:  p.UserID,
		Status:  domain.AttendeeStatusRegistered,
	})
	if err != nil {
		return domain.EventAttendee{}, fmt.Errorf("s.gw.RegisterForEvent -> %w", err)
	}

	return attendee, nil
}

func (s *AttendeeService) ListEventAttendees(ctx context.Context, p domain.Principal, eventID string) ([]domain.EventAttendee, error) {
	return s.gw.ListEventAttendees(ctx, p.Token, eventID)
}

func (s *AttendeeService) ListMyRegistrations(ctx context.Context, p domain.Principal) ([]domain.EventAttendee, error) {
	return s.gw.ListUserRegistrations(ctx, p.Token, p.UserID)
}

func (s *AttendeeService) UpdateStatus(ctx context.Context, p domain.Principal, id string, status domain.AttendeeStatus) (domain.EventAttendee, error) {
	attendee, err := s.gw.UpdateAttendeeStatus(ctx, p.Token, id, domain.UpdateEventAttendeeInput{Status: status})
	if err != nil {
		return domain.EventAttendee{}, fmt.Errorf("s.gw.UpdateAttendeeStatus -> %w", err)
	}

	return attendee, nil
}

func (s *AttendeeService) CancelRegistration(ctx context.Context, p domain.Principal, id string) error {
	return s.gw.CancelRegistration(ctx, p.Token, id)
}

// PurchaseTickets enforces the per-purchase quantity bounds locally; an
// out-of-range quantity never reaches the backend.
func (s *AttendeeService) PurchaseTickets(ctx context.Context, p domain.Principal, input domain.PurchaseTicketInput) (domain.AttendeeTicket, error) {
	if input.Quantity < domain.MinPurchaseQuantity {
		return domain.AttendeeTicket{}, domain.NewValidationError(
			"Invalid ticket quantity",
			"At least 1 ticket is required per purchase",
		)
	}
	if input.Quantity > domain.MaxPurchaseQuantity {
		return domain.AttendeeTicket{}, domain.NewValidationError(
			"Invalid ticket quantity",
			"Maximum 20 tickets allowed per purchase",
		)
	}

	purchase, err := s.gw.PurchaseTickets(ctx, p.Token, input)
	if err != nil {
		return domain.AttendeeTicket{}, fmt.Errorf("s.gw.PurchaseTickets -> %w", err)
	}

	return purchase, nil
}
