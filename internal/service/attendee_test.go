package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdash/internal/domain"
)

type mockAttendeeGateway struct {
	purchaseCalls int
	registerInput domain.CreateEventAttendeeInput
}

func (m *mockAttendeeGateway) RegisterForEvent(ctx context.Context, token string, input domain.CreateEventAttendeeInput) (domain.EventAttendee, error) {
	m.registerInput = input
	return domain.EventAttendee{ID: "att-1", EventID: input.EventID, Status: input.Status}, nil
}

func (m *mockAttendeeGateway) ListEventAttendees(ctx context.Context, token, eventID string) ([]domain.EventAttendee, error) {
	return nil, nil
}

func (m *mockAttendeeGateway) ListUserRegistrations(ctx context.Context, token, userID string) ([]domain.EventAttendee, error) {
	return nil, nil
}

func (m *mockAttendeeGateway) UpdateAttendeeStatus(ctx context.Context, token, id string, input domain.UpdateEventAttendeeInput) (domain.EventAttendee, error) {
	return domain.EventAttendee{ID: id, Status: input.Status}, nil
}

func (m *mockAttendeeGateway) CancelRegistration(ctx context.Context, token, id string) error {
	return nil
}

func (m *mockAttendeeGateway) PurchaseTickets(ctx context.Context, token string, input domain.PurchaseTicketInput) (domain.AttendeeTicket, error) {
	m.purchaseCalls++
	return domain.AttendeeTicket{ID: "at-1", Quantity: input.Quantity}, nil
}

func TestPurchaseTickets_TooMany(t *testing.T) {
	gw := &mockAttendeeGateway{}
	svc := NewAttendeeService(gw)

	_, err := svc.PurchaseTickets(context.Background(), domain.Principal{Token: "tok"}, domain.PurchaseTicketInput{
		AttendeeID: "att-1",
		TicketID:   "tix-1",
		Quantity:   25,
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Details, "Maximum 20 tickets allowed per purchase")
	assert.Zero(t, gw.purchaseCalls)
}

func TestPurchaseTickets_TooFew(t *testing.T) {
	gw := &mockAttendeeGateway{}
	svc := NewAttendeeService(gw)

	_, err := svc.PurchaseTickets(context.Background(), domain.Principal{Token: "tok"}, domain.PurchaseTicketInput{
		AttendeeID: "att-1",
		TicketID:   "tix-1",
		Quantity:   0,
	})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Details, "At least 1 ticket is required per purchase")
	assert.Zero(t, gw.purchaseCalls)
}

func TestPurchaseTickets_WithinBounds(t *testing.T) {
	gw := &mockAttendeeGateway{}
	svc := NewAttendeeService(gw)

	purchase, err := svc.PurchaseTickets(context.Background(), domain.Principal{Token: "tok"}, domain.PurchaseTicketInput{
		AttendeeID: "att-1",
		TicketID:   "tix-1",
		Quantity:   20,
	})

	require.NoError(t, err)
	assert.Equal(t, 20, purchase.Quantity)
	assert.Equal(t, 1, gw.purchaseCalls)
}

func TestRegister_DefaultsToRegisteredStatus(t *testing.T) {
	gw := &mockAttendeeGateway{}
	svc := NewAttendeeService(gw)

	attendee, err := svc.Register(context.Background(), domain.Principal{UserID: "user-1", Token: "tok"}, "ev-1")

	require.NoError(t, err)
	assert.Equal(t, domain.AttendeeStatusRegistered, attendee.Status)
	assert.Equal(t, "user-1", gw.registerInput.UserID)
	assert.Equal(t, "ev-1", gw.registerInput.EventID)
}
