package gateway

import (
	"context"
	"net/http"

	"eventdash/internal/domain"
)

func (c *Client) RegisterForEvent(ctx context.Context, token string, input domain.CreateEventAttendeeInput) (domain.EventAttendee, error) {
	var attendee domain.EventAttendee
	if err := c.do(ctx, "attendee_register", http.MethodPost, "/api/event-attendees", token, input, &attendee); err != nil {
		return domain.EventAttendee{}, err
	}

	return attendee, nil
}

func (c *Client) ListEventAttendees(ctx context.Context, token, eventID string) ([]domain.EventAttendee, error) {
	var attendees []domain.EventAttendee
	if err := c.do(ctx, "attendee_list_by_event", http.MethodGet, "/api/events/"+eventID+"/attendees", token, nil, &attendees); err != nil {
		return nil, err
	}

	return attendees, nil
}

// ListUserRegistrations returns every registration the user holds, across
// all events, cancelled ones included.
func (c *Client) ListUserRegistrations(ctx context.Context, token, userID string) ([]domain.EventAttendee, error) {
	var attendees []domain.EventAttendee
	if err := c.do(ctx, "attendee_list_by_user", http.MethodGet, "/api/users/"+userID+"/event-attendees", token, nil, &attendees); err != nil {
		return nil, err
	}

	return attendees, nil
}

func (c *Client) UpdateAttendeeStatus(ctx context.Context, token, id string, input domain.UpdateEventAttendeeInput) (domain.EventAttendee, error) {
	var attendee domain.EventAttendee
	if err := c.do(ctx, "attendee_update", http.MethodPut, "/api/event-attendees/"+id, token, input, &attendee); err != nil {
		return domain.EventAttendee{}, err
	}

	return attendee, nil
}

func (c *Client) CancelRegistration(ctx context.Context, token, id string) error {
	return c.do(ctx, "attendee_cancel", http.MethodDelete, "/api/event-attendees/"+id, token, nil, nil)
}

func (c *Client) PurchaseTickets(ctx context.Context, token string, input domain.PurchaseTicketInput) (domain.AttendeeTicket, error) {
	var purchase domain.AttendeeTicket
	if err := c.do(ctx, "attendee_ticket_purchase", http.MethodPost, "/api/attendee-tickets", token, input, &purchase); err != nil {
		return domain.AttendeeTicket{}, err
	}

	return purchase, nil
}
