package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"eventdash/internal/domain"
)

// CreateEventOrchestrated performs the composite multi-entity create. The
// backend treats event + venue + organization + tickets as one logical
// operation; atomicity is entirely its problem.
func (c *Client) CreateEventOrchestrated(ctx context.Context, token string, req domain.CreateEventOrchestration) (domain.EventDetails, error) {
	var resp domain.EventDetails
	err := c.do(ctx, "event_orchestration_create", http.MethodPost, "/api/events/orchestration/create", token, req, &resp)
	if err != nil {
		return domain.EventDetails{}, err
	}

	return resp, nil
}

func (c *Client) UpdateEventOrchestrated(ctx context.Context, token, eventID string, req domain.UpdateEventOrchestration) (domain.UpdateEventOrchestrationResponse, error) {
	var resp domain.UpdateEventOrchestrationResponse
	err := c.do(ctx, "event_orchestration_update", http.MethodPut, "/api/events/orchestration/"+eventID, token, req, &resp)
	if err != nil {
		return domain.UpdateEventOrchestrationResponse{}, err
	}

	return resp, nil
}

func (c *Client) GetEventDetails(ctx context.Context, token, eventID string) (domain.EventDetails, error) {
	var resp domain.EventDetails
	err := c.do(ctx, "event_details", http.MethodGet, fmt.Sprintf("/api/events/orchestration/%s/details", eventID), token, nil, &resp)
	if err != nil {
		return domain.EventDetails{}, err
	}

	return resp, nil
}

// eventList tolerates both list-response shapes: a bare JSON array, or an
// {"events": [...]} envelope.
type eventList []domain.EventSummary

func (l *eventList) UnmarshalJSON(b []byte) error {
	var plain []domain.EventSummary
	if err := json.Unmarshal(b, &plain); err == nil {
		*l = plain
		return nil
	}

	var envelope struct {
		Events []domain.EventSummary `json:"events"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}
	*l = envelope.Events

	return nil
}

func (c *Client) ListEvents(ctx context.Context, token string) ([]domain.EventSummary, error) {
	var events eventList
	if err := c.do(ctx, "event_list", http.MethodGet, "/api/events", token, nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// ListEventsByUser returns the events organized by the given user.
func (c *Client) ListEventsByUser(ctx context.Context, token, userID string) ([]domain.EventSummary, error) {
	var events eventList
	if err := c.do(ctx, "event_list_by_user", http.MethodGet, "/api/events/by-user/"+userID, token, nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

// ListEventsForRegistration returns events the given user does not organize,
// i.e. the ones they may register for.
func (c *Client) ListEventsForRegistration(ctx context.Context, token, userID string) ([]domain.EventSummary, error) {
	var events eventList
	if err := c.do(ctx, "event_list_not_by_user", http.MethodGet, "/api/events/not-by-user/"+userID, token, nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *Client) DeleteEvent(ctx context.Context, token, eventID string) error {
	return c.do(ctx, "event_delete", http.MethodDelete, "/api/events/"+eventID, token, nil, nil)
}
