package service

import (
	"context"
	"fmt"

	"eventdash/internal/domain"
)

type EventGateway interface {
	CreateEventOrchestrated(ctx context.Context, token string, req domain.CreateEventOrchestration) (domain.EventDetails, error)
	UpdateEventOrchestrated(ctx context.Context, token, eventID string, req domain.UpdateEventOrchestration) (domain.UpdateEventOrchestrationResponse, error)
	GetEventDetails(ctx context.Context, token, eventID string) (domain.EventDetails, error)
	ListEvents(ctx context.Context, token string) ([]domain.EventSummary, error)
	ListEventsByUser(ctx context.Context, token, userID string) ([]domain.EventSummary, error)
	ListEventsForRegistration(ctx context.Context, token, userID string) ([]domain.EventSummary, error)
	DeleteEvent(ctx context.Context, token, eventID string) error
}

type EventService struct {
	gw EventGateway
}

func NewEventService(gw EventGateway) *EventService {
	return &EventService{gw: gw}
}

// CreateEvent sends the composite create: event + venue + organization +
// tickets, one backend call. Atomicity is the backend's problem.
func (s *EventService) CreateEvent(ctx context.Context, p domain.Principal, req domain.CreateEventOrchestration) (domain.EventDetails, error) {
	details, err := s.gw.CreateEventOrchestrated(ctx, p.Token, req)
	if err != nil {
		return domain.EventDetails{}, fmt.Errorf("s.gw.CreateEventOrchestrated -> %w", err)
	}

	return details, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, p domain.Principal, eventID string, req domain.UpdateEventOrchestration) (domain.UpdateEventOrchestrationResponse, error) {
	resp, err := s.gw.UpdateEventOrchestrated(ctx, p.Token, eventID, req)
	if err != nil {
		return domain.UpdateEventOrchestrationResponse{}, fmt.Errorf("s.gw.UpdateEventOrchestrated -> %w", err)
	}

	return resp, nil
}

func (s *EventService) GetEventDetails(ctx context.Context, p domain.Principal, eventID string) (domain.EventDetails, error) {
	details, err := s.gw.GetEventDetails(ctx, p.Token, eventID)
	if err != nil {
		return domain.EventDetails{}, fmt.Errorf("s.gw.GetEventDetails -> %w", err)
	}

	return details, nil
}

func (s *EventService) ListEvents(ctx context.Context, p domain.Principal) ([]domain.EventSummary, error) {
	return s.gw.ListEvents(ctx, p.Token)
}

func (s *EventService) ListMyEvents(ctx context.Context, p domain.Principal) ([]domain.EventSummary, error) {
	return s.gw.ListEventsByUser(ctx, p.Token, p.UserID)
}

func (s *EventService) ListPublicEvents(ctx context.Context, p domain.Principal) ([]domain.EventSummary, error) {
	return s.gw.ListEventsForRegistration(ctx, p.Token, p.UserID)
}

func (s *EventService) DeleteEvent(ctx context.Context, p domain.Principal, eventID string) error {
	return s.gw.DeleteEvent(ctx, p.Token, eventID)
}
