package service

import (
	"context"
	"fmt"

	"eventdash/internal/domain"
)

type VenueGateway interface {
	ListVenues(ctx context.Context, token string) ([]domain.Venue, error)
	GetVenue(ctx context.Context, token, id string) (domain.Venue, error)
	CreateVenue(ctx context.Context, token string, input domain.CreateVenueInput) (domain.Venue, error)
	UpdateVenue(ctx context.Context, token, id string, input domain.UpdateVenueInput) (domain.Venue, error)
	DeleteVenue(ctx context.Context, token, id string) error
	SetVenueStatus(ctx context.Context, token, id string, status domain.VenueStatus) (domain.Venue, error)
}

type VenueService struct {
	gw VenueGateway
}

func NewVenueService(gw VenueGateway) *VenueService {
	return &VenueService{gw: gw}
}

func (s *VenueService) ListVenues(ctx context.Context, p domain.Principal) ([]domain.Venue, error) {
	return s.gw.ListVenues(ctx, p.Token)
}

func (s *VenueService) GetVenue(ctx context.Context, p domain.Principal, id string) (domain.Venue, error) {
	return s.gw.GetVenue(ctx, p.Token, id)
}

func (s *VenueService) CreateVenue(ctx context.Context, p domain.Principal, input domain.CreateVenueInput) (domain.Venue, error) {
	venue, err := s.gw.CreateVenue(ctx, p.Token, input)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.gw.CreateVenue -> %w", err)
	}

	return venue, nil
}

func (s *VenueService) UpdateVenue(ctx context.Context, p domain.Principal, id string, input domain.UpdateVenueInput) (domain.Venue, error) {
	venue, err := s.gw.UpdateVenue(ctx, p.Token, id, input)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.gw.UpdateVenue -> %w", err)
	}

	return venue, nil
}

func (s *VenueService) DeleteVenue(ctx context.Context, p domain.Principal, id string) error {
	return s.gw.DeleteVenue(ctx, p.Token, id)
}

func (s *VenueService) SetVenueStatus(ctx context.Context, p domain.Principal, id string, status domain.VenueStatus) (domain.Venue, error) {
	venue, err := s.gw.SetVenueStatus(ctx, p.Token, id, status)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("s.gw.SetVenueStatus -> %w", err)
	}

	return venue, nil
}
