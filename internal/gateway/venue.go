package gateway

import (
	"context"
	"fmt"
	"net/http"

	"eventdash/internal/domain"
)

func (c *Client) ListVenues(ctx context.Context, token string) ([]domain.Venue, error) {
	var venues []domain.Venue
	if err := c.do(ctx, "venue_list", http.MethodGet, "/api/venues", token, nil, &venues); err != nil {
		return nil, err
	}

	return venues, nil
}

func (c *Client) GetVenue(ctx context.Context, token, id string) (domain.Venue, error) {
	var venue domain.Venue
	if err := c.do(ctx, "venue_get", http.MethodGet, "/api/venues/"+id, token, nil, &venue); err != nil {
		return domain.Venue{}, err
	}

	return venue, nil
}

func (c *Client) CreateVenue(ctx context.Context, token string, input domain.CreateVenueInput) (domain.Venue, error) {
	var venue domain.Venue
	if err := c.do(ctx, "venue_create", http.MethodPost, "/api/venues", token, input, &venue); err != nil {
		return domain.Venue{}, err
	}

	return venue, nil
}

func (c *Client) UpdateVenue(ctx context.Context, token, id string, input domain.UpdateVenueInput) (domain.Venue, error) {
	var venue domain.Venue
	if err := c.do(ctx, "venue_update", http.MethodPut, "/api/venues/"+id, token, input, &venue); err != nil {
		return domain.Venue{}, err
	}

	return venue, nil
}

func (c *Client) DeleteVenue(ctx context.Context, token, id string) error {
	return c.do(ctx, "venue_delete", http.MethodDelete, "/api/venues/"+id, token, nil, nil)
}

// SetVenueStatus hits the status-transition endpoint matching the target
// status (/api/venues/{id}/available etc). Transition legality is checked
// by the backend.
func (c *Client) SetVenueStatus(ctx context.Context, token, id string, status domain.VenueStatus) (domain.Venue, error) {
	var venue domain.Venue
	path := fmt.Sprintf("/api/venues/%s/%s", id, status)
	if err := c.do(ctx, "venue_status", http.MethodPost, path, token, nil, &venue); err != nil {
		return domain.Venue{}, err
	}

	return venue, nil
}
