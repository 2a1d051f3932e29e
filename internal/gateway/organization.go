package gateway

import (
	"context"
	"fmt"
	"net/http"

	"eventdash/internal/domain"
)

// organizationAction maps a target status onto the backend's transition
// endpoints: activate, deactivate, suspend.
var organizationAction = map[domain.OrganizationStatus]string{
	domain.OrganizationStatusActive:    "activate",
	domain.OrganizationStatusInactive:  "deactivate",
	domain.OrganizationStatusSuspended: "suspend",
}

func (c *Client) ListOrganizations(ctx context.Context, token string) ([]domain.Organization, error) {
	var orgs []domain.Organization
	if err := c.do(ctx, "organization_list", http.MethodGet, "/api/organizations", token, nil, &orgs); err != nil {
		return nil, err
	}

	return orgs, nil
}

func (c *Client) GetOrganization(ctx context.Context, token, id string) (domain.Organization, error) {
	var org domain.Organization
	if err := c.do(ctx, "organization_get", http.MethodGet, "/api/organizations/"+id, token, nil, &org); err != nil {
		return domain.Organization{}, err
	}

	return org, nil
}

func (c *Client) CreateOrganization(ctx context.Context, token string, input domain.CreateOrganizationInput) (domain.Organization, error) {
	var org domain.Organization
	if err := c.do(ctx, "organization_create", http.MethodPost, "/api/organizations", token, input, &org); err != nil {
		return domain.Organization{}, err
	}

	return org, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, token, id string, input domain.UpdateOrganizationInput) (domain.Organization, error) {
	var org domain.Organization
	if err := c.do(ctx, "organization_update", http.MethodPut, "/api/organizations/"+id, token, input, &org); err != nil {
		return domain.Organization{}, err
	}

	return org, nil
}

func (c *Client) DeleteOrganization(ctx context.Context, token, id string) error {
	return c.do(ctx, "organization_delete", http.MethodDelete, "/api/organizations/"+id, token, nil, nil)
}

func (c *Client) SetOrganizationStatus(ctx context.Context, token, id string, status domain.OrganizationStatus) (domain.Organization, error) {
	action, ok := organizationAction[status]
	if !ok {
		return domain.Organization{}, fmt.Errorf("no transition endpoint for organization status %q", status)
	}

	var org domain.Organization
	path := fmt.Sprintf("/api/organizations/%s/%s", id, action)
	if err := c.do(ctx, "organization_status", http.MethodPost, path, token, nil, &org); err != nil {
		return domain.Organization{}, err
	}

	return org, nil
}
