package service

import (
	"context"
	"fmt"

	"eventdash/internal/domain"
)

type OrganizationGateway interface {
	ListOrganizations(ctx context.Context, token string) ([]domain.Organization, error)
	GetOrganization(ctx context.Context, token, id string) (domain.Organization, error)
	CreateOrganization(ctx context.Context, token string, input domain.CreateOrganizationInput) (domain.Organization, error)
	UpdateOrganization(ctx context.Context, token, id string, input domain.UpdateOrganizationInput) (domain.Organization, error)
	DeleteOrganization(ctx context.Context, token, id string) error
	SetOrganizationStatus(ctx context.Context, token, id string, status domain.OrganizationStatus) (domain.Organization, error)
}

type OrganizationService struct {
	gw OrganizationGateway
}

func NewOrganizationService(gw OrganizationGateway) *OrganizationService {
	return &OrganizationService{gw: gw}
}

func (s *OrganizationService) ListOrganizations(ctx context.Context, p domain.Principal) ([]domain.Organization, error) {
	return s.gw.ListOrganizations(ctx, p.Token)
}

func (s *OrganizationService) GetOrganization(ctx context.Context, p domain.Principal, id string) (domain.Organization, error) {
	return s.gw.GetOrganization(ctx, p.Token, id)
}

func (s *OrganizationService) CreateOrganization(ctx context.Context, p domain.Principal, input domain.CreateOrganizationInput) (domain.Organization, error) {
	org, err := s.gw.CreateOrganization(ctx, p.Token, input)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("s.gw.CreateOrganization -> %w", err)
	}

	return org, nil
}

func (s *OrganizationService) UpdateOrganization(ctx context.Context, p domain.Principal, id string, input domain.UpdateOrganizationInput) (domain.Organization, error) {
	org, err := s.gw.UpdateOrganization(ctx, p.Token, id, input)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("s.gw.UpdateOrganization -> %w", err)
	}

	return org, nil
}

func (s *OrganizationService) DeleteOrganization(ctx context.Context, p domain.Principal, id string) error {
	return s.gw.DeleteOrganization(ctx, p.Token, id)
}

func (s *OrganizationService) SetOrganizationStatus(ctx context.Context, p domain.Principal, id string, status domain.OrganizationStatus) (domain.Organization, error) {
	org, err := s.gw.SetOrganizationStatus(ctx, p.Token, id, status)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("s.gw.SetOrganizationStatus -> %w", err)
	}

	return org, nil
}
