package view

import "eventdash/internal/domain"

type OrganizationRow struct {
	ID     string
	Name   string
	Type   domain.OrganizationType
	Status domain.OrganizationStatus
	Badge  string
}

func OrganizationRows(orgs []domain.Organization) []OrganizationRow {
	rows := make([]OrganizationRow, 0, len(orgs))
	for _, o := range orgs {
		rows = append(rows, OrganizationRow{
			ID:     o.ID,
			Name:   o.Name,
			Type:   o.Type,
			Status: o.Status,
			Badge:  OrganizationBadge(o.Status),
		})
	}
	return rows
}

type OrganizationDetail struct {
	Organization domain.Organization
	Badge        string
	Actions      []domain.OrganizationStatus
}

var organizationStatusOrder = []domain.OrganizationStatus{
	domain.OrganizationStatusActive,
	domain.OrganizationStatusInactive,
	domain.OrganizationStatusSuspended,
}

func FlattenOrganization(o domain.Organization) OrganizationDetail {
	d := OrganizationDetail{
		Organization: o,
		Badge:        OrganizationBadge(o.Status),
		Actions:      make([]domain.OrganizationStatus, 0, len(organizationStatusOrder)-1),
	}
	for _, s := range organizationStatusOrder {
		if s != o.Status {
			d.Actions = append(d.Actions, s)
		}
	}
	return d
}
