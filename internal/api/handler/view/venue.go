package view

import "eventdash/internal/domain"

type VenueRow struct {
	ID       string
	Name     string
	Capacity int
	Status   domain.VenueStatus
	Badge    string
}

func VenueRows(venues []domain.Venue) []VenueRow {
	rows := make([]VenueRow, 0, len(venues))
	for _, v := range venues {
		rows = append(rows, VenueRow{
			ID:       v.ID,
			Name:     v.Name,
			Capacity: v.Capacity,
			Status:   v.Status,
			Badge:    VenueBadge(v.Status),
		})
	}
	return rows
}

type VenueDetail struct {
	Venue domain.Venue
	Badge string
	// Actions lists the status transitions offered on the page; the one
	// matching the current status is left out.
	Actions []domain.VenueStatus
}

var venueStatusOrder = []domain.VenueStatus{
	domain.VenueStatusAvailable,
	domain.VenueStatusUnavailable,
	domain.VenueStatusMaintenance,
	domain.VenueStatusClosed,
}

func FlattenVenue(v domain.Venue) VenueDetail {
	d := VenueDetail{
		Venue:   v,
		Badge:   VenueBadge(v.Status),
		Actions: make([]domain.VenueStatus, 0, len(venueStatusOrder)-1),
	}
	for _, s := range venueStatusOrder {
		if s != v.Status {
			d.Actions = append(d.Actions, s)
		}
	}
	return d
}
