package view

import "eventdash/internal/domain"

type AttendeeRow struct {
	ID             string
	EventID        string
	UserID         string
	RegisteredDate string
	Status         domain.AttendeeStatus
	Badge          string
	Active         bool
}

func AttendeeRows(attendees []domain.EventAttendee) []AttendeeRow {
	rows := make([]AttendeeRow, 0, len(attendees))
	for _, a := range attendees {
		rows = append(rows, AttendeeRow{
			ID:             a.ID,
			EventID:        a.EventID,
			UserID:         a.UserID,
			RegisteredDate: FormatDate(a.RegistrationDate),
			Status:         a.Status,
			Badge:          AttendeeBadge(a.Status),
			Active:         a.Registered(),
		})
	}
	return rows
}
