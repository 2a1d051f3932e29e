package view

import "eventdash/internal/domain"

// neutralBadge is used for any status value the tables don't know about.
const neutralBadge = "bg-gray-100 text-gray-800"

var eventBadges = map[domain.EventStatus]string{
	domain.EventStatusDraft:     "bg-gray-100 text-gray-800",
	domain.EventStatusPending:   "bg-yellow-100 text-yellow-800",
	domain.EventStatusPublished: "bg-green-100 text-green-800",
	domain.EventStatusScheduled: "bg-blue-100 text-blue-800",
	domain.EventStatusOpen:      "bg-green-100 text-green-800",
	domain.EventStatusClosed:    "bg-orange-100 text-orange-800",
	domain.EventStatusCancelled: "bg-red-100 text-red-800",
	domain.EventStatusCompleted: "bg-purple-100 text-purple-800",
}

var venueBadges = map[domain.VenueStatus]string{
	domain.VenueStatusAvailable:   "bg-green-100 text-green-800",
	domain.VenueStatusUnavailable: "bg-yellow-100 text-yellow-800",
	domain.VenueStatusMaintenance: "bg-orange-100 text-orange-800",
	domain.VenueStatusClosed:      "bg-red-100 text-red-800",
}

var organizationBadges = map[domain.OrganizationStatus]string{
	domain.OrganizationStatusActive:    "bg-green-100 text-green-800",
	domain.OrganizationStatusInactive:  "bg-gray-100 text-gray-800",
	domain.OrganizationStatusSuspended: "bg-red-100 text-red-800",
	domain.OrganizationStatusPending:   "bg-yellow-100 text-yellow-800",
}

var attendeeBadges = map[domain.AttendeeStatus]string{
	domain.AttendeeStatusRegistered: "bg-green-100 text-green-800",
	domain.AttendeeStatusCheckedIn:  "bg-blue-100 text-blue-800",
	domain.AttendeeStatusCancelled:  "bg-red-100 text-red-800",
	domain.AttendeeStatusNoShow:     "bg-orange-100 text-orange-800",
	domain.AttendeeStatusCompleted:  "bg-purple-100 text-purple-800",
}

func EventBadge(s domain.EventStatus) string {
	if b, ok := eventBadges[s]; ok {
		return b
	}
	return neutralBadge
}

func VenueBadge(s domain.VenueStatus) string {
	if b, ok := venueBadges[s]; ok {
		return b
	}
	return neutralBadge
}

func OrganizationBadge(s domain.OrganizationStatus) string {
	if b, ok := organizationBadges[s]; ok {
		return b
	}
	return neutralBadge
}

func AttendeeBadge(s domain.AttendeeStatus) string {
	if b, ok := attendeeBadges[s]; ok {
		return b
	}
	return neutralBadge
}
