package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventdash/internal/api/handler/request"
	"eventdash/internal/api/handler/view"
	"eventdash/internal/api/middleware"
	"eventdash/internal/domain"
)

type EventService interface {
	CreateEvent(ctx context.Context, p domain.Principal, req domain.CreateEventOrchestration) (domain.EventDetails, error)
	UpdateEvent(ctx context.Context, p domain.Principal, eventID string, req domain.UpdateEventOrchestration) (domain.UpdateEventOrchestrationResponse, error)
	GetEventDetails(ctx context.Context, p domain.Principal, eventID string) (domain.EventDetails, error)
	ListEvents(ctx context.Context, p domain.Principal) ([]domain.EventSummary, error)
	ListMyEvents(ctx context.Context, p domain.Principal) ([]domain.EventSummary, error)
	DeleteEvent(ctx context.Context, p domain.Principal, eventID string) error
}

type VenueLister interface {
	ListVenues(ctx context.Context, p domain.Principal) ([]domain.Venue, error)
}

type OrganizationLister interface {
	ListOrganizations(ctx context.Context, p domain.Principal) ([]domain.Organization, error)
}

type AttendeeLister interface {
	ListEventAttendees(ctx context.Context, p domain.Principal, eventID string) ([]domain.EventAttendee, error)
}

type EventHandler struct {
	svc       EventService
	venues    VenueLister
	orgs      OrganizationLister
	attendees AttendeeLister
}

func NewEventHandler(svc EventService, venues VenueLister, orgs OrganizationLister, attendees AttendeeLister) *EventHandler {
	return &EventHandler{
		svc:       svc,
		venues:    venues,
		orgs:      orgs,
		attendees: attendees,
	}
}

func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	events, err := h.svc.ListEvents(ctx.Request.Context(), p)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "events.tmpl", gin.H{
		"Events": view.EventRows(events),
	})
}

func (h *EventHandler) HandleDashboard(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	events, err := h.svc.ListMyEvents(ctx.Request.Context(), p)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "dashboard.tmpl", gin.H{
		"Events": view.EventRows(events),
	})
}

// HandleShowNewEvent renders the create form, with the existing venues and
// organizations as pick-list options next to the create-new branches.
func (h *EventHandler) HandleShowNewEvent(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	data, err := h.newEventFormData(ctx, p)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "event_new.tmpl", data)
}

func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	if err := ctx.Request.ParseForm(); err != nil {
		renderError(ctx, "event_new.tmpl", gin.H{}, domain.NewValidationError(err.Error()))
		return
	}
	form := request.ParseCreateEventForm(ctx.Request.PostForm)

	req, err := request.BuildCreateRequest(form, p.UserID)
	if err != nil {
		data, ferr := h.newEventFormData(ctx, p)
		if ferr != nil {
			data = gin.H{}
		}
		data["Form"] = form
		renderError(ctx, "event_new.tmpl", data, err)
		return
	}

	details, err := h.svc.CreateEvent(ctx.Request.Context(), p, req)
	if err != nil {
		data, ferr := h.newEventFormData(ctx, p)
		if ferr != nil {
			data = gin.H{}
		}
		data["Form"] = form
		renderError(ctx, "event_new.tmpl", data, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/event/"+details.Event.ID)
}

func (h *EventHandler) HandleEventDetail(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	eventID := ctx.Param("eventID")

	details, err := h.svc.GetEventDetails(ctx.Request.Context(), p, eventID)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	attendees, err := h.attendees.ListEventAttendees(ctx.Request.Context(), p, eventID)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "event_detail.tmpl", gin.H{
		"Event":     view.FlattenEventDetails(details),
		"Attendees": view.AttendeeRows(attendees),
	})
}

func (h *EventHandler) HandleShowEditEvent(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	eventID := ctx.Param("eventID")

	details, err := h.svc.GetEventDetails(ctx.Request.Context(), p, eventID)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "event_edit.tmpl", gin.H{
		"Event": view.FlattenEventDetails(details),
	})
}

func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	eventID := ctx.Param("eventID")

	if err := ctx.Request.ParseForm(); err != nil {
		renderError(ctx, "event_edit.tmpl", gin.H{}, domain.NewValidationError(err.Error()))
		return
	}
	form := request.ParseUpdateEventForm(ctx.Request.PostForm)

	req, err := request.BuildUpdateRequest(form)
	if err != nil {
		h.renderEditError(ctx, p, eventID, err)
		return
	}

	if _, err := h.svc.UpdateEvent(ctx.Request.Context(), p, eventID, req); err != nil {
		h.renderEditError(ctx, p, eventID, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/event/"+eventID)
}

func (h *EventHandler) renderEditError(ctx *gin.Context, p domain.Principal, eventID string, err error) {
	data := gin.H{}
	if details, derr := h.svc.GetEventDetails(ctx.Request.Context(), p, eventID); derr == nil {
		data["Event"] = view.FlattenEventDetails(details)
	}
	renderError(ctx, "event_edit.tmpl", data, err)
}

func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	eventID := ctx.Param("eventID")

	if err := h.svc.DeleteEvent(ctx.Request.Context(), p, eventID); err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *EventHandler) newEventFormData(ctx *gin.Context, p domain.Principal) (gin.H, error) {
	venues, err := h.venues.ListVenues(ctx.Request.Context(), p)
	if err != nil {
		return nil, err
	}

	orgs, err := h.orgs.ListOrganizations(ctx.Request.Context(), p)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"Venues":            view.VenueRows(venues),
		"Organizations":     view.OrganizationRows(orgs),
		"OrganizationTypes": domain.OrganizationTypes,
	}, nil
}
