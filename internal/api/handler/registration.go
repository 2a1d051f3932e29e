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

type AttendeeService interface {
	Register(ctx context.Context, p domain.Principal, eventID string) (domain.EventAttendee, error)
	ListEventAttendees(ctx context.Context, p domain.Principal, eventID string) ([]domain.EventAttendee, error)
	ListMyRegistrations(ctx context.Context, p domain.Principal) ([]domain.EventAttendee, error)
	UpdateStatus(ctx context.Context, p domain.Principal, id string, status domain.AttendeeStatus) (domain.EventAttendee, error)
	CancelRegistration(ctx context.Context, p domain.Principal, id string) error
	PurchaseTickets(ctx context.Context, p domain.Principal, input domain.PurchaseTicketInput) (domain.AttendeeTicket, error)
}

type PublicEventLister interface {
	ListPublicEvents(ctx context.Context, p domain.Principal) ([]domain.EventSummary, error)
}

// RegistrationHandler serves the attendee side: browsing other organizers'
// events, registering, cancelling, and buying tickets.
type RegistrationHandler struct {
	svc    AttendeeService
	events PublicEventLister
}

func NewRegistrationHandler(svc AttendeeService, events PublicEventLister) *RegistrationHandler {
	return &RegistrationHandler{
		svc:    svc,
		events: events,
	}
}

func (h *RegistrationHandler) HandleRegistrations(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	data, err := h.registrationsPageData(ctx, p)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "registrations.tmpl", data)
}

func (h *RegistrationHandler) HandleRegister(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	eventID := ctx.Param("eventID")

	if _, err := h.svc.Register(ctx.Request.Context(), p, eventID); err != nil {
		h.renderRegistrationsError(ctx, p, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/registrations")
}

func (h *RegistrationHandler) HandleCancelRegistration(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	attendeeID := ctx.Param("attendeeID")

	if err := h.svc.CancelRegistration(ctx.Request.Context(), p, attendeeID); err != nil {
		h.renderRegistrationsError(ctx, p, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/registrations")
}

func (h *RegistrationHandler) HandleUpdateAttendeeStatus(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	attendeeID := ctx.Param("attendeeID")

	var form request.UpdateAttendeeStatusForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.renderRegistrationsError(ctx, p, domain.NewValidationError(err.Error()))
		return
	}
	if err := form.Validate(); err != nil {
		h.renderRegistrationsError(ctx, p, domain.NewValidationError(err.Error()))
		return
	}

	if _, err := h.svc.UpdateStatus(ctx.Request.Context(), p, attendeeID, domain.AttendeeStatus(form.Status)); err != nil {
		h.renderRegistrationsError(ctx, p, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/registrations")
}

func (h *RegistrationHandler) HandlePurchaseTickets(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	var form request.PurchaseTicketForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.renderRegistrationsError(ctx, p, domain.NewValidationError(err.Error()))
		return
	}
	if err := form.Validate(); err != nil {
		h.renderRegistrationsError(ctx, p, domain.NewValidationError(err.Error()))
		return
	}

	_, err := h.svc.PurchaseTickets(ctx.Request.Context(), p, domain.PurchaseTicketInput{
		AttendeeID: form.AttendeeID,
		TicketID:   form.TicketID,
		Quantity:   form.Quantity,
	})
	if err != nil {
		h.renderRegistrationsError(ctx, p, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/registrations")
}

func (h *RegistrationHandler) registrationsPageData(ctx *gin.Context, p domain.Principal) (gin.H, error) {
	events, err := h.events.ListPublicEvents(ctx.Request.Context(), p)
	if err != nil {
		return nil, err
	}

	registrations, err := h.svc.ListMyRegistrations(ctx.Request.Context(), p)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"Events":        view.EventRows(events),
		"Registrations": view.AttendeeRows(registrations),
	}, nil
}

func (h *RegistrationHandler) renderRegistrationsError(ctx *gin.Context, p domain.Principal, err error) {
	data, derr := h.registrationsPageData(ctx, p)
	if derr != nil {
		data = gin.H{}
	}
	renderError(ctx, "registrations.tmpl", data, err)
}
