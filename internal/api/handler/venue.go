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

type VenueService interface {
	ListVenues(ctx context.Context, p domain.Principal) ([]domain.Venue, error)
	GetVenue(ctx context.Context, p domain.Principal, id string) (domain.Venue, error)
	CreateVenue(ctx context.Context, p domain.Principal, input domain.CreateVenueInput) (domain.Venue, error)
	UpdateVenue(ctx context.Context, p domain.Principal, id string, input domain.UpdateVenueInput) (domain.Venue, error)
	DeleteVenue(ctx context.Context, p domain.Principal, id string) error
	SetVenueStatus(ctx context.Context, p domain.Principal, id string, status domain.VenueStatus) (domain.Venue, error)
}

type VenueHandler struct {
	svc VenueService
}

func NewVenueHandler(svc VenueService) *VenueHandler {
	return &VenueHandler{
		svc: svc,
	}
}

func (h *VenueHandler) HandleListVenues(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	venues, err := h.svc.ListVenues(ctx.Request.Context(), p)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "venues.tmpl", gin.H{
		"Venues": view.VenueRows(venues),
	})
}

func (h *VenueHandler) HandleShowNewVenue(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "venue_new.tmpl", gin.H{})
}

func (h *VenueHandler) HandleCreateVenue(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	var form request.CreateVenueForm
	if err := ctx.ShouldBind(&form); err != nil {
		renderError(ctx, "venue_new.tmpl", gin.H{}, domain.NewValidationError(err.Error()))
		return
	}

	data := gin.H{"Form": form}

	if err := form.Validate(); err != nil {
		renderError(ctx, "venue_new.tmpl", data, domain.NewValidationError(err.Error()))
		return
	}

	venue, err := h.svc.CreateVenue(ctx.Request.Context(), p, form.Input())
	if err != nil {
		renderError(ctx, "venue_new.tmpl", data, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/venue/"+venue.ID)
}

func (h *VenueHandler) HandleVenueDetail(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	venueID := ctx.Param("venueID")

	venue, err := h.svc.GetVenue(ctx.Request.Context(), p, venueID)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "venue_detail.tmpl", gin.H{
		"Venue": view.FlattenVenue(venue),
	})
}

func (h *VenueHandler) HandleShowEditVenue(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	venueID := ctx.Param("venueID")

	venue, err := h.svc.GetVenue(ctx.Request.Context(), p, venueID)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "venue_edit.tmpl", gin.H{
		"Venue": view.FlattenVenue(venue),
	})
}

func (h *VenueHandler) HandleUpdateVenue(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	venueID := ctx.Param("venueID")

	var form request.UpdateVenueForm
	if err := ctx.ShouldBind(&form); err != nil {
		renderError(ctx, "venue_edit.tmpl", gin.H{}, domain.NewValidationError(err.Error()))
		return
	}

	if err := form.Validate(); err != nil {
		renderError(ctx, "venue_edit.tmpl", gin.H{"Form": form}, domain.NewValidationError(err.Error()))
		return
	}

	if _, err := h.svc.UpdateVenue(ctx.Request.Context(), p, venueID, form.Input()); err != nil {
		renderError(ctx, "venue_edit.tmpl", gin.H{"Form": form}, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/venue/"+venueID)
}

func (h *VenueHandler) HandleDeleteVenue(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	venueID := ctx.Param("venueID")

	if err := h.svc.DeleteVenue(ctx.Request.Context(), p, venueID); err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/venues")
}

// HandleVenueStatus drives the status-action buttons on the detail page.
// The target status comes from the route, so anything outside the known
// set is rejected before reaching the backend.
func (h *VenueHandler) HandleVenueStatus(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	venueID := ctx.Param("venueID")

	status := domain.VenueStatus(ctx.Param("status"))
	switch status {
	case domain.VenueStatusAvailable, domain.VenueStatusUnavailable,
		domain.VenueStatusMaintenance, domain.VenueStatusClosed:
	default:
		renderErrorPage(ctx, domain.NewValidationError("Invalid venue status"))
		return
	}

	if _, err := h.svc.SetVenueStatus(ctx.Request.Context(), p, venueID, status); err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/venue/"+venueID)
}
