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

type OrganizationService interface {
	ListOrganizations(ctx context.Context, p domain.Principal) ([]domain.Organization, error)
	GetOrganization(ctx context.Context, p domain.Principal, id string) (domain.Organization, error)
	CreateOrganization(ctx context.Context, p domain.Principal, input domain.CreateOrganizationInput) (domain.Organization, error)
	UpdateOrganization(ctx context.Context, p domain.Principal, id string, input domain.UpdateOrganizationInput) (domain.Organization, error)
	DeleteOrganization(ctx context.Context, p domain.Principal, id string) error
	SetOrganizationStatus(ctx context.Context, p domain.Principal, id string, status domain.OrganizationStatus) (domain.Organization, error)
}

type OrganizationHandler struct {
	svc OrganizationService
}

func NewOrganizationHandler(svc OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		svc: svc,
	}
}

func (h *OrganizationHandler) HandleListOrganizations(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	orgs, err := h.svc.ListOrganizations(ctx.Request.Context(), p)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "organizations.tmpl", gin.H{
		"Organizations": view.OrganizationRows(orgs),
	})
}

func (h *OrganizationHandler) HandleShowNewOrganization(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "organization_new.tmpl", gin.H{
		"Types": domain.OrganizationTypes,
	})
}

func (h *OrganizationHandler) HandleCreateOrganization(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	var form request.CreateOrganizationForm
	if err := ctx.ShouldBind(&form); err != nil {
		renderError(ctx, "organization_new.tmpl", gin.H{}, domain.NewValidationError(err.Error()))
		return
	}

	data := gin.H{"Form": form, "Types": domain.OrganizationTypes}

	if err := form.Validate(); err != nil {
		renderError(ctx, "organization_new.tmpl", data, domain.NewValidationError(err.Error()))
		return
	}

	org, err := h.svc.CreateOrganization(ctx.Request.Context(), p, form.Input())
	if err != nil {
		renderError(ctx, "organization_new.tmpl", data, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/organization/"+org.ID)
}

func (h *OrganizationHandler) HandleOrganizationDetail(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	orgID := ctx.Param("orgID")

	org, err := h.svc.GetOrganization(ctx.Request.Context(), p, orgID)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "organization_detail.tmpl", gin.H{
		"Organization": view.FlattenOrganization(org),
	})
}

func (h *OrganizationHandler) HandleShowEditOrganization(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	orgID := ctx.Param("orgID")

	org, err := h.svc.GetOrganization(ctx.Request.Context(), p, orgID)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "organization_edit.tmpl", gin.H{
		"Organization": view.FlattenOrganization(org),
		"Types":        domain.OrganizationTypes,
	})
}

func (h *OrganizationHandler) HandleUpdateOrganization(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	orgID := ctx.Param("orgID")

	var form request.UpdateOrganizationForm
	if err := ctx.ShouldBind(&form); err != nil {
		renderError(ctx, "organization_edit.tmpl", gin.H{}, domain.NewValidationError(err.Error()))
		return
	}

	if err := form.Validate(); err != nil {
		renderError(ctx, "organization_edit.tmpl", gin.H{"Form": form}, domain.NewValidationError(err.Error()))
		return
	}

	if _, err := h.svc.UpdateOrganization(ctx.Request.Context(), p, orgID, form.Input()); err != nil {
		renderError(ctx, "organization_edit.tmpl", gin.H{"Form": form}, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/organization/"+orgID)
}

func (h *OrganizationHandler) HandleDeleteOrganization(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	orgID := ctx.Param("orgID")

	if err := h.svc.DeleteOrganization(ctx.Request.Context(), p, orgID); err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/organizations")
}

func (h *OrganizationHandler) HandleOrganizationStatus(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)
	orgID := ctx.Param("orgID")

	status := domain.OrganizationStatus(ctx.Param("status"))
	switch status {
	case domain.OrganizationStatusActive, domain.OrganizationStatusInactive,
		domain.OrganizationStatusSuspended:
	default:
		renderErrorPage(ctx, domain.NewValidationError("Invalid organization status"))
		return
	}

	if _, err := h.svc.SetOrganizationStatus(ctx.Request.Context(), p, orgID, status); err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/dashboard/organization/"+orgID)
}
