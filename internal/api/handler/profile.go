package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventdash/internal/api/handler/request"
	"eventdash/internal/api/middleware"
	"eventdash/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, p domain.Principal, id string) (domain.User, error)
	UpdateProfile(ctx context.Context, p domain.Principal, input domain.UpdateUserInput) (domain.User, error)
}

type ProfileHandler struct {
	svc UserService
}

func NewProfileHandler(svc UserService) *ProfileHandler {
	return &ProfileHandler{
		svc: svc,
	}
}

func (h *ProfileHandler) HandleShowProfile(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	user, err := h.svc.GetUser(ctx.Request.Context(), p, p.UserID)
	if err != nil {
		renderErrorPage(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "profile.tmpl", gin.H{"User": user})
}

func (h *ProfileHandler) HandleUpdateProfile(ctx *gin.Context) {
	p := middleware.GetPrincipal(ctx)

	var form request.ProfileForm
	if err := ctx.ShouldBind(&form); err != nil {
		h.renderProfileError(ctx, p, domain.NewValidationError(err.Error()))
		return
	}

	if err := form.Validate(); err != nil {
		h.renderProfileError(ctx, p, domain.NewValidationError(err.Error()))
		return
	}

	user, err := h.svc.UpdateProfile(ctx.Request.Context(), p, form.Input())
	if err != nil {
		h.renderProfileError(ctx, p, err)
		return
	}

	ctx.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"User":    user,
		"Success": "Profile updated successfully",
	})
}

func (h *ProfileHandler) renderProfileError(ctx *gin.Context, p domain.Principal, err error) {
	data := gin.H{}
	if user, uerr := h.svc.GetUser(ctx.Request.Context(), p, p.UserID); uerr == nil {
		data["User"] = user
	}
	renderError(ctx, "profile.tmpl", data, err)
}
