package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventdash/internal/api/handler/request"
	"eventdash/internal/domain"
	"eventdash/internal/service"
	"eventdash/internal/session"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.LoginResponse, error)
	Register(ctx context.Context, input domain.CreateUserInput) (domain.LoginResponse, error)
}

type AuthHandler struct {
	svc      AuthService
	sessions *session.Manager
}

func NewAuthHandler(svc AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		sessions: sessions,
	}
}

func (h *AuthHandler) HandleShowLogin(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.tmpl", gin.H{"Email": ""})
}

func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var form request.LoginForm
	if err := ctx.ShouldBind(&form); err != nil {
		renderError(ctx, "login.tmpl", gin.H{}, domain.NewValidationError(err.Error()))
		return
	}

	data := gin.H{"Email": form.Email}

	if err := form.Validate(); err != nil {
		renderError(ctx, "login.tmpl", data, domain.NewValidationError(err.Error()))
		return
	}

	resp, err := h.svc.Login(ctx.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongCredentials) {
			renderError(ctx, "login.tmpl", data, domain.NewValidationError(service.ErrWrongCredentials.Error()))
			return
		}

		renderError(ctx, "login.tmpl", data, err)
		return
	}

	h.startSession(ctx, "login.tmpl", data, resp)
}

func (h *AuthHandler) HandleShowRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.tmpl", gin.H{
		"Email":     "",
		"FirstName": "",
		"LastName":  "",
		"Phone":     "",
	})
}

func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var form request.RegisterForm
	if err := ctx.ShouldBind(&form); err != nil {
		renderError(ctx, "register.tmpl", gin.H{}, domain.NewValidationError(err.Error()))
		return
	}

	data := gin.H{
		"Email":     form.Email,
		"FirstName": form.FirstName,
		"LastName":  form.LastName,
		"Phone":     form.Phone,
	}

	if err := form.Validate(); err != nil {
		renderError(ctx, "register.tmpl", data, domain.NewValidationError(err.Error()))
		return
	}

	resp, err := h.svc.Register(ctx.Request.Context(), domain.CreateUserInput{
		Email:     form.Email,
		Password:  form.Password,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Phone:     form.Phone,
	})
	if err != nil {
		renderError(ctx, "register.tmpl", data, err)
		return
	}

	h.startSession(ctx, "register.tmpl", data, resp)
}

func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	http.SetCookie(ctx.Writer, h.sessions.Expire())
	ctx.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) startSession(ctx *gin.Context, page string, data gin.H, resp domain.LoginResponse) {
	cookie, err := h.sessions.Issue(resp.User.ID, resp.Token)
	if err != nil {
		zap.L().Error("failed to issue session cookie", zap.Error(err))
		renderError(ctx, page, data, err)
		return
	}

	http.SetCookie(ctx.Writer, cookie)
	ctx.Redirect(http.StatusSeeOther, "/dashboard")
}
