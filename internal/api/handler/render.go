// Package handler holds the page handlers. Each handler owns the routes of
// one resource, declares the service interface it consumes, and renders
// html/template pages from view models.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventdash/internal/domain"
	"eventdash/internal/gateway"
)

const genericErrorMessage = "An unexpected error occurred"

// renderError re-renders a form page with the failure state attached.
// Validation errors keep their message and details; backend errors pass
// through at the backend's status; anything else logs and renders the
// generic message.
func renderError(ctx *gin.Context, page string, data gin.H, err error) {
	if data == nil {
		data = gin.H{}
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		data["Error"] = vErr.Message
		data["ErrorDetails"] = vErr.Details
		ctx.HTML(http.StatusBadRequest, page, data)
		return
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		data["Error"] = apiErr.Message
		data["ErrorDetails"] = apiErr.Details
		ctx.HTML(apiErr.StatusCode, page, data)
		return
	}

	zap.L().Error("unexpected failure",
		zap.String("path", ctx.Request.URL.Path),
		zap.Error(err),
	)

	data["Error"] = genericErrorMessage
	ctx.HTML(http.StatusInternalServerError, page, data)
}

// renderErrorPage is renderError for GET pages that have no form to
// re-render.
func renderErrorPage(ctx *gin.Context, err error) {
	renderError(ctx, "error.tmpl", gin.H{}, err)
}
