package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdash/internal/domain"
)

type mockUserService struct {
	updateCalls int
	updated     domain.UpdateUserInput
	updateErr   error
}

func (m *mockUserService) GetUser(ctx context.Context, p domain.Principal, id string) (domain.User, error) {
	return domain.User{ID: id, Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, p domain.Principal, input domain.UpdateUserInput) (domain.User, error) {
	m.updateCalls++
	m.updated = input
	if m.updateErr != nil {
		return domain.User{}, m.updateErr
	}
	return domain.User{ID: p.UserID, Email: "ada@example.com", FirstName: "Grace"}, nil
}

func newProfileTestRouter(t *testing.T, svc *mockUserService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.tmpl")
	r.Use(func(ctx *gin.Context) {
		ctx.Set("principal", domain.Principal{UserID: "user-1", Token: "tok"})
	})

	h := NewProfileHandler(svc)
	r.GET("/dashboard/profile", h.HandleShowProfile)
	r.POST("/dashboard/profile", h.HandleUpdateProfile)
	return r
}

func TestHandleShowProfile_RendersCurrentUser(t *testing.T) {
	r := newProfileTestRouter(t, &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/profile", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
	assert.Contains(t, w.Body.String(), "Ada")
}

func TestHandleUpdateProfile_SendsSparsePatch(t *testing.T) {
	svc := &mockUserService{}
	r := newProfileTestRouter(t, svc)

	w := postForm(r, "/dashboard/profile", url.Values{
		"firstName": {"Grace"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Profile updated successfully")
	require.Equal(t, 1, svc.updateCalls)
	require.NotNil(t, svc.updated.FirstName)
	assert.Equal(t, "Grace", *svc.updated.FirstName)
	assert.Nil(t, svc.updated.LastName)
	assert.Nil(t, svc.updated.Email)
	assert.Nil(t, svc.updated.Password)
}

func TestHandleUpdateProfile_WeakPasswordNeverReachesService(t *testing.T) {
	svc := &mockUserService{}
	r := newProfileTestRouter(t, svc)

	w := postForm(r, "/dashboard/profile", url.Values{
		"newPassword": {"short"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.updateCalls)
}
