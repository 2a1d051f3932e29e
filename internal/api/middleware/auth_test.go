package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventdash/internal/config"
	"eventdash/internal/domain"
	"eventdash/internal/session"
)

func newTestRouter(sessions *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dashboard", NewAuthenticator(sessions).RequireSession(), func(ctx *gin.Context) {
		p := GetPrincipal(ctx)
		ctx.String(http.StatusOK, p.UserID)
	})

	return r
}

func newTestSessions() *session.Manager {
	return session.NewManager(&config.SessionConfig{
		CookieName:  "event_management_session",
		SigningKey:  "test-secret",
		MaxAgeHours: 1,
	})
}

func TestRequireSession_NoCookieRedirects(t *testing.T) {
	r := newTestRouter(newTestSessions())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireSession_ValidCookiePasses(t *testing.T) {
	sessions := newTestSessions()
	r := newTestRouter(sessions)

	cookie, err := sessions.Issue("user-1", "tok")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestGetPrincipal_ZeroWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, domain.Principal{}, GetPrincipal(ctx))
}
