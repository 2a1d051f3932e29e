package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventdash/internal/domain"
	"eventdash/internal/session"
)

const principalKey = "principal"

type Authenticator struct {
	sessions *session.Manager
}

func NewAuthenticator(sessions *session.Manager) *Authenticator {
	return &Authenticator{
		sessions: sessions,
	}
}

// RequireSession resolves the session cookie into a principal and stores it
// on the gin context. Requests without a valid session are redirected to the
// login page.
func (a *Authenticator) RequireSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		p, err := a.sessions.Principal(ctx.Request)
		if err != nil {
			ctx.Redirect(http.StatusSeeOther, "/login")
			ctx.Abort()
			return
		}

		ctx.Set(principalKey, p)
		ctx.Next()
	}
}

// GetPrincipal returns the principal RequireSession stored. The zero value
// means the middleware did not run, which is a routing bug.
func GetPrincipal(ctx *gin.Context) domain.Principal {
	v, ok := ctx.Get(principalKey)
	if !ok {
		return domain.Principal{}
	}

	p, ok := v.(domain.Principal)
	if !ok {
		return domain.Principal{}
	}

	return p
}
