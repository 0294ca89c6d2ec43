package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/unithesis/portal/core/session"
)

// contextSessionKey is where the guards stash the decoded session for handlers.
const contextSessionKey = "session"

// requireAuth guards routes open to any authenticated role. Unauthenticated
// navigation redirects to root, where the login view renders.
func requireAuth(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, ok := store.Current(ctx)
			if !ok {
				return ctx.Redirect(http.StatusSeeOther, "/")
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

// requireRole guards a role-gated route. A wrong (or missing) role redirects
// to root, which renders that role's own dashboard — the visible effect is a
// bounce to the dashboard, never an error page. This is a flat guard: all
// fine-grained authorization stays with the upstream API.
func requireRole(store session.Store, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, ok := store.Current(ctx)
			if !ok || sess.Role != role {
				return ctx.Redirect(http.StatusSeeOther, "/")
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

func contextSession(ctx echo.Context) (session.Session, bool) {
	sess, ok := ctx.Get(contextSessionKey).(session.Session)
	return sess, ok
}
