package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminEmailKey is the echo context key holding the authenticated admin.
const AdminEmailKey = "adminEmail"

// SessionReader reports the admin logged in on a request.
type SessionReader interface {
	Current(r *http.Request) (email string, ok bool)
}

// RequireSession redirects to loginPath unless the request carries a
// logged-in admin session.
func RequireSession(sessions SessionReader, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := sessions.Current(c.Request())
			if !ok {
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			c.Set(AdminEmailKey, email)
			return next(c)
		}
	}
}
