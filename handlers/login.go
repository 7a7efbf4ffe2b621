package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/dashboard"
)

func (h *Handler) ShowLogin(c echo.Context) error {
	if _, ok := h.sessions.Current(c.Request()); ok {
		return c.Redirect(http.StatusSeeOther, DashboardPath)
	}
	return c.Render(http.StatusOK, "login.html", map[string]any{
		"Title":   "Login",
		"Notices": h.sessions.Notices(c.Response(), c.Request()),
	})
}

func (h *Handler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	ok, err := h.auth.Authenticate(c.Request().Context(), email, password)
	if err != nil {
		log.Printf("login: %v", err)
	}
	h.logins.Login(ok)

	if !ok {
		return c.Render(http.StatusUnauthorized, "login.html", map[string]any{
			"Title":   "Login",
			"Email":   email,
			"Notices": []dashboard.Notice{dashboard.NoticeBadLogin},
		})
	}

	if err := h.sessions.Login(c.Response(), c.Request(), email); err != nil {
		log.Printf("login: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start session")
	}
	return c.Redirect(http.StatusSeeOther, DashboardPath)
}

func (h *Handler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Response(), c.Request()); err != nil {
		log.Printf("logout: %v", err)
	}
	return c.Redirect(http.StatusSeeOther, LoginPath)
}
