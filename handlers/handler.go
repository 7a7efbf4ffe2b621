package handlers

import (
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/auth"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/dashboard"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/store"
)

const (
	LoginPath     = "/admin"
	DashboardPath = "/admin/dashboard"
)

// LoginRecorder counts login attempts.
type LoginRecorder interface {
	Login(ok bool)
}

type nopLoginRecorder struct{}

func (nopLoginRecorder) Login(bool) {}

type Deps struct {
	Board     *dashboard.Board
	Sessions  *auth.Sessions
	Auth      auth.Authenticator
	Images    *store.ImageURLBuilder
	Logins    LoginRecorder
	JWTSecret []byte
	JWTTTL    time.Duration
}

// Handler serves the admin pages and the JSON API.
type Handler struct {
	board     *dashboard.Board
	sessions  *auth.Sessions
	auth      auth.Authenticator
	images    *store.ImageURLBuilder
	logins    LoginRecorder
	jwtSecret []byte
	jwtTTL    time.Duration
}

func New(d Deps) *Handler {
	h := &Handler{
		board:     d.Board,
		sessions:  d.Sessions,
		auth:      d.Auth,
		images:    d.Images,
		logins:    d.Logins,
		jwtSecret: d.JWTSecret,
		jwtTTL:    d.JWTTTL,
	}
	if h.logins == nil {
		h.logins = nopLoginRecorder{}
	}
	return h
}

// dashboardURL builds a dashboard link carrying the view state.
func dashboardURL(filter, chart, details string) string {
	q := url.Values{}
	if filter != "" && filter != dashboard.FilterAll {
		q.Set("filter", filter)
	}
	if chart != "" {
		q.Set("chart", chart)
	}
	if details != "" {
		q.Set("details", details)
	}
	if len(q) == 0 {
		return DashboardPath
	}
	return DashboardPath + "?" + q.Encode()
}

// backURL returns the dashboard view to return to after a form post.
// Only dashboard links are honoured.
func backURL(c echo.Context) string {
	back := c.FormValue("back")
	if back == DashboardPath || strings.HasPrefix(back, DashboardPath+"?") {
		return back
	}
	return DashboardPath
}
