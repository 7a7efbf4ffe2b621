package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/utils"
)

type stubSessions struct {
	email string
	ok    bool
}

func (s stubSessions) Current(*http.Request) (string, bool) { return s.email, s.ok }

func protectedHandler(c echo.Context) error {
	return c.String(http.StatusOK, "hello "+c.Get(AdminEmailKey).(string))
}

func serve(mw echo.MiddlewareFunc, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := mw(protectedHandler)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireSession_Redirects(t *testing.T) {
	rec := serve(RequireSession(stubSessions{}, "/admin"), httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
	assert.Empty(t, rec.Body.String())
}

func TestRequireSession_PassesThrough(t *testing.T) {
	rec := serve(RequireSession(stubSessions{email: "a@b.c", ok: true}, "/admin"), httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello a@b.c", rec.Body.String())
}

func TestAPIAuth(t *testing.T) {
	secret := []byte("api-secret")
	valid, err := utils.GenerateJWT("a@b.c", secret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{name: "missing", header: "", code: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, code: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not.a.token", code: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + valid, code: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(APIAuth(secret), req)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
