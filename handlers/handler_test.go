package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/store"
)

func TestDashboardURL(t *testing.T) {
	assert.Equal(t, "/admin/dashboard", dashboardURL("", "", ""))
	assert.Equal(t, "/admin/dashboard", dashboardURL("All", "", ""))
	assert.Equal(t, "/admin/dashboard?chart=revenue&details=o-1&filter=pending", dashboardURL("pending", "revenue", "o-1"))
}

func TestBackURL(t *testing.T) {
	tests := []struct {
		back string
		want string
	}{
		{back: "", want: DashboardPath},
		{back: "/admin/dashboard?filter=success", want: "/admin/dashboard?filter=success"},
		{back: "/admin/dashboardx", want: DashboardPath},
		{back: "//evil.example/admin/dashboard", want: DashboardPath},
	}

	e := echo.New()
	for _, tt := range tests {
		form := url.Values{"back": {tt.back}}
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		c := e.NewContext(req, httptest.NewRecorder())
		assert.Equal(t, tt.want, backURL(c), tt.back)
	}
}

func TestItemView(t *testing.T) {
	h := New(Deps{Images: store.NewImageURLBuilder("https://cdn.sanity.io", "p", "d")})

	assert.False(t, h.itemView(nil).Valid)
	assert.False(t, h.itemView(&models.CartItem{ProductName: "  "}).Valid)

	img := &models.ImageRef{}
	img.Asset.Ref = "not-an-image-ref"
	iv := h.itemView(&models.CartItem{ProductName: "Cap", Image: img})
	assert.True(t, iv.Valid)
	assert.Equal(t, "Cap", iv.Name)
	assert.Empty(t, iv.ImageURL)

	img.Asset.Ref = "image-f00-10x20-jpg"
	iv = h.itemView(&models.CartItem{ProductName: "Cap", Image: img})
	assert.Equal(t, "https://cdn.sanity.io/images/p/d/f00-10x20.jpg", iv.ImageURL)
}
