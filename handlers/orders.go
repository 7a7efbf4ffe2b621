package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/dashboard"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
)

// ConfirmDelete asks before an order is deleted.
func (h *Handler) ConfirmDelete(c echo.Context) error {
	id := c.Param("id")
	data := map[string]any{
		"Title": "Delete order",
		"ID":    id,
		"Back":  backURL(c),
	}
	if o, ok := h.board.Order(id); ok {
		v := h.orderView(o, "", "", "", DashboardPath)
		data["Order"] = &v
	}
	return c.Render(http.StatusOK, "confirm_delete.html", data)
}

func (h *Handler) DeleteOrder(c echo.Context) error {
	back := backURL(c)
	confirmed := c.FormValue("confirm") == "yes"

	notice, err := h.board.Delete(c.Request().Context(), c.Param("id"), confirmed)
	if errors.Is(err, dashboard.ErrNotConfirmed) {
		return c.Redirect(http.StatusSeeOther, back)
	}
	h.flash(c, notice)
	return c.Redirect(http.StatusSeeOther, back)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	status := models.OrderStatus(c.FormValue("status"))
	notice, _ := h.board.ChangeStatus(c.Request().Context(), c.Param("id"), status)
	h.flash(c, notice)
	return c.Redirect(http.StatusSeeOther, backURL(c))
}

func (h *Handler) flash(c echo.Context, n *dashboard.Notice) {
	if n == nil {
		return
	}
	if err := h.sessions.AddNotice(c.Response(), c.Request(), *n); err != nil {
		log.Printf("notice: %v", err)
	}
}
