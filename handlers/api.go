package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/dashboard"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/store"
)

func (h *Handler) ListOrders(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && status != dashboard.FilterAll && !models.OrderStatus(status).Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Unknown status filter"})
	}

	if err := h.board.Refresh(c.Request().Context()); err != nil {
		return apiError(c, err)
	}

	orders := dashboard.Filter(h.board.Orders(), status)
	return c.JSON(http.StatusOK, orders)
}

func (h *Handler) OrderStats(c echo.Context) error {
	if err := h.board.Refresh(c.Request().Context()); err != nil {
		return apiError(c, err)
	}

	orders := h.board.Orders()
	return c.JSON(http.StatusOK, map[string]any{
		"stats":        dashboard.Aggregate(orders),
		"pendingCount": dashboard.PendingCount(orders),
	})
}

func (h *Handler) PatchOrderStatus(c echo.Context) error {
	var req struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if _, err := h.board.ChangeStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return apiError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]models.OrderStatus{"status": req.Status})
}

func (h *Handler) DeleteOrderAPI(c echo.Context) error {
	confirmed := c.QueryParam("confirm") == "true"
	if _, err := h.board.Delete(c.Request().Context(), c.Param("id"), confirmed); err != nil {
		return apiError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// apiError maps board and store errors onto JSON responses.
func apiError(c echo.Context, err error) error {
	var apiErr *store.APIError
	switch {
	case errors.Is(err, dashboard.ErrUnknownStatus):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, dashboard.ErrNotConfirmed):
		return c.JSON(http.StatusConflict, map[string]string{"error": "Delete requires confirm=true"})
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	case errors.As(err, &apiErr):
		return c.JSON(http.StatusBadGateway, map[string]string{"error": apiErr.Error()})
	default:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Order store unavailable"})
	}
}
