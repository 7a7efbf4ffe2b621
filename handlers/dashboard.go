package handlers

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/dashboard"
	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
)

const (
	orderDateFormat = "1/2/2006"
	loadedAtFormat  = "Jan 2, 2006 15:04:05 UTC"
)

type filterLink struct {
	Label  string
	Class  string
	URL    string
	Active bool
	Badge  int
}

type chartLink struct {
	Label  string
	Class  string
	URL    string
	Active bool
}

type itemView struct {
	Valid    bool
	Name     string
	ImageURL string
}

type orderView struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	City      string
	ZipCode   string
	Total     decimal.Decimal
	Status    models.OrderStatus
	Date      string
	Items     []itemView
	Open      bool
	ToggleURL string
	DeleteURL string
}

func (h *Handler) Dashboard(c echo.Context) error {
	notices := h.sessions.Notices(c.Response(), c.Request())
	if err := h.board.Refresh(c.Request().Context()); err != nil {
		notices = append(notices, dashboard.NoticeLoadFailed)
	}

	orders := h.board.Orders()
	filter := dashboard.NormalizeFilter(c.QueryParam("filter"))
	chart := c.QueryParam("chart")
	view, hasChart := dashboard.ParseChartView(chart)
	if !hasChart {
		chart = ""
	}
	details := c.QueryParam("details")
	back := dashboardURL(filter, chart, details)
	stats := dashboard.Aggregate(orders)

	rows := make([]orderView, 0, len(orders))
	for _, o := range dashboard.Filter(orders, filter) {
		rows = append(rows, h.orderView(o, filter, chart, details, back))
	}

	data := map[string]any{
		"Title":   "Dashboard",
		"Notices": notices,
		"Stats":   stats,
		"Orders":  rows,
		"Back":    back,
		"Filters": filterLinks(filter, chart, details, dashboard.PendingCount(orders)),
		"Charts":  chartLinks(filter, chart, details),
	}
	if t := h.board.LoadedAt(); !t.IsZero() {
		data["LoadedAt"] = t.UTC().Format(loadedAtFormat)
	}
	// The panel looks the order up in the full list, so it stays open when
	// the filter hides its row.
	if details != "" {
		if o, ok := h.board.Order(details); ok {
			v := h.orderView(o, filter, chart, details, back)
			data["Details"] = &v
		}
	}
	if hasChart {
		cd := dashboard.Chart(view, stats)
		data["Chart"] = &cd
		data["ChartTitle"] = view.Title()
	}
	return c.Render(http.StatusOK, "dashboard.html", data)
}

func (h *Handler) orderView(o models.Order, filter, chart, details, back string) orderView {
	v := orderView{
		ID:        o.ID,
		Name:      o.CustomerName(),
		Email:     o.Email,
		Phone:     o.Phone,
		Address:   o.Address,
		City:      o.City,
		ZipCode:   o.ZipCode,
		Total:     o.Total,
		Status:    o.Status,
		Open:      details == o.ID,
		ToggleURL: dashboardURL(filter, chart, dashboard.ToggleDetails(details, o.ID)),
		DeleteURL: "/admin/orders/" + url.PathEscape(o.ID) + "/delete?" + url.Values{"back": {back}}.Encode(),
	}
	if t, ok := o.PlacedAt(); ok {
		v.Date = t.Format(orderDateFormat)
	} else {
		v.Date = "Invalid Date"
	}
	for _, item := range o.CartItems {
		v.Items = append(v.Items, h.itemView(item))
	}
	return v
}

func (h *Handler) itemView(item *models.CartItem) itemView {
	if !item.Valid() {
		return itemView{}
	}
	iv := itemView{Valid: true, Name: item.ProductName}
	if ref := item.ImageRefID(); ref != "" && h.images != nil {
		// An unresolvable reference renders the item without an image.
		if u, err := h.images.URL(ref); err == nil {
			iv.ImageURL = u
		}
	}
	return iv
}

func filterLinks(filter, chart, details string, pending int) []filterLink {
	links := []filterLink{
		{Label: "All Orders", Class: "btn-pink", URL: dashboardURL(dashboard.FilterAll, chart, details), Active: filter == dashboard.FilterAll},
		{Label: "Pending Orders", Class: "btn-yellow", URL: dashboardURL(string(models.OrderStatusPending), chart, details), Badge: pending},
		{Label: "Dispatched Orders", Class: "btn-orange", URL: dashboardURL(string(models.OrderStatusDispatch), chart, details)},
		{Label: "Completed Orders", Class: "btn-emerald", URL: dashboardURL(string(models.OrderStatusSuccess), chart, details)},
	}
	for i, s := range models.Statuses {
		links[i+1].Active = filter == string(s)
	}
	return links
}

func chartLinks(filter, chart, details string) []chartLink {
	return []chartLink{
		{Label: dashboard.ChartOrderCount.Title(), Class: "btn-lime", URL: dashboardURL(filter, string(dashboard.ChartOrderCount), details), Active: chart == string(dashboard.ChartOrderCount)},
		{Label: dashboard.ChartRevenue.Title(), Class: "btn-indigo", URL: dashboardURL(filter, string(dashboard.ChartRevenue), details), Active: chart == string(dashboard.ChartRevenue)},
	}
}
