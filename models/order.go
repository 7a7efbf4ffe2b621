package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusDispatch OrderStatus = "dispatch"
	OrderStatusSuccess  OrderStatus = "success"
)

// Statuses lists the recognized lifecycle labels in workflow order.
var Statuses = []OrderStatus{OrderStatusPending, OrderStatusDispatch, OrderStatusSuccess}

// Valid reports whether s is one of the recognized lifecycle labels.
// The empty status (not yet categorized) is not valid.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusDispatch, OrderStatusSuccess:
		return true
	}
	return false
}

// ImageRef is a content store image object. Only the asset reference is used.
type ImageRef struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
}

type CartItem struct {
	ProductName string    `json:"productName"`
	Image       *ImageRef `json:"image"`
}

var jsonNull = []byte("null")

// UnmarshalJSON never fails. A line that is not an object, or whose
// productName is not a string, decodes as an invalid item; an image of the
// wrong shape is dropped.
func (ci *CartItem) UnmarshalJSON(data []byte) error {
	*ci = CartItem{}
	var raw struct {
		ProductName json.RawMessage `json:"productName"`
		Image       json.RawMessage `json:"image"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if err := json.Unmarshal(raw.ProductName, &ci.ProductName); err != nil {
		ci.ProductName = ""
		return nil
	}
	if len(raw.Image) > 0 && !bytes.Equal(raw.Image, jsonNull) {
		var img ImageRef
		if err := json.Unmarshal(raw.Image, &img); err == nil {
			ci.Image = &img
		}
	}
	return nil
}

// CartItems decodes leniently: a value that is not an array yields no
// items, and each entry goes through CartItem.UnmarshalJSON.
type CartItems []*CartItem

func (c *CartItems) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*c = nil
		return nil
	}
	items := make(CartItems, len(raw))
	for i, entry := range raw {
		if bytes.Equal(bytes.TrimSpace(entry), jsonNull) {
			continue
		}
		item := &CartItem{}
		item.UnmarshalJSON(entry)
		items[i] = item
	}
	*c = items
	return nil
}

// Valid reports whether the line can be rendered as a product.
func (ci *CartItem) Valid() bool {
	return ci != nil && strings.TrimSpace(ci.ProductName) != ""
}

// ImageRefID returns the asset reference, or "" when the item has no image.
func (ci *CartItem) ImageRefID() string {
	if ci == nil || ci.Image == nil {
		return ""
	}
	return ci.Image.Asset.Ref
}

type Order struct {
	ID        string          `json:"_id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Address   string          `json:"address"`
	City      string          `json:"city"`
	ZipCode   string          `json:"zipCode"`
	Total     decimal.Decimal `json:"total"`
	Discount  decimal.Decimal `json:"discount"`
	OrderDate string          `json:"orderDate"`
	Status    OrderStatus     `json:"status"`
	// CartItems and its entries may be nil; see CartItem.Valid.
	CartItems CartItems `json:"cartItems"`
}

func (o Order) CustomerName() string {
	return strings.TrimSpace(o.FirstName + " " + o.LastName)
}

var orderDateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// PlacedAt parses OrderDate. ok is false when the date is empty or malformed.
func (o Order) PlacedAt() (t time.Time, ok bool) {
	if o.OrderDate == "" {
		return time.Time{}, false
	}
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, o.OrderDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
