package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("cancelled").Valid())
	assert.False(t, OrderStatus("PENDING").Valid())
}

func TestOrder_DecodeDegradedDocument(t *testing.T) {
	raw := `{
		"_id": "order-1",
		"firstName": "Ada",
		"lastName": "Lovelace",
		"total": 129.5,
		"discount": null,
		"orderDate": "2025-01-20T10:30:00.000Z",
		"status": null,
		"cartItems": [
			{"productName": "Air Max", "image": {"asset": {"_ref": "image-abc-100x100-png"}}},
			null,
			{"productName": ""}
		]
	}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))

	assert.Equal(t, "order-1", o.ID)
	assert.Equal(t, "Ada Lovelace", o.CustomerName())
	assert.True(t, o.Total.Equal(decimal.RequireFromString("129.5")))
	assert.True(t, o.Discount.IsZero())
	assert.Equal(t, OrderStatus(""), o.Status)
	require.Len(t, o.CartItems, 3)

	assert.True(t, o.CartItems[0].Valid())
	assert.Equal(t, "image-abc-100x100-png", o.CartItems[0].ImageRefID())
	assert.False(t, o.CartItems[1].Valid())
	assert.Equal(t, "", o.CartItems[1].ImageRefID())
	assert.False(t, o.CartItems[2].Valid())
}

func TestOrder_DecodeMalformedCartItems(t *testing.T) {
	raw := `{
		"_id": "order-2",
		"cartItems": [
			"garbage",
			42,
			{"productName": 42},
			{"productName": "Hoodie", "image": "img-string"},
			{"productName": "Cap", "image": {"asset": "broken"}}
		]
	}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))
	require.Len(t, o.CartItems, 5)

	for _, i := range []int{0, 1, 2} {
		require.NotNil(t, o.CartItems[i])
		assert.False(t, o.CartItems[i].Valid(), i)
	}
	assert.True(t, o.CartItems[3].Valid())
	assert.Nil(t, o.CartItems[3].Image)
	assert.True(t, o.CartItems[4].Valid())
	assert.Equal(t, "", o.CartItems[4].ImageRefID())
}

func TestOrder_CartItemsRoundTrip(t *testing.T) {
	in := Order{ID: "a", CartItems: CartItems{{ProductName: "Cap", Image: &ImageRef{}}, nil}}
	in.CartItems[0].Image.Asset.Ref = "image-abc-1x1-png"

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Order
	require.NoError(t, json.Unmarshal(data, &out))
	require.Len(t, out.CartItems, 2)
	assert.Equal(t, "image-abc-1x1-png", out.CartItems[0].ImageRefID())
	assert.Nil(t, out.CartItems[1])
}

func TestOrder_NullCart(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"x","cartItems":null}`), &o))
	assert.Nil(t, o.CartItems)
}

func TestOrder_PlacedAt(t *testing.T) {
	tests := []struct {
		date string
		want time.Time
		ok   bool
	}{
		{date: "2025-01-20T10:30:00Z", want: time.Date(2025, 1, 20, 10, 30, 0, 0, time.UTC), ok: true},
		{date: "2025-01-20", want: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), ok: true},
		{date: "", ok: false},
		{date: "yesterday", ok: false},
	}
	for _, tt := range tests {
		got, ok := Order{OrderDate: tt.date}.PlacedAt()
		assert.Equal(t, tt.ok, ok, tt.date)
		if tt.ok {
			assert.True(t, tt.want.Equal(got), tt.date)
		}
	}
}
