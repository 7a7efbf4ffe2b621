package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
)

func decodeOrderDocument(t *testing.T, doc bson.M) models.Order {
	t.Helper()
	data, err := bson.Marshal(doc)
	require.NoError(t, err)
	var od orderDocument
	require.NoError(t, bson.Unmarshal(data, &od))
	return od.toModel()
}

func TestOrderDocument_ToModel(t *testing.T) {
	o := decodeOrderDocument(t, bson.M{
		"_id":       "order-7",
		"firstName": "Grace",
		"lastName":  "Hopper",
		"total":     49.99,
		"discount":  5.0,
		"orderDate": "2025-02-01",
		"status":    "dispatch",
		"cartItems": bson.A{
			bson.M{"productName": "Jordan 1", "imageRef": "image-abc-10x10-png"},
			nil,
			bson.M{"productName": "Socks"},
		},
	})

	assert.Equal(t, "order-7", o.ID)
	assert.Equal(t, "Grace Hopper", o.CustomerName())
	assert.Equal(t, "49.99", o.Total.String())
	assert.Equal(t, "5", o.Discount.String())
	assert.Equal(t, models.OrderStatusDispatch, o.Status)

	require.Len(t, o.CartItems, 3)
	assert.Equal(t, "image-abc-10x10-png", o.CartItems[0].ImageRefID())
	assert.Nil(t, o.CartItems[1])
	assert.Nil(t, o.CartItems[2].Image)
	assert.True(t, o.CartItems[2].Valid())
}

func TestOrderDocument_ToModelNilCart(t *testing.T) {
	o := decodeOrderDocument(t, bson.M{"_id": "x"})
	assert.Nil(t, o.CartItems)
	assert.Equal(t, models.OrderStatus(""), o.Status)

	o = decodeOrderDocument(t, bson.M{"_id": "y", "cartItems": "not-a-list"})
	assert.Nil(t, o.CartItems)
}

func TestOrderDocument_MalformedCartItems(t *testing.T) {
	o := decodeOrderDocument(t, bson.M{
		"_id":    "order-8",
		"status": "pending",
		"cartItems": bson.A{
			"garbage",
			bson.M{"productName": 42},
			bson.M{"productName": "Hoodie", "imageRef": bson.M{"asset": "x"}},
		},
	})

	assert.Equal(t, "order-8", o.ID)
	require.Len(t, o.CartItems, 3)
	assert.False(t, o.CartItems[0].Valid())
	assert.False(t, o.CartItems[1].Valid())
	assert.True(t, o.CartItems[2].Valid())
	assert.Nil(t, o.CartItems[2].Image)
}
