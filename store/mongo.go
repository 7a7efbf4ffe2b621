package store

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
)

const ordersCollection = "orders"

// MongoStore keeps orders in a MongoDB collection with cart items embedded.
type MongoStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewMongoStore(db *mongo.Database, timeout time.Duration) *MongoStore {
	return &MongoStore{collection: db.Collection(ordersCollection), timeout: timeout}
}

type orderDocument struct {
	ID        string        `bson:"_id"`
	FirstName string        `bson:"firstName"`
	LastName  string        `bson:"lastName"`
	Phone     string        `bson:"phone"`
	Email     string        `bson:"email"`
	Address   string        `bson:"address"`
	City      string        `bson:"city"`
	ZipCode   string        `bson:"zipCode"`
	Total     float64       `bson:"total"`
	Discount  float64       `bson:"discount"`
	OrderDate string        `bson:"orderDate"`
	Status    string        `bson:"status,omitempty"`
	CartItems bson.RawValue `bson:"cartItems"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty"`
}

func (d *orderDocument) toModel() models.Order {
	return models.Order{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Email:     d.Email,
		Address:   d.Address,
		City:      d.City,
		ZipCode:   d.ZipCode,
		Total:     decimal.NewFromFloat(d.Total),
		Discount:  decimal.NewFromFloat(d.Discount),
		OrderDate: d.OrderDate,
		Status:    models.OrderStatus(d.Status),
		CartItems: cartItemsFromBSON(d.CartItems),
	}
}

// cartItemsFromBSON decodes embedded cart lines ({productName, imageRef})
// without failing: a missing or non-array field gives no items, and an entry
// that is not a document or lacks a string productName becomes an invalid item.
func cartItemsFromBSON(v bson.RawValue) models.CartItems {
	arr, ok := v.ArrayOK()
	if !ok {
		return nil
	}
	values, err := arr.Values()
	if err != nil {
		return nil
	}
	items := make(models.CartItems, len(values))
	for i, val := range values {
		if val.Type == bson.TypeNull {
			continue
		}
		item := &models.CartItem{}
		if doc, ok := val.DocumentOK(); ok {
			if name, ok := doc.Lookup("productName").StringValueOK(); ok {
				item.ProductName = name
			}
			if ref, ok := doc.Lookup("imageRef").StringValueOK(); ok && ref != "" {
				item.Image = &models.ImageRef{}
				item.Image.Asset.Ref = ref
			}
		}
		items[i] = item
	}
	return items
}

func (s *MongoStore) FetchOrders(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var doc orderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

func (s *MongoStore) SetStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": orderID}, update)
	if err != nil {
		return fmt.Errorf("set status of %s: %w", orderID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, orderID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": orderID})
	if err != nil {
		return fmt.Errorf("delete %s: %w", orderID, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
