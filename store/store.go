package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
)

// ErrNotFound is returned when a mutation matches no order document.
var ErrNotFound = errors.New("order not found")

// OrderStore is the remote order collection the dashboard reads and mutates.
type OrderStore interface {
	FetchOrders(ctx context.Context) ([]models.Order, error)
	SetStatus(ctx context.Context, orderID string, status models.OrderStatus) error
	Delete(ctx context.Context, orderID string) error
}

// APIError is a non-2xx response from the content store.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("content store: status %d", e.StatusCode)
	}
	return fmt.Sprintf("content store: status %d: %s", e.StatusCode, e.Message)
}
