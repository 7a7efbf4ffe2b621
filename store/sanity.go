package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/models"
)

// OrdersQuery is the GROQ projection the dashboard reads. Cart items are
// references, dereferenced to their product name and image.
const OrdersQuery = `*[_type == "order"]{
  _id,
  firstName,
  lastName,
  phone,
  email,
  address,
  city,
  zipCode,
  total,
  discount,
  orderDate,
  status,
  cartItems[]->{
    productName,
    image
  }
}`

// SanityStore reads and mutates orders through the Sanity HTTP API.
type SanityStore struct {
	baseURL    string
	apiVersion string
	dataset    string
	token      string
	httpClient *http.Client
}

type SanityOptions struct {
	// APIHost is the scheme and host, e.g. https://<project>.api.sanity.io.
	APIHost    string
	APIVersion string
	Dataset    string
	Token      string
	Timeout    time.Duration
}

func NewSanityStore(opts SanityOptions) *SanityStore {
	return &SanityStore{
		baseURL:    strings.TrimRight(opts.APIHost, "/"),
		apiVersion: opts.APIVersion,
		dataset:    opts.Dataset,
		token:      opts.Token,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

type queryResponse struct {
	Result []models.Order `json:"result"`
}

type mutateResponse struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

type mutation struct {
	Patch  *patchMutation  `json:"patch,omitempty"`
	Delete *deleteMutation `json:"delete,omitempty"`
}

type patchMutation struct {
	ID  string         `json:"id"`
	Set map[string]any `json:"set"`
}

type deleteMutation struct {
	ID string `json:"id"`
}

// FetchOrders runs OrdersQuery and returns every order document.
func (s *SanityStore) FetchOrders(ctx context.Context) ([]models.Order, error) {
	path := fmt.Sprintf("/%s/data/query/%s?query=%s", s.apiVersion, s.dataset, url.QueryEscape(OrdersQuery))
	var resp queryResponse
	if err := s.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return resp.Result, nil
}

// SetStatus patches the status field of one order.
func (s *SanityStore) SetStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	m := mutation{Patch: &patchMutation{ID: orderID, Set: map[string]any{"status": status}}}
	if err := s.mutate(ctx, m); err != nil {
		return fmt.Errorf("set status of %s: %w", orderID, err)
	}
	return nil
}

// Delete removes one order document.
func (s *SanityStore) Delete(ctx context.Context, orderID string) error {
	if err := s.mutate(ctx, mutation{Delete: &deleteMutation{ID: orderID}}); err != nil {
		return fmt.Errorf("delete %s: %w", orderID, err)
	}
	return nil
}

func (s *SanityStore) mutate(ctx context.Context, mutations ...mutation) error {
	path := fmt.Sprintf("/%s/data/mutate/%s?returnIds=true", s.apiVersion, s.dataset)
	body := map[string]any{"mutations": mutations}
	var resp mutateResponse
	if err := s.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return err
	}
	if len(resp.Results) == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SanityStore) do(ctx context.Context, method, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage extracts a readable message from either of the error shapes
// the API returns: {"error": {"description": ...}} or {"message": ...}.
func errorMessage(data []byte) string {
	var body struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return strings.TrimSpace(string(data))
	}
	if body.Message != "" {
		return body.Message
	}
	var nested struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil && nested.Description != "" {
		return nested.Description
	}
	var flat string
	if err := json.Unmarshal(body.Error, &flat); err == nil {
		return flat
	}
	return ""
}
