// Package foodapi is the HTTP client for the remote-API storefront
// variant. It speaks the dish and order resource endpoints of an
// external service and satisfies the same repository contracts as the
// local backends. A failed request surfaces as an error and never
// touches local state.
package foodapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"food_storefront/internal/models"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest sends one JSON request/response pair. Non-2xx responses are
// errors; out may be nil when the body is irrelevant.
func (c *Client) doRequest(method, path string, payload interface{}, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request data: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}

// Dish resource

func (c *Client) GetAll() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := c.doRequest(http.MethodGet, "/api/dishes", nil, &dishes); err != nil {
		return nil, err
	}
	return dishes, nil
}

func (c *Client) Create(dish *models.Dish) error {
	return c.doRequest(http.MethodPost, "/api/dishes", dish, dish)
}

func (c *Client) Update(id int64, patch models.DishPatch) error {
	return c.doRequest(http.MethodPut, fmt.Sprintf("/api/dishes/%d", id), patch, nil)
}

func (c *Client) Delete(id int64) error {
	return c.doRequest(http.MethodDelete, fmt.Sprintf("/api/dishes/%d", id), nil, nil)
}

// Orders returns the order-resource half of the client. The two
// resources live on one connection but satisfy separate repository
// contracts.
func (c *Client) Orders() *OrderClient {
	return &OrderClient{c: c}
}

type OrderClient struct {
	c *Client
}

func (o *OrderClient) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := o.c.doRequest(http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *OrderClient) Create(order *models.Order) error {
	return o.c.doRequest(http.MethodPost, "/api/orders", order, order)
}

func (o *OrderClient) UpdateStatus(id int64, status models.OrderStatus) error {
	payload := map[string]models.OrderStatus{"status": status}
	return o.c.doRequest(http.MethodPut, fmt.Sprintf("/api/orders/%d/status", id), payload, nil)
}
