package atoship

import (
	"context"
	"fmt"
)

// maxOrdersPerBatch bounds CreateOrdersBatch, matching the API's limit.
const maxOrdersPerBatch = 100

// ListOrdersParams filters and pages ListOrders. Zero values are omitted;
// Limit is clamped to 100.
type ListOrdersParams struct {
	Page     int
	Limit    int
	Status   string
	Source   string
	DateFrom string
	DateTo   string
}

// clampLimit applies the API's page-size bounds.
func clampLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func defaultPage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// CreateOrder creates a new order. The request is validated locally before
// any network attempt.
func (c *Client) CreateOrder(ctx context.Context, order CreateOrderRequest) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/orders",
		Body:         order,
		RequiresAuth: true,
	})
}

// GetOrder fetches an order by ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/orders/{id}",
		PathParams:   map[string]string{"id": orderID},
		RequiresAuth: true,
	})
}

// ListOrders lists orders with pagination and filtering.
func (c *Client) ListOrders(ctx context.Context, params ListOrdersParams) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method: "GET",
		Path:   "/api/orders",
		Query: map[string]any{
			"page":     defaultPage(params.Page),
			"limit":    clampLimit(params.Limit),
			"status":   params.Status,
			"source":   params.Source,
			"dateFrom": params.DateFrom,
			"dateTo":   params.DateTo,
		},
		RequiresAuth: true,
	})
}

// UpdateOrder applies a partial update to an existing order.
func (c *Client) UpdateOrder(ctx context.Context, orderID string, updates map[string]any) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "PUT",
		Path:         "/api/orders/{id}",
		PathParams:   map[string]string{"id": orderID},
		Body:         updates,
		RequiresAuth: true,
	})
}

// DeleteOrder deletes an order.
func (c *Client) DeleteOrder(ctx context.Context, orderID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "DELETE",
		Path:         "/api/orders/{id}",
		PathParams:   map[string]string{"id": orderID},
		RequiresAuth: true,
	})
}

// CreateOrdersBatch creates up to 100 orders in one call. Every order is
// validated locally first; a single invalid order aborts the whole call
// with its field paths prefixed by the order's index.
func (c *Client) CreateOrdersBatch(ctx context.Context, orders []CreateOrderRequest) (*APIResponse, error) {
	if len(orders) == 0 {
		vErr := &ValidationError{}
		vErr.add("orders", "at least one order is required")
		return nil, vErr
	}
	if len(orders) > maxOrdersPerBatch {
		vErr := &ValidationError{}
		vErr.add("orders", fmt.Sprintf("maximum %d orders allowed per batch", maxOrdersPerBatch))
		return nil, vErr
	}

	for i, order := range orders {
		if err := ValidateStruct(order); err != nil {
			if vErr, ok := err.(*ValidationError); ok {
				prefixed := &ValidationError{}
				for field, messages := range vErr.Fields {
					for _, msg := range messages {
						prefixed.add(fmt.Sprintf("orders[%d].%s", i, field), msg)
					}
				}
				return nil, prefixed
			}
			return nil, err
		}
	}

	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/orders/batch",
		Body:         map[string]any{"orders": orders},
		RequiresAuth: true,
	})
}
