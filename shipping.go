package atoship

import "context"

// ListLabelsParams filters and pages ListLabels.
type ListLabelsParams struct {
	Page     int
	Limit    int
	Status   string
	Carrier  string
	DateFrom string
	DateTo   string
}

// GetRates fetches shipping rates for a package.
func (c *Client) GetRates(ctx context.Context, req GetRatesRequest) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/shipping/rates",
		Body:         req,
		RequiresAuth: true,
	})
}

// CompareRates fetches and compares rates across carriers.
func (c *Client) CompareRates(ctx context.Context, req GetRatesRequest) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/shipping/rates/compare",
		Body:         req,
		RequiresAuth: true,
	})
}

// PurchaseLabel purchases a shipping label for a previously quoted rate.
func (c *Client) PurchaseLabel(ctx context.Context, req PurchaseLabelRequest) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/shipping/labels",
		Body:         req,
		RequiresAuth: true,
	})
}

// GetLabel fetches a label by ID.
func (c *Client) GetLabel(ctx context.Context, labelID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/shipping/labels/{id}",
		PathParams:   map[string]string{"id": labelID},
		RequiresAuth: true,
	})
}

// ListLabels lists shipping labels with pagination and filtering.
func (c *Client) ListLabels(ctx context.Context, params ListLabelsParams) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method: "GET",
		Path:   "/api/shipping/labels",
		Query: map[string]any{
			"page":     defaultPage(params.Page),
			"limit":    clampLimit(params.Limit),
			"status":   params.Status,
			"carrier":  params.Carrier,
			"dateFrom": params.DateFrom,
			"dateTo":   params.DateTo,
		},
		RequiresAuth: true,
	})
}

// CancelLabel cancels a shipping label.
func (c *Client) CancelLabel(ctx context.Context, labelID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/shipping/labels/{id}/cancel",
		PathParams:   map[string]string{"id": labelID},
		RequiresAuth: true,
	})
}

// RefundLabel requests a refund for a shipping label.
func (c *Client) RefundLabel(ctx context.Context, labelID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/shipping/labels/{id}/refund",
		PathParams:   map[string]string{"id": labelID},
		RequiresAuth: true,
	})
}
