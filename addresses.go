package atoship

import "context"

// ValidateAddress asks the API to verify a deliverable address. The payload
// is schema-checked locally first.
func (c *Client) ValidateAddress(ctx context.Context, address Address) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/addresses/validate",
		Body:         address,
		RequiresAuth: true,
	})
}

// SuggestAddresses fetches address suggestions for a partial query. Country
// defaults to US.
func (c *Client) SuggestAddresses(ctx context.Context, query, country string) (*APIResponse, error) {
	if country == "" {
		country = "US"
	}
	return c.Execute(ctx, RequestDescriptor{
		Method: "GET",
		Path:   "/api/addresses/suggest",
		Query: map[string]any{
			"q":       query,
			"country": country,
		},
		RequiresAuth: true,
	})
}

// SaveAddress stores an address in the address book.
func (c *Client) SaveAddress(ctx context.Context, address Address) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/addresses",
		Body:         address,
		RequiresAuth: true,
	})
}

// ListAddresses lists saved addresses with pagination.
func (c *Client) ListAddresses(ctx context.Context, page, limit int) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method: "GET",
		Path:   "/api/addresses",
		Query: map[string]any{
			"page":  defaultPage(page),
			"limit": clampLimit(limit),
		},
		RequiresAuth: true,
	})
}

// GetAddress fetches an address by ID.
func (c *Client) GetAddress(ctx context.Context, addressID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/addresses/{id}",
		PathParams:   map[string]string{"id": addressID},
		RequiresAuth: true,
	})
}

// UpdateAddress applies a partial update to a saved address.
func (c *Client) UpdateAddress(ctx context.Context, addressID string, updates map[string]any) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "PUT",
		Path:         "/api/addresses/{id}",
		PathParams:   map[string]string{"id": addressID},
		Body:         updates,
		RequiresAuth: true,
	})
}

// DeleteAddress removes an address from the address book.
func (c *Client) DeleteAddress(ctx context.Context, addressID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "DELETE",
		Path:         "/api/addresses/{id}",
		PathParams:   map[string]string{"id": addressID},
		RequiresAuth: true,
	})
}
