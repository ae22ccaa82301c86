package atoship

import "context"

// ListCarriers lists the carriers available to the account.
func (c *Client) ListCarriers(ctx context.Context) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/carriers",
		RequiresAuth: true,
	})
}

// GetCarrier fetches a carrier by code.
func (c *Client) GetCarrier(ctx context.Context, carrierCode string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/carriers/{code}",
		PathParams:   map[string]string{"code": carrierCode},
		RequiresAuth: true,
	})
}

// AddCarrierAccount links a carrier account. Credentials are validated for
// presence locally and masked in any debug trace.
func (c *Client) AddCarrierAccount(ctx context.Context, account CarrierAccount) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/carrier-accounts",
		Body:         account,
		RequiresAuth: true,
	})
}

// ListCarrierAccounts lists linked carrier accounts.
func (c *Client) ListCarrierAccounts(ctx context.Context) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/carrier-accounts",
		RequiresAuth: true,
	})
}

// UpdateCarrierAccount applies a partial update to a carrier account.
func (c *Client) UpdateCarrierAccount(ctx context.Context, accountID string, updates map[string]any) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "PUT",
		Path:         "/api/carrier-accounts/{id}",
		PathParams:   map[string]string{"id": accountID},
		Body:         updates,
		RequiresAuth: true,
	})
}

// DeleteCarrierAccount unlinks a carrier account.
func (c *Client) DeleteCarrierAccount(ctx context.Context, accountID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "DELETE",
		Path:         "/api/carrier-accounts/{id}",
		PathParams:   map[string]string{"id": accountID},
		RequiresAuth: true,
	})
}
