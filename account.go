package atoship

import "context"

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/profile",
		RequiresAuth: true,
	})
}

// UpdateProfile applies a partial update to the user profile.
func (c *Client) UpdateProfile(ctx context.Context, updates map[string]any) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "PUT",
		Path:         "/api/profile",
		Body:         updates,
		RequiresAuth: true,
	})
}

// GetUsage fetches account usage statistics.
func (c *Client) GetUsage(ctx context.Context) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/account/usage",
		RequiresAuth: true,
	})
}

// GetBilling fetches billing information.
func (c *Client) GetBilling(ctx context.Context) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/account/billing",
		RequiresAuth: true,
	})
}

// CreateAPIKey creates a new API key. The full key value is only present in
// the creation response.
func (c *Client) CreateAPIKey(ctx context.Context, key APIKey) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/keys",
		Body:         key,
		RequiresAuth: true,
	})
}

// ListAPIKeys lists the account's API keys.
func (c *Client) ListAPIKeys(ctx context.Context) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/keys",
		RequiresAuth: true,
	})
}

// RevokeAPIKey revokes an API key.
func (c *Client) RevokeAPIKey(ctx context.Context, keyID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "DELETE",
		Path:         "/api/keys/{id}",
		PathParams:   map[string]string{"id": keyID},
		RequiresAuth: true,
	})
}

// HealthCheck checks API availability. No credential is required.
func (c *Client) HealthCheck(ctx context.Context) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method: "GET",
		Path:   "/api/health",
	})
}

// SystemStatus fetches system status information. No credential is required.
func (c *Client) SystemStatus(ctx context.Context) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method: "GET",
		Path:   "/api/status",
	})
}
