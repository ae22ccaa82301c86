package atoship

import "context"

// CreateWebhook registers a new webhook subscription. The URL and event
// list are validated locally first.
func (c *Client) CreateWebhook(ctx context.Context, webhook Webhook) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/webhooks",
		Body:         webhook,
		RequiresAuth: true,
	})
}

// ListWebhooks lists registered webhooks.
func (c *Client) ListWebhooks(ctx context.Context) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/webhooks",
		RequiresAuth: true,
	})
}

// GetWebhook fetches a webhook by ID.
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/webhooks/{id}",
		PathParams:   map[string]string{"id": webhookID},
		RequiresAuth: true,
	})
}

// UpdateWebhook applies a partial update to a webhook.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID string, updates map[string]any) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "PUT",
		Path:         "/api/webhooks/{id}",
		PathParams:   map[string]string{"id": webhookID},
		Body:         updates,
		RequiresAuth: true,
	})
}

// DeleteWebhook removes a webhook subscription.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "DELETE",
		Path:         "/api/webhooks/{id}",
		PathParams:   map[string]string{"id": webhookID},
		RequiresAuth: true,
	})
}

// TestWebhook asks the API to deliver a test event to a webhook.
func (c *Client) TestWebhook(ctx context.Context, webhookID string) (*APIResponse, error) {
	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/webhooks/{id}/test",
		PathParams:   map[string]string{"id": webhookID},
		RequiresAuth: true,
	})
}
