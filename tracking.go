package atoship

import (
	"context"
	"fmt"
	"strings"
)

// maxTrackingNumbersPerBatch bounds TrackMultiple, matching the API's limit.
const maxTrackingNumbersPerBatch = 50

// FormatTrackingNumber normalizes a tracking number by trimming whitespace
// and upper-casing.
func FormatTrackingNumber(trackingNumber string) string {
	return strings.ToUpper(strings.TrimSpace(trackingNumber))
}

// TrackPackage fetches tracking information for one package. Carrier is
// optional; the API auto-detects it when empty.
func (c *Client) TrackPackage(ctx context.Context, trackingNumber, carrier string) (*APIResponse, error) {
	query := map[string]any{}
	if carrier != "" {
		query["carrier"] = carrier
	}
	return c.Execute(ctx, RequestDescriptor{
		Method:       "GET",
		Path:         "/api/tracking/{trackingNumber}",
		PathParams:   map[string]string{"trackingNumber": FormatTrackingNumber(trackingNumber)},
		Query:        query,
		RequiresAuth: true,
	})
}

// TrackMultiple fetches tracking information for up to 50 packages.
func (c *Client) TrackMultiple(ctx context.Context, trackingNumbers []string) (*APIResponse, error) {
	if len(trackingNumbers) > maxTrackingNumbersPerBatch {
		vErr := &ValidationError{}
		vErr.add("trackingNumbers", fmt.Sprintf("maximum %d tracking numbers allowed per request", maxTrackingNumbersPerBatch))
		return nil, vErr
	}

	formatted := make([]string, len(trackingNumbers))
	for i, tn := range trackingNumbers {
		formatted[i] = FormatTrackingNumber(tn)
	}

	return c.Execute(ctx, RequestDescriptor{
		Method:       "POST",
		Path:         "/api/tracking/batch",
		Body:         map[string]any{"trackingNumbers": formatted},
		RequiresAuth: true,
	})
}
