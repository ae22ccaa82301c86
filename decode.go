package atoship

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoData is returned when decoding is attempted on an envelope without a
// data payload.
var ErrNoData = errors.New("atoship: envelope carries no data")

// DecodeData unmarshals a success envelope's Data into a typed model and
// validates it against the model's schema tags, so a decoded value always
// round-trips through the declared response shape.
func DecodeData[T any](resp *APIResponse) (T, error) {
	var out T
	if resp == nil || len(resp.Data) == 0 {
		return out, ErrNoData
	}
	if !resp.Success {
		return out, fmt.Errorf("atoship: cannot decode failure envelope: %s", resp.Error)
	}
	if err := json.Unmarshal(resp.Data, &out); err != nil {
		return out, fmt.Errorf("atoship: decode response data: %w", err)
	}
	if err := validateBody(out); err != nil {
		return out, err
	}
	return out, nil
}

// DecodePaginated unmarshals a list envelope's Data into page metadata and
// raw items.
func DecodePaginated(resp *APIResponse) (*PaginatedData, error) {
	if resp == nil || len(resp.Data) == 0 {
		return nil, ErrNoData
	}
	if !resp.Success {
		return nil, fmt.Errorf("atoship: cannot decode failure envelope: %s", resp.Error)
	}
	var page PaginatedData
	if err := json.Unmarshal(resp.Data, &page); err != nil {
		return nil, fmt.Errorf("atoship: decode paginated data: %w", err)
	}
	return &page, nil
}
