package atoship

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDecodeData(t *testing.T) {
	resp := &APIResponse{
		Success: true,
		Data:    json.RawMessage(`{"id":"rate_1","carrier":"usps","service":"priority","amount":8.45,"currency":"USD"}`),
	}

	rate, err := DecodeData[ShippingRate](resp)
	if err != nil {
		t.Fatalf("DecodeData returned error: %v", err)
	}
	if rate.ID != "rate_1" || rate.Carrier != "usps" || rate.Amount != 8.45 {
		t.Errorf("Unexpected decoded rate: %+v", rate)
	}
}

func TestDecodeDataNoData(t *testing.T) {
	if _, err := DecodeData[ShippingRate](&APIResponse{Success: true}); !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData, got %v", err)
	}
	if _, err := DecodeData[ShippingRate](nil); !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData for nil envelope, got %v", err)
	}
}

func TestDecodeDataFailureEnvelope(t *testing.T) {
	resp := &APIResponse{Success: false, Error: "Order not found", Data: json.RawMessage(`{}`)}
	if _, err := DecodeData[ShippingRate](resp); err == nil {
		t.Error("Expected error decoding a failure envelope")
	}
}

func TestDecodeDataValidatesResponseShape(t *testing.T) {
	// Carrier and service are required in the response schema.
	resp := &APIResponse{
		Success: true,
		Data:    json.RawMessage(`{"id":"rate_1","amount":8.45}`),
	}
	_, err := DecodeData[ShippingRate](resp)
	if err == nil {
		t.Fatal("Expected validation error for incomplete response payload")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if len(vErr.FieldErrors("carrier")) == 0 {
		t.Errorf("Expected violation for carrier, fields: %v", vErr.Fields)
	}
}

func TestDecodeDataMalformed(t *testing.T) {
	resp := &APIResponse{Success: true, Data: json.RawMessage(`{"id":`)}
	if _, err := DecodeData[ShippingRate](resp); err == nil {
		t.Error("Expected error for malformed data")
	}
}

func TestDecodePaginated(t *testing.T) {
	resp := &APIResponse{
		Success: true,
		Data:    json.RawMessage(`{"items":[{"id":"ord_0"},{"id":"ord_1"}],"total":42,"page":1,"limit":2,"hasMore":true}`),
	}

	page, err := DecodePaginated(resp)
	if err != nil {
		t.Fatalf("DecodePaginated returned error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(page.Items))
	}
	if page.Total != 42 || page.Page != 1 || page.Limit != 2 || !page.HasMore {
		t.Errorf("Unexpected page metadata: %+v", page)
	}
}

func TestDecodePaginatedNoData(t *testing.T) {
	if _, err := DecodePaginated(&APIResponse{Success: true}); !errors.Is(err, ErrNoData) {
		t.Errorf("Expected ErrNoData, got %v", err)
	}
}
