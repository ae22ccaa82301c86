package atoship

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClampLimit(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{0, 50},
		{-1, 50},
		{1, 1},
		{100, 100},
		{101, 100},
		{500, 100},
	}
	for _, tt := range tests {
		if got := clampLimit(tt.input); got != tt.expected {
			t.Errorf("clampLimit(%d) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestListOrdersQuery(t *testing.T) {
	var gotQuery map[string][]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	_, err := client.ListOrders(context.Background(), ListOrdersParams{
		Page:   2,
		Limit:  500,
		Status: OrderStatusShipped,
	})
	if err != nil {
		t.Fatalf("ListOrders returned error: %v", err)
	}

	if got := gotQuery["page"]; len(got) != 1 || got[0] != "2" {
		t.Errorf("Expected page=2, got %v", got)
	}
	if got := gotQuery["limit"]; len(got) != 1 || got[0] != "100" {
		t.Errorf("Expected limit clamped to 100, got %v", got)
	}
	if got := gotQuery["status"]; len(got) != 1 || got[0] != OrderStatusShipped {
		t.Errorf("Expected status filter, got %v", got)
	}
	if _, ok := gotQuery["source"]; ok {
		t.Error("Expected empty source filter dropped")
	}
}

func TestGetOrderPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	if _, err := client.GetOrder(context.Background(), "ord_123"); err != nil {
		t.Fatalf("GetOrder returned error: %v", err)
	}
	if gotPath != "/api/orders/ord_123" {
		t.Errorf("Expected /api/orders/ord_123, got %q", gotPath)
	}
}

func TestCreateOrderSendsBody(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"ord_new"}`))
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	resp, err := client.CreateOrder(context.Background(), validOrderRequest())
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("Expected success, got %q", resp.Error)
	}
	if gotBody["orderNumber"] != "ORD-001" {
		t.Errorf("Expected orderNumber in body, got %v", gotBody["orderNumber"])
	}
}

func TestCreateOrdersBatchEmpty(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")
	_, err := client.CreateOrdersBatch(context.Background(), nil)
	if err == nil {
		t.Fatal("Expected error for empty batch")
	}
	if got := err.(*ValidationError).FieldErrors("orders"); len(got) == 0 {
		t.Error("Expected violation for orders")
	}
}

func TestCreateOrdersBatchTooLarge(t *testing.T) {
	client, _ := newTestClient(t, "https://api.atoship.com")

	orders := make([]CreateOrderRequest, maxOrdersPerBatch+1)
	for i := range orders {
		orders[i] = validOrderRequest()
	}
	_, err := client.CreateOrdersBatch(context.Background(), orders)
	if err == nil {
		t.Fatal("Expected error for oversized batch")
	}
	got := err.(*ValidationError).FieldErrors("orders")
	if len(got) == 0 || !strings.Contains(got[0], "100") {
		t.Errorf("Expected batch limit message, got %v", got)
	}
}

func TestCreateOrdersBatchPrefixesFieldPaths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Expected no network call for an invalid batch")
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	good := validOrderRequest()
	bad := validOrderRequest()
	bad.RecipientName = ""

	_, err := client.CreateOrdersBatch(context.Background(), []CreateOrderRequest{good, bad})
	if err == nil {
		t.Fatal("Expected validation error")
	}
	vErr := err.(*ValidationError)
	if got := vErr.FieldErrors("orders[1].recipientName"); len(got) == 0 {
		t.Errorf("Expected violation at orders[1].recipientName, fields: %v", vErr.Fields)
	}
}

func TestCreateOrdersBatchSendsWrappedOrders(t *testing.T) {
	var gotBody struct {
		Orders []CreateOrderRequest `json:"orders"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders/batch" {
			t.Errorf("Expected /api/orders/batch, got %q", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := newTestClient(t, server.URL)
	if _, err := client.CreateOrdersBatch(context.Background(), []CreateOrderRequest{validOrderRequest()}); err != nil {
		t.Fatalf("CreateOrdersBatch returned error: %v", err)
	}
	if len(gotBody.Orders) != 1 || gotBody.Orders[0].OrderNumber != "ORD-001" {
		t.Errorf("Expected wrapped orders in body, got %+v", gotBody)
	}
}
