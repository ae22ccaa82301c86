package atoship

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// transport performs a single HTTP exchange for the pipeline. It owns URL
// construction and header injection; retry and validation decisions live in
// the pipeline.
type transport struct {
	httpClient *http.Client
	userAgent  string
}

// httpResult is one attempt's raw outcome with the body fully drained.
type httpResult struct {
	status int
	header http.Header
	body   []byte
}

// do performs one attempt bounded by the configured timeout. The URL is
// built once by the pipeline before the retry loop; the returned error
// covers transport-level failures only, and HTTP error statuses come back
// as an httpResult for the pipeline to classify.
func (t *transport) do(ctx context.Context, cfg *Config, desc *RequestDescriptor, reqURL string, body []byte) (*httpResult, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, reqURL, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if desc.RequiresAuth {
		req.Header.Set("X-API-Key", cfg.APIKey)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &httpResult{
		status: resp.StatusCode,
		header: resp.Header,
		body:   data,
	}, nil
}

// buildURL expands {param} segments, joins with the base URL and appends the
// encoded query string.
func buildURL(baseURL string, desc *RequestDescriptor) (string, error) {
	path := desc.Path
	for name, value := range desc.PathParams {
		if value == "" {
			return "", fmt.Errorf("atoship: path parameter %q is empty", name)
		}
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}
	if strings.Contains(path, "{") {
		return "", fmt.Errorf("atoship: unresolved path parameters in %q", path)
	}

	full := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")

	query := buildQuery(desc.Query)
	if encoded := query.Encode(); encoded != "" {
		full += "?" + encoded
	}
	return full, nil
}

// buildQuery converts query values to strings: nils are dropped, bools
// become "true"/"false", slices are comma-joined.
func buildQuery(params map[string]any) url.Values {
	values := url.Values{}
	for key, value := range params {
		if value == nil {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				values.Set(key, v)
			}
		case bool:
			values.Set(key, strconv.FormatBool(v))
		case int:
			values.Set(key, strconv.Itoa(v))
		case int64:
			values.Set(key, strconv.FormatInt(v, 10))
		case float64:
			values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		case []string:
			if len(v) > 0 {
				values.Set(key, strings.Join(v, ","))
			}
		default:
			values.Set(key, fmt.Sprintf("%v", v))
		}
	}
	return values
}
