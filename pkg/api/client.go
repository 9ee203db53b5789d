// Package api is the HTTP client for the sheet backend.
//
// The backend speaks plain JSON over six endpoints: company list, per-company
// sheet list, sheet content, row insertion, full-sheet update, and sheet
// clone. Application-level failures arrive as {"error": "..."} payloads with
// a non-2xx status and are surfaced as *APIError; transport and decode
// failures are returned as wrapped errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every request unless the caller supplies a client.
const DefaultTimeout = 15 * time.Second

// APIError is an application-level failure reported by the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error (HTTP %d)", e.StatusCode)
}

// Client talks to one sheet backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Companies fetches the full company list.
func (c *Client) Companies(ctx context.Context) ([]Company, error) {
	var out []Company
	if err := c.get(ctx, "/companies", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Sheets fetches the sheet descriptors for a company, in backend order.
func (c *Client) Sheets(ctx context.Context, companyID string) ([]SheetDescriptor, error) {
	var out []SheetDescriptor
	path := "/company/" + url.PathEscape(companyID) + "/sheets"
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Sheet fetches a sheet's values and editable mask.
func (c *Client) Sheet(ctx context.Context, companyID, sheetName string) (SheetContent, error) {
	var out SheetContent
	path := "/sheet/" + url.PathEscape(companyID) + "?sheet=" + url.QueryEscape(sheetName)
	if err := c.get(ctx, path, &out); err != nil {
		return SheetContent{}, err
	}
	return out, nil
}

// InsertRow inserts a blank row below rowIndex (0-based) and returns the
// refreshed sheet. The server is the source of truth for the post-insert
// shape.
func (c *Client) InsertRow(ctx context.Context, companyID, sheetName string, rowIndex int) (SheetContent, error) {
	body := map[string]any{
		"sheet":     sheetName,
		"row_index": rowIndex,
	}
	var out SheetContent
	path := "/sheet/" + url.PathEscape(companyID) + "/insert-row"
	if err := c.post(ctx, path, body, &out); err != nil {
		return SheetContent{}, err
	}
	return out, nil
}

// Update persists the full values and editable matrices for a sheet. Any
// response body beyond the error envelope is ignored.
func (c *Client) Update(ctx context.Context, companyID, sheetName string, content SheetContent) error {
	path := "/sheet/" + url.PathEscape(companyID) + "/update?sheet=" + url.QueryEscape(sheetName)
	return c.post(ctx, path, content, nil)
}

// Clone creates newName as a copy of source inside the company's workbook.
func (c *Client) Clone(ctx context.Context, companyID, source, newName string) error {
	body := map[string]string{
		"source_sheet": source,
		"new_sheet":    newName,
	}
	path := "/sheet/" + url.PathEscape(companyID) + "/clone"
	return c.post(ctx, path, body, nil)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", req.URL.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error string `json:"error"`
		}
		// Best effort: the body may not be JSON at all.
		_ = json.Unmarshal(data, &envelope)
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL.Path, err)
	}
	return nil
}
