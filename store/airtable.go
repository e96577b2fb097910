// Package store reads and partially updates records in an Airtable base over
// its REST API.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public Airtable REST endpoint.
const DefaultBaseURL = "https://api.airtable.com/v0"

// ErrRecordNotFound is returned when the store answers 404 for a record.
var ErrRecordNotFound = errors.New("record not found")

// APIError is any other non-2xx answer from the store.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store returned %d: %s", e.Status, e.Body)
}

// Table addresses one table of one base. Name may be a table id or a display
// name; it is escaped when building URLs.
type Table struct {
	BaseID string
	Name   string
}

// Record is a record reduced to the requested fields, each flattened to text.
// Empty cells are absent from Fields.
type Record struct {
	ID     string
	Fields map[string]string
}

// Client talks to the store with a bearer credential.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *zap.Logger
}

// New creates a Client. A nil http client uses http.DefaultClient so the
// caller's context is the only deadline.
func New(baseURL, token string, client *http.Client, logger *zap.Logger) (*Client, error) {
	if token == "" {
		return nil, errors.New("store token is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
		logger:  logger,
	}, nil
}

func (c *Client) recordURL(t Table, recordID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", c.baseURL, url.PathEscape(t.BaseID), url.PathEscape(t.Name), url.PathEscape(recordID))
}

// Get fetches one record and keeps only the named fields.
func (c *Client) Get(ctx context.Context, t Table, recordID string, fields ...string) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.recordURL(t, recordID), nil)
	if err != nil {
		return Record{}, err
	}
	body, err := c.do(req)
	if err != nil {
		return Record{}, err
	}

	want := make(map[string]bool, len(fields))
	for _, f := range fields {
		want[f] = true
	}
	rec := Record{
		ID:     gjson.GetBytes(body, "id").String(),
		Fields: make(map[string]string, len(fields)),
	}
	gjson.GetBytes(body, "fields").ForEach(func(key, value gjson.Result) bool {
		if want[key.String()] {
			if s := cellString(value); s != "" {
				rec.Fields[key.String()] = s
			}
		}
		return true
	})
	c.logger.Debug("store record fetched",
		zap.String("table", t.BaseID+"/"+t.Name),
		zap.String("record", recordID),
		zap.Int("fields", len(rec.Fields)))
	return rec, nil
}

type updatePayload struct {
	Fields map[string]any `json:"fields"`
}

// Update PATCHes the given fields and returns the id the store reports.
func (c *Client) Update(ctx context.Context, t Table, recordID string, fields map[string]any) (string, error) {
	payload, err := json.Marshal(updatePayload{Fields: fields})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.recordURL(t, recordID), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}
	id := gjson.GetBytes(body, "id").String()
	c.logger.Debug("store record updated",
		zap.String("table", t.BaseID+"/"+t.Name),
		zap.String("record", id),
		zap.Int("fields", len(fields)))
	return id, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, strings.TrimSpace(string(body)))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("store returned invalid JSON (%d bytes)", len(body))
	}
	return body, nil
}

// cellString renders a cell the way the store's UI shows it as text: lists
// are comma joined, objects (collaborators, attachments, AI text) show their
// most readable member.
func cellString(v gjson.Result) string {
	switch {
	case v.IsArray():
		var parts []string
		for _, item := range v.Array() {
			if s := cellString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case v.IsObject():
		for _, key := range []string{"name", "value", "text", "filename", "email", "id"} {
			if m := v.Get(key); m.Exists() {
				return cellString(m)
			}
		}
		return ""
	case v.Type == gjson.Null:
		return ""
	default:
		return v.String()
	}
}
