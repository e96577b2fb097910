package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/v0/", "pat-test", srv.Client(), nil)
	require.NoError(t, err)
	return c
}

func TestNew_RequiresToken(t *testing.T) {
	_, err := New("", "", nil, nil)
	assert.Error(t, err)
}

func TestClient_GetFlattensRequestedFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v0/appBase/Requests (synced)/rec1", r.URL.Path)
		assert.Equal(t, "Bearer pat-test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "rec1",
			"createdTime": "2025-10-01T00:00:00.000Z",
			"fields": {
				"Project Name": "Console refresh",
				"Notes": "",
				"Source Record ID": "recSrc",
				"Owner": {"id": "usr1", "email": "a@example.com", "name": "Ada"},
				"Tags": ["launch", "console"],
				"Priority": 2,
				"Ignored": "x"
			}
		}`))
	})

	rec, err := c.Get(context.Background(), Table{BaseID: "appBase", Name: "Requests (synced)"}, "rec1",
		"Project Name", "Notes", "Source Record ID", "Owner", "Tags", "Priority", "Missing")
	require.NoError(t, err)
	assert.Equal(t, "rec1", rec.ID)
	assert.Equal(t, map[string]string{
		"Project Name":     "Console refresh",
		"Source Record ID": "recSrc",
		"Owner":            "Ada",
		"Tags":             "launch, console",
		"Priority":         "2",
	}, rec.Fields)
}

func TestClient_GetNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"NOT_FOUND"}`))
	})

	_, err := c.Get(context.Background(), Table{BaseID: "app", Name: "tbl"}, "recX", "Notes")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestClient_UpdatePatchesFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v0/appSrc/tblT/recSrc", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Ahoy!", payload["fields"]["AI First Draft"])
		assert.Equal(t, float64(85), payload["fields"]["Score"])
		assert.Equal(t, true, payload["fields"]["Has Contractions"])

		_, _ = w.Write([]byte(`{"id":"recSrc","fields":{}}`))
	})

	id, err := c.Update(context.Background(), Table{BaseID: "appSrc", Name: "tblT"}, "recSrc", map[string]any{
		"AI First Draft":   "Ahoy!",
		"Score":            85,
		"Has Contractions": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "recSrc", id)
}

func TestClient_UpdateNon2xx(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"type":"UNKNOWN_FIELD_NAME","message":"Unknown field name: \"AI Draft\""}}`))
	})

	_, err := c.Update(context.Background(), Table{BaseID: "app", Name: "tbl"}, "rec1", map[string]any{"AI Draft": "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.Body, "UNKNOWN_FIELD_NAME")
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c, err := New(base, "pat", nil, nil)
	require.NoError(t, err)
	_, err = c.Update(context.Background(), Table{BaseID: "app", Name: "tbl"}, "rec1", map[string]any{"a": "b"})
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.NotErrorIs(t, err, ErrRecordNotFound)
}
