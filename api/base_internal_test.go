package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequest_GetDataBecomesQuery(t *testing.T) {
	var got *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Write([]byte(`{"id":"1"}`))
	}))
	defer server.Close()

	c, err := NewClient("tok", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = c.request(context.Background(), http.MethodGet, "/leaderboard", map[string]string{"limit": "10"})
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "10", got.URL.Query().Get("limit"))
	assert.Equal(t, "tok", got.Header.Get("Authorization"))
	assert.Empty(t, got.Header.Get("Content-Type"))
}

func TestRequest_PostDataBecomesJSONBody(t *testing.T) {
	var (
		contentType string
		payload     map[string]interface{}
		query       url.Values
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		query = r.URL.Query()
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &payload)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	c, err := NewClient("tok", WithBaseURL(server.URL))
	require.NoError(t, err)

	body, err := c.request(context.Background(), http.MethodPost, "/echo", map[string]interface{}{"a": "b"})
	require.NoError(t, err)

	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "b", payload["a"])
	assert.Empty(t, query)
}

func TestRequest_UnsupportedQueryData(t *testing.T) {
	c, err := NewClient("tok", WithBaseURL("http://127.0.0.1:0"))
	require.NoError(t, err)

	_, err = c.request(context.Background(), http.MethodGet, "/x", 42)
	assert.Error(t, err)
}

func TestRequest_LogsWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	core, logs := observer.New(zap.DebugLevel)
	c, err := NewClient("secret-token", WithBaseURL(server.URL), WithLogger(zap.New(core)))
	require.NoError(t, err)

	_, err = c.request(context.Background(), http.MethodGet, "/bank/1", nil)
	require.NoError(t, err)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/bank/1", fields["endpoint"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	for _, v := range fields {
		assert.NotEqual(t, "secret-token", v)
	}
}

func TestWithTimeout_DoesNotMutateSharedClient(t *testing.T) {
	shared := &http.Client{}
	c, err := NewClient("tok", WithHTTPClient(shared), WithTimeout(DefaultTimeout))
	require.NoError(t, err)

	assert.Zero(t, shared.Timeout)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

func TestPathEscapesSegments(t *testing.T) {
	assert.Equal(t, "/api/bank/b%201/balance/u%2F2", path(bankBalanceEndpoint, "b 1", "u/2"))
}
