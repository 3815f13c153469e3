package framework

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestHarnessValidatesURL(t *testing.T) {
	for _, badURL := range []string{"", "127.0.0.1:8080", "ftp://localhost", "http://"} {
		_, err := NewTestHarness(badURL, 0, nil)
		assert.Error(t, err, "expected error for %q", badURL)
	}
}

func TestNewTestHarnessDefaults(t *testing.T) {
	h, err := NewTestHarness("http://127.0.0.1:8080/", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", h.ServiceBaseURL())
	assert.Equal(t, DefaultRequestTimeout, h.Timeout())
}

func TestHarnessRequestsEndpointAndReadsResponse(t *testing.T) {
	headers := make(http.Header)
	headers.Set("Content-Type", "text/plain")
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(503, headers, []byte("unavailable")))

	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var debug CapturingLogger
		h, err := NewTestHarness(server.URL, time.Second, &debug)
		require.NoError(t, err)

		req, err := h.NewRequest(context.Background(), "/api/data/current_price/bitcoin")
		require.NoError(t, err)
		resp, err := h.Do(req)
		require.NoError(t, err)

		assert.Equal(t, 503, resp.StatusCode)
		assert.Equal(t, "unavailable", string(resp.Body))
		assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))

		require.Len(t, requestsCh, 1)
		r := <-requestsCh
		assert.Equal(t, "GET", r.Request.Method)
		assert.Equal(t, "/api/data/current_price/bitcoin", r.Request.URL.Path)
		assert.Equal(t, "application/json", r.Request.Header.Get("Accept"))

		assert.Len(t, debug.Output(), 2)
	})
}

func TestHarnessReportsTimeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		h, err := NewTestHarness(server.URL, 50*time.Millisecond, nil)
		require.NoError(t, err)

		req, err := h.NewRequest(context.Background(), "/health")
		require.NoError(t, err)
		_, err = h.Do(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timed out after 50ms")
	})
}

func TestHarnessReportsConnectionFailure(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	serverURL := server.URL
	server.Close()

	h, err := NewTestHarness(serverURL, time.Second, nil)
	require.NoError(t, err)
	req, err := h.NewRequest(context.Background(), "/health")
	require.NoError(t, err)
	_, err = h.Do(req)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "timed out")
}
