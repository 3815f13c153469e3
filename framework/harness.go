package framework

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultRequestTimeout bounds each request, including reading the response body.
const DefaultRequestTimeout = time.Second * 30

// TestHarness holds what is shared by every request made to the service under test: its base
// URL, one reused HTTP client and a debug logger.
type TestHarness struct {
	serviceBaseURL string
	timeout        time.Duration
	client         *http.Client
	logger         Logger
}

// ServiceResponse is a fully read response from the service under test.
type ServiceResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Elapsed    time.Duration
}

// NewTestHarness creates a TestHarness for the service at serviceBaseURL. A trailing slash on
// the base URL is dropped, since endpoint paths are appended to it as-is. A zero timeout means
// DefaultRequestTimeout.
func NewTestHarness(
	serviceBaseURL string,
	timeout time.Duration,
	debugLogger Logger,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	baseURL := strings.TrimRight(serviceBaseURL, "/")
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid service URL %q: %w", serviceBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("invalid service URL %q: scheme must be http or https", serviceBaseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("invalid service URL %q: missing host", serviceBaseURL)
	}

	return &TestHarness{
		serviceBaseURL: baseURL,
		timeout:        timeout,
		client:         &http.Client{Timeout: timeout},
		logger:         debugLogger,
	}, nil
}

func (h *TestHarness) ServiceBaseURL() string {
	return h.serviceBaseURL
}

func (h *TestHarness) Timeout() time.Duration {
	return h.timeout
}

// NewRequest builds a GET request for the given endpoint path. The URL is the base URL and the
// path concatenated without any normalization.
func (h *TestHarness) NewRequest(ctx context.Context, endpoint string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.serviceBaseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Do sends the request and reads the whole response body. Every error it returns is a
// transport-level failure; a timeout is reported as such in the error message.
func (h *TestHarness) Do(req *http.Request) (*ServiceResponse, error) {
	start := time.Now()
	h.logger.Printf("%s %s", req.Method, req.URL)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, h.transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, h.transportError(fmt.Errorf("error reading response body from %s: %w", req.URL, err))
	}

	elapsed := time.Since(start)
	h.logger.Printf("%s %s returned HTTP %d (%d bytes) in %s", req.Method, req.URL, resp.StatusCode, len(body), elapsed)
	return &ServiceResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
		Elapsed:    elapsed,
	}, nil
}

func (h *TestHarness) transportError(err error) error {
	h.logger.Printf("Request failed: %s", err)
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("request timed out after %s: %w", h.timeout, err)
	}
	return err
}
