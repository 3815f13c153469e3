package smoketests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/yoree-platform/api-smoke-tests/framework"
	"github.com/yoree-platform/api-smoke-tests/servicedef"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Checker requests one endpoint at a time from the service under test and reports the outcome.
type Checker struct {
	harness *framework.TestHarness
	out     io.Writer
}

// NewChecker creates a Checker that sends requests through harness and writes its report to out.
func NewChecker(harness *framework.TestHarness, out io.Writer) *Checker {
	return &Checker{harness: harness, out: out}
}

// Output returns the writer that the report goes to.
func (c *Checker) Output() io.Writer {
	return c.out
}

// Check prints the banner for tc, requests its endpoint once, prints the outcome, and returns
// it. It never panics and never retries.
func (c *Checker) Check(ctx context.Context, tc TestCase, debugLogger framework.Logger) Outcome {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	printCaseBanner(c.out, tc)
	outcome := c.fetch(ctx, tc, debugLogger)
	printOutcome(c.out, outcome)
	return outcome
}

func (c *Checker) fetch(ctx context.Context, tc TestCase, debugLogger framework.Logger) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = OtherError(fmt.Sprintf("unexpected panic: %v", r))
		}
	}()

	req, err := c.harness.NewRequest(ctx, tc.Endpoint)
	if err != nil {
		return OtherError(fmt.Sprintf("could not create request for %q: %s", tc.Endpoint, err))
	}
	requestID := uuid.NewString()
	req.Header.Set(servicedef.RequestIDHeader, requestID)
	debugLogger.Printf("Request ID: %s", requestID)
	debugLogger.Printf("Reproduce with: %s", curlCommand(req))

	resp, err := c.harness.Do(req)
	if err != nil {
		debugLogger.Printf("Transport error: %s", err)
		return TransportError(err.Error())
	}
	debugLogger.Printf("Received HTTP %d with %d bytes in %s", resp.StatusCode, len(resp.Body), resp.Elapsed)

	if resp.StatusCode != http.StatusOK {
		return HTTPFailure(resp.StatusCode, string(resp.Body))
	}
	payload, err := decodePayload(resp.Body)
	if err != nil {
		return DecodeError(err.Error(), string(resp.Body))
	}
	return Success(payload, string(resp.Body))
}

func decodePayload(body []byte) (ldvalue.Value, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return ldvalue.Null(), errors.New("response body is empty")
	}
	var value ldvalue.Value
	if err := json.Unmarshal(body, &value); err != nil {
		return ldvalue.Null(), fmt.Errorf("malformed JSON in response body: %w", err)
	}
	return value, nil
}
