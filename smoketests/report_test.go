package smoketests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestResponseExcerptIndentsJSONAndKeepsKeyOrder(t *testing.T) {
	excerpt, truncated := responseExcerpt(`{"z":1,"a":[true,null]}`, 500)
	assert.False(t, truncated)
	assert.Equal(t, "{\n  \"z\": 1,\n  \"a\": [\n    true,\n    null\n  ]\n}", excerpt)
}

func TestResponseExcerptTruncatesOnCharacterBoundary(t *testing.T) {
	body := `"` + strings.Repeat("€", 20) + `"`
	excerpt, truncated := responseExcerpt(body, 10)
	assert.True(t, truncated)
	assert.Equal(t, `"`+strings.Repeat("€", 9), excerpt)
}

func TestResponseExcerptAtExactLimitIsNotTruncated(t *testing.T) {
	body := `"` + strings.Repeat("x", 8) + `"`
	excerpt, truncated := responseExcerpt(body, 10)
	assert.False(t, truncated)
	assert.Equal(t, body, excerpt)
}

func TestPrintOutcome(t *testing.T) {
	cases := []struct {
		outcome  Outcome
		expected string
	}{
		{Success(ldvalue.Bool(true), "true"), "✅ SUCCESS\nResponse: true\n"},
		{HTTPFailure(404, "not found"), "❌ FAILED - Status: 404\nResponse: not found\n"},
		{TransportError("connection refused"), "❌ CONNECTION ERROR: connection refused\n"},
		{DecodeError("response body is empty", ""), "❌ INVALID JSON: response body is empty\nResponse: \n"},
		{OtherError("boom"), "❌ ERROR: boom\n"},
	}
	for _, c := range cases {
		t.Run(c.outcome.Kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			printOutcome(&buf, c.outcome)
			assert.Equal(t, c.expected, buf.String())
		})
	}
}

func TestCaseBanner(t *testing.T) {
	var buf bytes.Buffer
	printCaseBanner(&buf, TestCase{Endpoint: "/health", Description: "Health Check"})
	rule := strings.Repeat("=", 60)
	assert.Equal(t, "\n"+rule+"\nTesting: Health Check\nEndpoint: /health\n"+rule+"\n", buf.String())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "success", Success(ldvalue.Null(), "null").String())
	assert.Equal(t, "HTTP 500: oops", HTTPFailure(500, "oops").String())
	assert.Equal(t, "transport error: refused", TransportError("refused").String())
	assert.Equal(t, "decode error: bad", DecodeError("bad", "x").String())
	assert.Equal(t, "error: boom", OtherError("boom").String())
	assert.Equal(t, "OutcomeKind(42)", OutcomeKind(42).String())
}
