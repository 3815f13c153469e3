package smoketests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	excerptLimit = 500
	ruleWidth    = 60
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
)

var rule = strings.Repeat("=", ruleWidth)

func PrintStartBanner(w io.Writer) {
	fmt.Fprintln(w, "🚀 yoree Platform Integration Tests")
	fmt.Fprintln(w, strings.Repeat("=", 36))
}

func PrintCompletionBanner(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "🎉 Integration Tests Complete!")
	fmt.Fprintln(w, "Check the results above to verify functionality")
	fmt.Fprintln(w, rule)
}

func printCaseBanner(w io.Writer, tc TestCase) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Testing: %s\n", tc.Description)
	fmt.Fprintf(w, "Endpoint: %s\n", tc.Endpoint)
	fmt.Fprintln(w, rule)
}

func printOutcome(w io.Writer, o Outcome) {
	switch o.Kind {
	case OutcomeSuccess:
		printMarker(w, successColor, "✅ SUCCESS")
		excerpt, truncated := responseExcerpt(o.Body, excerptLimit)
		if truncated {
			fmt.Fprintf(w, "Response: %s...\n", excerpt)
			fmt.Fprintln(w, "[Response truncated]")
		} else {
			fmt.Fprintf(w, "Response: %s\n", excerpt)
		}
	case OutcomeHTTPFailure:
		printMarker(w, failureColor, "❌ FAILED - Status: %d", o.StatusCode)
		fmt.Fprintf(w, "Response: %s\n", o.Body)
	case OutcomeTransportError:
		printMarker(w, failureColor, "❌ CONNECTION ERROR: %s", o.Message)
	case OutcomeDecodeError:
		printMarker(w, failureColor, "❌ INVALID JSON: %s", o.Message)
		fmt.Fprintf(w, "Response: %s\n", o.Body)
	default:
		printMarker(w, failureColor, "❌ ERROR: %s", o.Message)
	}
}

// printMarker colors only the text, so the reset code comes before the line break.
func printMarker(w io.Writer, c *color.Color, format string, args ...interface{}) {
	c.Fprintf(w, format, args...)
	fmt.Fprintln(w)
}

// responseExcerpt pretty-prints a JSON body with two-space indentation, keeping the service's
// key order, and cuts it to at most limit characters.
func responseExcerpt(body string, limit int) (string, bool) {
	var buf bytes.Buffer
	text := body
	if err := json.Indent(&buf, []byte(body), "", "  "); err == nil {
		text = strings.TrimSpace(buf.String())
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text, false
	}
	return string(runes[:limit]), true
}
