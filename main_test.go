package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func runAgainst(handler http.Handler, vars map[string]string, args ...string) (int, string, string) {
	var exitCode int
	var stdout, stderr bytes.Buffer
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		env := map[string]string{envServiceURL: server.URL}
		for k, v := range vars {
			env[k] = v
		}
		exitCode = run(append([]string{"smoketest"}, args...), fakeEnv(env), &stdout, &stderr)
	})
	return exitCode, stdout.String(), stderr.String()
}

func TestRunAgainstHealthyService(t *testing.T) {
	handler := httphelpers.HandlerWithJSONResponse(map[string]interface{}{"ok": true}, nil)
	exitCode, stdout, _ := runAgainst(handler, nil)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, 9, strings.Count(stdout, "✅ SUCCESS"))
	assert.Contains(t, stdout, "🎉 Integration Tests Complete!")
	assert.NotContains(t, stdout, "passed,")
}

func TestRunExitsZeroWhenChecksFail(t *testing.T) {
	exitCode, stdout, _ := runAgainst(httphelpers.HandlerWithStatus(500), nil)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, 9, strings.Count(stdout, "❌ FAILED - Status: 500"))
}

func TestRunStrictModeSummarizesAndFails(t *testing.T) {
	exitCode, stdout, _ := runAgainst(httphelpers.HandlerWithStatus(500), map[string]string{envStrict: "true"})

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stdout, "0 passed, 9 failed, 0 skipped")
	assert.Contains(t, stdout, "FAILED: Health Check")
}

func TestRunStrictModeSucceeds(t *testing.T) {
	handler := httphelpers.HandlerWithJSONResponse([]int{1, 2}, nil)
	exitCode, stdout, _ := runAgainst(handler, map[string]string{envStrict: "true", envRun: "^Health"})

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "Some tests will be skipped")
	assert.Contains(t, stdout, "SKIPPED: Market Overview (excluded by filter parameters)")
	assert.Contains(t, stdout, "1 passed, 0 failed, 8 skipped")
}

func TestRunDumpsDebugOutputOnFailure(t *testing.T) {
	exitCode, stdout, _ := runAgainst(httphelpers.HandlerWithStatus(404),
		map[string]string{envDebug: "true", envRun: "^Agent Status$"})

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "GET /api/agents/status: HTTP 404")
	assert.Contains(t, stdout, "DEBUG [")
	assert.Contains(t, stdout, "Reproduce with: curl -sS -i")
}

func TestRunWarnsAboutArguments(t *testing.T) {
	handler := httphelpers.HandlerWithJSONResponse(map[string]interface{}{}, nil)
	exitCode, _, stderr := runAgainst(handler, map[string]string{envRun: "^Health"}, "--verbose")

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "Ignoring unexpected arguments: --verbose")
}

func TestRunRejectsInvalidConfiguration(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exitCode := run([]string{"smoketest"}, fakeEnv(map[string]string{envServiceURL: "localhost:8080"}), &stdout, &stderr)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Invalid parameters")
	assert.Empty(t, stdout.String())
}
