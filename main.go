package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yoree-platform/api-smoke-tests/framework"
	"github.com/yoree-platform/api-smoke-tests/logging"
	"github.com/yoree-platform/api-smoke-tests/smoketests"
)

func main() {
	if err := loadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "Could not load environment file: %s\n", err)
		os.Exit(1)
	}
	os.Exit(run(os.Args, os.Getenv, os.Stdout, os.Stderr))
}

// run returns the process exit code. Failed checks only make it nonzero in strict mode.
func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(stderr, "Ignoring unexpected arguments: %s\n", strings.Join(args[1:], " "))
	}

	var params commandParams
	if err := params.Read(getenv, stderr); err != nil {
		fmt.Fprintf(stderr, "Invalid parameters: %s\n", err)
		return 1
	}

	debugLogger := logging.NewZapLogger(params.debugLog)
	defer func() { _ = debugLogger.Sync() }()

	harness, err := framework.NewTestHarness(params.serviceURL, params.timeout, debugLogger.With("component", "harness"))
	if err != nil {
		fmt.Fprintf(stderr, "Invalid parameters: %s\n", err)
		return 1
	}

	framework.PrintFilterDescription(stdout, params.filters)

	testLogger := &ConsoleTestLogger{
		Out:                  stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	checker := smoketests.NewChecker(harness, stdout)
	results := smoketests.RunTestSuite(context.Background(), checker, smoketests.DefaultTestCases(),
		params.filters.AsFilter, testLogger)

	if params.strict {
		fmt.Fprintln(stdout)
		framework.PrintResults(stdout, results)
		if !results.OK() {
			return 1
		}
	}
	return 0
}
