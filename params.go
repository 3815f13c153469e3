package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/yoree-platform/api-smoke-tests/framework"
	"github.com/yoree-platform/api-smoke-tests/servicedef"

	"github.com/joho/godotenv"
)

const (
	envDotenvName = "SMOKE_ENV"
	envServiceURL = "SMOKE_BASE_URL"
	envTimeout    = "SMOKE_TIMEOUT"
	envRun        = "SMOKE_RUN"
	envSkip       = "SMOKE_SKIP"
	envDebug      = "SMOKE_DEBUG"
	envDebugAll   = "SMOKE_DEBUG_ALL"
	envDebugLog   = "SMOKE_DEBUG_LOG"
	envStrict     = "SMOKE_STRICT"
)

type commandParams struct {
	serviceURL string
	timeout    time.Duration
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
	debugLog   bool
	strict     bool
}

// Read fills in the parameters from environment variables. An unparseable timeout falls back to
// the default with a warning; every other invalid value is an error.
func (c *commandParams) Read(getenv func(string) string, warnings io.Writer) error {
	c.serviceURL = getenv(envServiceURL)
	if c.serviceURL == "" {
		c.serviceURL = servicedef.DefaultBaseURL
	}

	c.timeout = framework.DefaultRequestTimeout
	if s := getenv(envTimeout); s != "" {
		timeout, err := time.ParseDuration(s)
		if err != nil || timeout <= 0 {
			fmt.Fprintf(warnings, "Ignoring invalid %s %q, using %s\n", envTimeout, s, c.timeout)
		} else {
			c.timeout = timeout
		}
	}

	if err := c.filters.MustMatch.SetAll(getenv(envRun)); err != nil {
		return fmt.Errorf("%s: %w", envRun, err)
	}
	if err := c.filters.MustNotMatch.SetAll(getenv(envSkip)); err != nil {
		return fmt.Errorf("%s: %w", envSkip, err)
	}

	for _, b := range []struct {
		name  string
		value *bool
	}{
		{envDebug, &c.debug},
		{envDebugAll, &c.debugAll},
		{envDebugLog, &c.debugLog},
		{envStrict, &c.strict},
	} {
		s := getenv(b.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", b.name, s)
		}
		*b.value = v
	}
	return nil
}

// loadDotenv loads <SMOKE_ENV>.env if SMOKE_ENV is set, or else .env if it exists. Variables
// that are already set in the environment are not overridden.
func loadDotenv() error {
	if name := os.Getenv(envDotenvName); name != "" {
		return godotenv.Load(name + ".env")
	}
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}
