package smoketests

import (
	"context"

	"github.com/yoree-platform/api-smoke-tests/framework"
)

// RunTestSuite checks every test case in order, one at a time, between a start banner and a
// completion banner. A failure of one case never prevents the next from running. Cases rejected
// by filter are skipped without sending a request.
func RunTestSuite(
	ctx context.Context,
	checker *Checker,
	cases []TestCase,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	PrintStartBanner(checker.Output())

	results := framework.Run(filter, testLogger, func(c *framework.Context) {
		for _, tc := range cases {
			tc := tc
			c.Run(tc.Description, func(c *framework.Context) {
				outcome := checker.Check(ctx, tc, c.DebugLogger())
				if !outcome.OK() {
					c.Errorf("GET %s: %s", tc.Endpoint, outcome)
				}
			})
		}
	})

	PrintCompletionBanner(checker.Output())
	return results
}
