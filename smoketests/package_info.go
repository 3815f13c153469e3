// Package smoketests contains the smoke tests for the yoree platform API: the list of endpoints
// to check, the checker that requests one endpoint and classifies what comes back, and the
// console report.
//
// Infrastructure that is not specific to this API, such as the test context and the HTTP client
// shared by all requests, is in the lower-level framework package.
package smoketests
