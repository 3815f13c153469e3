// Package framework contains the low-level implementation of the smoke test harness that is not
// specific to any one service.
//
// The general model is:
//
// 1. The test harness talks to a service under test over HTTP. TestHarness owns the service's
// base URL, the HTTP client that is reused for every request, and the request timeout.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate success/failure
// results. A panic inside one test is converted into a failure of that test only.
//
// The service-specific code that knows what is being tested is responsible for choosing which
// endpoints to request and how to classify and report what comes back.
package framework
