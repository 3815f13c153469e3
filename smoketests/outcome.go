package smoketests

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// OutcomeKind identifies which variant an Outcome is.
type OutcomeKind int

const (
	// OutcomeSuccess means HTTP 200 with a JSON body.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeHTTPFailure means any status other than 200.
	OutcomeHTTPFailure
	// OutcomeTransportError means no complete response was received: connection refused, DNS
	// failure, timeout, or a broken connection while reading the body.
	OutcomeTransportError
	// OutcomeDecodeError means HTTP 200 with a body that is not valid JSON.
	OutcomeDecodeError
	// OutcomeOtherError covers everything else, such as a request that could not be built.
	OutcomeOtherError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPFailure:
		return "HTTP failure"
	case OutcomeTransportError:
		return "transport error"
	case OutcomeDecodeError:
		return "decode error"
	case OutcomeOtherError:
		return "error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the classified result of checking one endpoint. Which fields are meaningful
// depends on Kind:
//
//   - OutcomeSuccess: Payload and Body
//   - OutcomeHTTPFailure: StatusCode and Body
//   - OutcomeDecodeError: Message and Body
//   - OutcomeTransportError, OutcomeOtherError: Message
type Outcome struct {
	Kind       OutcomeKind
	Payload    ldvalue.Value
	StatusCode int
	Body       string
	Message    string
}

func Success(payload ldvalue.Value, body string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Payload: payload, StatusCode: 200, Body: body}
}

func HTTPFailure(statusCode int, body string) Outcome {
	return Outcome{Kind: OutcomeHTTPFailure, StatusCode: statusCode, Body: body}
}

func TransportError(message string) Outcome {
	return Outcome{Kind: OutcomeTransportError, Message: message}
}

func DecodeError(message string, body string) Outcome {
	return Outcome{Kind: OutcomeDecodeError, StatusCode: 200, Message: message, Body: body}
}

func OtherError(message string) Outcome {
	return Outcome{Kind: OutcomeOtherError, Message: message}
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "success"
	case OutcomeHTTPFailure:
		return fmt.Sprintf("HTTP %d: %s", o.StatusCode, o.Body)
	default:
		return fmt.Sprintf("%s: %s", o.Kind, o.Message)
	}
}
