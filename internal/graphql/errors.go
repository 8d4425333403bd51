package graphql

import (
	"errors"
	"fmt"
	"strings"
)

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("graphql %s: transport: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError reports a response that was received but is unusable: an
// error status, a malformed body, GraphQL errors, or missing data.
type ResponseError struct {
	Endpoint string
	Status   int
	Messages []string
}

func (e *ResponseError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if msg == "" {
		msg = "no detail"
	}
	if e.Status >= 400 {
		return fmt.Sprintf("graphql %s returned status %d: %s", e.Endpoint, e.Status, msg)
	}
	return fmt.Sprintf("graphql %s: %s", e.Endpoint, msg)
}

// IsTransport reports whether err is, or wraps, a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsResponse reports whether err is, or wraps, a ResponseError.
func IsResponse(err error) bool {
	var re *ResponseError
	return errors.As(err, &re)
}
