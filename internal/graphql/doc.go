// Package graphql provides a minimal GraphQL-over-HTTP client.
//
// # Overview
//
// Each Client is bound to exactly one endpoint and carries its own static
// headers (for example an API key). There is no package-level client; callers
// construct one per endpoint and pass it where it is needed.
//
//	fetch, err := graphql.New("https://api.spacex.land/graphql/", graphql.Config{})
//	if err != nil {
//		return err
//	}
//	data, err := fetch(ctx, graphql.Request{Query: "{ launches { id } }"})
//
// # Requests
//
// Every call to Query issues one POST with a JSON body of the form
// {"query", "variables", "operationName"}. Connection failures and 5xx
// responses are retried by go-retryablehttp up to Config.RetryMax times.
// Request.Key derives a stable identity used by the query package to
// memoize bindings.
//
// # Errors
//
// Query never panics. Failures are returned as one of:
//
//   - *TransportError: the request did not produce a response (dial
//     failure, timeout, cancelled context)
//   - *ResponseError: status >= 400, a body that is not JSON, a non-empty
//     GraphQL errors array, or a missing/null data member
//
// Use errors.As, IsTransport or IsResponse to classify them.
package graphql
