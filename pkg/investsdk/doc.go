/*
Package investsdk provides a client SDK for the Top Five investment API.

# Overview

The API is JSON over HTTP. Every response body is wrapped in an envelope:

	{ "message": "...", "data": { ... } }

The package is organized around two types:

  - SDKClient: unauthenticated operations (login, register)
  - Session: operations authenticated with a static bearer token

	client := investsdk.NewSDKClient(investsdk.DefaultBaseURL)

	session, err := client.Login(ctx, "12345678901", "secret")
	if err != nil {
		return err
	}

	me, err := session.Me(ctx)

A Session can also be built from a token obtained elsewhere:

	session := client.NewSession(token)

# Error Handling

Errors fall into two typed families:

  - *APIError: the server answered with a non-2xx status. Code carries
    data.code when present (e.g. CLIENT_NOT_FOUND) and Message the
    server's message field.
  - *TransportError: no usable answer. Connection failures, timeouts and
    non-JSON bodies (wrapping ErrMalformedResponse) all land here.

Use errors.As to tell them apart, and errors.Is with ErrClientNotFound for
the "never joined" case:

	me, err := session.Me(ctx)
	switch {
	case errors.Is(err, investsdk.ErrClientNotFound):
		// no plan yet, offer adhesion
	case err != nil:
		var apiErr *investsdk.APIError
		if errors.As(err, &apiErr) {
			fmt.Println("server said:", apiErr.Message)
		}
	}

Nothing is retried. A failed call is terminal and the caller decides
whether to issue it again.

# Transport

New builds an http.Client whose transport, outermost first:

 1. stamps User-Agent, X-Device-ID and a ULID X-Request-ID
 2. logs each request with log/slog
 3. waits on a token bucket limiter (golang.org/x/time/rate)

The limiter only delays requests; it never drops them.
*/
package investsdk
