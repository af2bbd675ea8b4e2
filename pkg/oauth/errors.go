package oauth

import "errors"

var (
	// ErrUnknownErrorCode is returned when an authorization error code is not
	// one of the codes documented by the provider.
	ErrUnknownErrorCode = errors.New("oauth: unknown authorization error code")

	// ErrMalformedResponse is returned when a token response body is not valid
	// JSON or lacks a required field.
	ErrMalformedResponse = errors.New("oauth: malformed token response")

	// ErrInvalidRequest is returned by Validate when a request has missing or
	// malformed fields.
	ErrInvalidRequest = errors.New("oauth: invalid request")

	// ErrMissingCode is returned when the authorization callback carries
	// neither an error nor an authorization code.
	ErrMissingCode = errors.New("oauth: missing authorization code")

	// ErrInvalidState is returned when the state parameter cannot be decoded.
	ErrInvalidState = errors.New("oauth: invalid state")

	// ErrMissingClientID is returned when the OAuth client ID is not provided.
	ErrMissingClientID = errors.New("oauth: missing client ID")

	// ErrMissingClientSecret is returned when the OAuth client secret is not provided.
	ErrMissingClientSecret = errors.New("oauth: missing client secret")
)
