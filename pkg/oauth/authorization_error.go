package oauth

import (
	"errors"
	"fmt"
)

// AuthorizationErrorCode is an error code the provider documents for the
// authorization endpoint.
type AuthorizationErrorCode string

// Documented authorization error codes.
const (
	AdminPolicyEnforced AuthorizationErrorCode = "admin_policy_enforced"
	DisallowedUserAgent AuthorizationErrorCode = "disallowed_useragent"
	OrgInternal         AuthorizationErrorCode = "org_internal"
	RedirectURIMismatch AuthorizationErrorCode = "redirect_uri_mismatch"
)

var authorizationErrorMessages = map[AuthorizationErrorCode]string{
	AdminPolicyEnforced: "Sign-in in not allowed because your organization's Google Workspace policy does not allow this feature currently.",
	DisallowedUserAgent: "Sign-in is not allowed via this browser.",
	OrgInternal:         "You cannot sign-in because this application is only for Google Workspace users of this organization.",
	RedirectURIMismatch: "Unable to sign-in because the request is initiated from suspicious source.",
}

// InterpretAuthorizationError maps a raw error code from the authorization
// callback to a known code. Matching is exact and case-sensitive.
// Returns ErrUnknownErrorCode for anything else.
func InterpretAuthorizationError(code string) (AuthorizationErrorCode, error) {
	c := AuthorizationErrorCode(code)
	if _, ok := authorizationErrorMessages[c]; !ok {
		return "", errors.Join(ErrUnknownErrorCode, fmt.Errorf("code=%q", code))
	}
	return c, nil
}

// Message returns the human-readable explanation for the code,
// or an empty string if the code is unknown.
func (c AuthorizationErrorCode) Message() string {
	return authorizationErrorMessages[c]
}

func (c AuthorizationErrorCode) String() string {
	return string(c)
}

// AuthorizationError is returned by ParseCallback when the provider
// redirected back with an error instead of a code.
type AuthorizationError struct {
	// Code is the interpreted error code. Empty if the provider sent a code
	// outside the documented set; RawCode always holds what was received.
	Code        AuthorizationErrorCode
	RawCode     string
	Description string

	err error
}

func (e *AuthorizationError) Error() string {
	msg := e.Code.Message()
	if msg == "" {
		msg = e.Description
	}
	if msg == "" {
		return "oauth: authorization failed: " + e.RawCode
	}
	return fmt.Sprintf("oauth: authorization failed: %s: %s", e.RawCode, msg)
}

// Unwrap exposes ErrUnknownErrorCode when the code was not recognised.
func (e *AuthorizationError) Unwrap() error {
	return e.err
}
