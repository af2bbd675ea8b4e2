package oauth

import (
	"errors"
	"net/url"
)

// Callback is the outcome of a successful authorization redirect.
type Callback struct {
	Code  string
	State string
}

// ParseCallback reads the query of the redirect back from the authorization
// endpoint. An error parameter takes precedence over a code and is returned
// as *AuthorizationError. The state value is returned as is; comparing it with
// the value sent is up to the caller.
func ParseCallback(q url.Values) (Callback, error) {
	if raw := q.Get(ErrorResponseFieldName()); raw != "" {
		authErr := &AuthorizationError{
			RawCode:     raw,
			Description: q.Get("error_description"),
		}
		code, err := InterpretAuthorizationError(raw)
		if err != nil {
			authErr.err = err
		} else {
			authErr.Code = code
		}
		return Callback{}, authErr
	}

	code := q.Get(CodeResponseFieldName())
	if code == "" {
		return Callback{}, ErrMissingCode
	}

	return Callback{
		Code:  code,
		State: q.Get("state"),
	}, nil
}

// IsAuthorizationError reports whether err carries an *AuthorizationError and
// returns it.
func IsAuthorizationError(err error) (*AuthorizationError, bool) {
	var authErr *AuthorizationError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}
