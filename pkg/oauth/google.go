package oauth

import (
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

const (
	// AuthEndpoint is where the end user is sent to grant consent.
	AuthEndpoint = "https://accounts.google.com/o/oauth2/v2/auth"
	// TokenEndpoint is where an authorization code is exchanged for an access token.
	TokenEndpoint = "https://accounts.google.com/o/oauth2/v2/token"

	responseTypeCode       = "code"
	accessTypeOnline       = "online"
	grantTypeAuthorization = "authorization_code"
	bearerPrefix           = "Bearer "
)

// Endpoint describes the provider endpoints for use with golang.org/x/oauth2.
// Client credentials travel as parameters, same as BuildTokenURL.
var Endpoint = oauth2.Endpoint{
	AuthURL:   AuthEndpoint,
	TokenURL:  TokenEndpoint,
	AuthStyle: oauth2.AuthStyleInParams,
}

// GoogleDefaultScopes returns the default scopes for Google sign-in.
func GoogleDefaultScopes() []string {
	return []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	}
}

// BuildAuthorizationURL returns the URL the user agent is redirected to in
// order to start the sign-in flow.
//
// Parameters are written in a fixed order: client_id, redirect_uri,
// response_type, scope, access_type, state. Callers comparing URLs byte for
// byte rely on that order, so url.Values (which sorts keys) is not used.
func BuildAuthorizationURL(req AuthorizationRequest) string {
	var q query
	q.add("client_id", req.ClientID)
	q.add("redirect_uri", req.RedirectURI)
	q.add("response_type", responseTypeCode)
	q.add("scope", strings.Join(req.Scopes, " "))
	q.add("access_type", accessTypeOnline)
	q.add("state", req.State)
	return AuthEndpoint + q.String()
}

// BuildTokenURL returns the URL used to exchange an authorization code for an
// access token. Parameter order: client_id, client_secret, code, grant_type,
// redirect_uri.
func BuildTokenURL(req TokenRequest) string {
	var q query
	q.add("client_id", req.ClientID)
	q.add("client_secret", req.ClientSecret)
	q.add("code", req.Code)
	q.add("grant_type", grantTypeAuthorization)
	q.add("redirect_uri", req.RedirectURI)
	return TokenEndpoint + q.String()
}

// ErrorResponseFieldName returns the callback query parameter that carries an
// authorization error code.
func ErrorResponseFieldName() string {
	return "error"
}

// CodeResponseFieldName returns the callback query parameter that carries the
// authorization code.
func CodeResponseFieldName() string {
	return "code"
}

// AuthorizationHeaderName returns the HTTP header used to present the access token.
func AuthorizationHeaderName() string {
	return "Authorization"
}

// AuthorizationHeaderValue formats an access token as a bearer credential.
// The token is used as is.
func AuthorizationHeaderValue(accessToken string) string {
	return bearerPrefix + accessToken
}

// query is an order-preserving query string builder.
type query struct {
	sb strings.Builder
}

func (q *query) add(key, value string) {
	if q.sb.Len() == 0 {
		q.sb.WriteByte('?')
	} else {
		q.sb.WriteByte('&')
	}
	q.sb.WriteString(key)
	q.sb.WriteByte('=')
	q.sb.WriteString(url.QueryEscape(value))
}

func (q *query) String() string {
	return q.sb.String()
}
