// Package oauth builds and parses the requests of a Google OAuth2 authorization
// code flow.
//
// The package performs no network I/O. It produces the URLs to send the user
// agent and the token request to, interprets what comes back, and formats the
// resulting access token as an Authorization header. Every function is pure and
// safe for concurrent use.
//
// # Features
//
//   - Authorization and token URLs with a fixed, byte-stable parameter order
//   - Closed table of documented authorization error codes with user-facing messages
//   - Lenient token response parsing: unknown fields ignored, required fields enforced
//   - Callback query parsing and a structured, JSON-encoded state payload
//   - Bridges to golang.org/x/oauth2 (Endpoint, TokenResponse.Token, GoogleConfig.OAuth2Config)
//   - Sentinel errors with "oauth:" prefix for consistent error handling
//
// # Usage
//
// Start the flow:
//
//	state, err := oauth.NewState("signup", r.URL.String()).Encode()
//	if err != nil {
//		return err
//	}
//	http.Redirect(w, r, oauth.BuildAuthorizationURL(cfg.AuthorizationRequest(state)), http.StatusFound)
//
// Handle the redirect back:
//
//	cb, err := oauth.ParseCallback(r.URL.Query())
//	if authErr, ok := oauth.IsAuthorizationError(err); ok {
//		// show authErr.Code.Message() to the user
//	}
//
//	tokenURL := oauth.BuildTokenURL(cfg.TokenRequest(cb.Code))
//	// POST to tokenURL with your own HTTP client, then:
//	tok, err := oauth.ParseTokenResponse(body)
//	req.Header.Set(oauth.AuthorizationHeaderName(), oauth.AuthorizationHeaderValue(tok.AccessToken))
//
// # Error Handling
//
//   - ErrUnknownErrorCode: error code outside the documented set
//   - ErrMalformedResponse: token response is not JSON or lacks access_token / expires_in
//   - ErrInvalidRequest: Validate found a missing or malformed field
//   - ErrMissingCode: callback carries neither error nor code
//   - ErrInvalidState: state value is not a valid encoded State
//
// Use errors.Is for checking:
//
//	if errors.Is(err, oauth.ErrMalformedResponse) {
//		// abort sign-in
//	}
//
// # Security
//
//   - Always compare the returned state with the value stored before redirecting
//   - The token URL carries the client secret; never log it or send it to the browser
//   - Use HTTPS redirect URIs in production
package oauth
