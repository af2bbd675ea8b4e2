package oauth

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// TokenResponse is the subset of the token endpoint response this package uses.
type TokenResponse struct {
	AccessToken string
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64
}

// tokenResponseJSON is the wire shape of the token endpoint response.
// Pointers distinguish a missing field from a zero value.
type tokenResponseJSON struct {
	AccessToken *string          `json:"access_token"`
	ExpiresIn   *json.RawMessage `json:"expires_in"`
}

// ParseTokenResponse decodes a token endpoint response body.
//
// Only access_token and expires_in are read; other fields such as
// token_type, scope and refresh_token are ignored. Both fields are required,
// and expires_in must be a JSON integer. Any violation yields
// ErrMalformedResponse.
func ParseTokenResponse(body string) (TokenResponse, error) {
	var raw tokenResponseJSON
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return TokenResponse{}, errors.Join(ErrMalformedResponse, fmt.Errorf("decode token response: %w", err))
	}

	if raw.AccessToken == nil {
		return TokenResponse{}, errors.Join(ErrMalformedResponse, errors.New("missing access_token"))
	}
	if raw.ExpiresIn == nil {
		return TokenResponse{}, errors.Join(ErrMalformedResponse, errors.New("missing expires_in"))
	}

	// ParseInt rejects quoted numbers, fractions and exponents.
	expiresIn, err := strconv.ParseInt(string(*raw.ExpiresIn), 10, 64)
	if err != nil {
		return TokenResponse{}, errors.Join(ErrMalformedResponse, fmt.Errorf("expires_in is not an integer: %s", *raw.ExpiresIn))
	}

	return TokenResponse{
		AccessToken: *raw.AccessToken,
		ExpiresIn:   expiresIn,
	}, nil
}

// maxExpirySeconds is the largest lifetime representable as a time.Duration.
const maxExpirySeconds = int64(math.MaxInt64 / int64(time.Second))

// Token converts the response to an oauth2.Token for callers using the
// golang.org/x/oauth2 stack. now anchors the expiry. A non-positive or
// out-of-range ExpiresIn leaves Expiry zero, which oauth2 treats as never
// expiring.
func (r TokenResponse) Token(now time.Time) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   r.ExpiresIn,
	}
	if r.ExpiresIn > 0 && r.ExpiresIn <= maxExpirySeconds {
		tok.Expiry = now.Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	return tok
}
