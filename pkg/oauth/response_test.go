package oauth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/progressit/googleauth/pkg/oauth"
)

func TestParseTokenResponse(t *testing.T) {
	t.Parallel()

	t.Run("full provider response", func(t *testing.T) {
		t.Parallel()
		resp, err := oauth.ParseTokenResponse(`{
  "access_token": "1/fFAGRNJru1FTz70BzhT3Zg",
  "expires_in": 3920,
  "token_type": "Bearer",
  "scope": "https://www.googleapis.com/auth/drive.metadata.readonly",
  "refresh_token": "1//xEoDL4iW3cxlI7yDbSRFYNG01kVKM2C-259HOF2aQbI"
}`)
		require.NoError(t, err)
		require.Equal(t, "1/fFAGRNJru1FTz70BzhT3Zg", resp.AccessToken)
		require.Equal(t, int64(3920), resp.ExpiresIn)
	})

	t.Run("compact with unknown field", func(t *testing.T) {
		t.Parallel()
		resp, err := oauth.ParseTokenResponse(`{"access_token":"1/fFAGRNJru1FTz70BzhT3Zg","expires_in":3920,"token_type":"Bearer"}`)
		require.NoError(t, err)
		require.Equal(t, oauth.TokenResponse{AccessToken: "1/fFAGRNJru1FTz70BzhT3Zg", ExpiresIn: 3920}, resp)
	})

	t.Run("expires_in beyond 32 bits", func(t *testing.T) {
		t.Parallel()
		resp, err := oauth.ParseTokenResponse(`{"access_token":"t","expires_in":9007199254740993}`)
		require.NoError(t, err)
		require.Equal(t, int64(9007199254740993), resp.ExpiresIn)
	})

	t.Run("empty access token is kept", func(t *testing.T) {
		t.Parallel()
		resp, err := oauth.ParseTokenResponse(`{"access_token":"","expires_in":0}`)
		require.NoError(t, err)
		require.Empty(t, resp.AccessToken)
		require.Zero(t, resp.ExpiresIn)
	})

	malformed := []struct {
		name string
		body string
	}{
		{"missing access_token", `{"expires_in":3920}`},
		{"missing expires_in", `{"access_token":"t"}`},
		{"null access_token", `{"access_token":null,"expires_in":3920}`},
		{"null expires_in", `{"access_token":"t","expires_in":null}`},
		{"numeric access_token", `{"access_token":42,"expires_in":3920}`},
		{"fractional expires_in", `{"access_token":"t","expires_in":39.5}`},
		{"exponent expires_in", `{"access_token":"t","expires_in":1e3}`},
		{"quoted expires_in", `{"access_token":"t","expires_in":"3920"}`},
		{"boolean expires_in", `{"access_token":"t","expires_in":true}`},
		{"expires_in overflows int64", `{"access_token":"t","expires_in":99999999999999999999}`},
		{"not json", `not-json`},
		{"empty body", ``},
		{"json array", `[{"access_token":"t","expires_in":1}]`},
		{"json null", `null`},
		{"trailing garbage", `{"access_token":"t","expires_in":1} extra`},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := oauth.ParseTokenResponse(tt.body)
			require.ErrorIs(t, err, oauth.ErrMalformedResponse)
			require.Equal(t, oauth.TokenResponse{}, resp)
		})
	}
}

func TestTokenResponse_Token(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("expiry from lifetime", func(t *testing.T) {
		t.Parallel()
		tok := oauth.TokenResponse{AccessToken: "abc", ExpiresIn: 3920}.Token(now)
		require.Equal(t, "abc", tok.AccessToken)
		require.Equal(t, "Bearer", tok.Type())
		require.Equal(t, now.Add(3920*time.Second), tok.Expiry)
		require.Equal(t, int64(3920), tok.ExpiresIn)
	})

	t.Run("header agrees with oauth2", func(t *testing.T) {
		t.Parallel()
		tok := oauth.TokenResponse{AccessToken: "abc", ExpiresIn: 60}.Token(now)
		require.Equal(t, oauth.AuthorizationHeaderValue("abc"), tok.Type()+" "+tok.AccessToken)
	})

	t.Run("non-positive lifetime has no expiry", func(t *testing.T) {
		t.Parallel()
		tok := oauth.TokenResponse{AccessToken: "abc"}.Token(now)
		require.True(t, tok.Expiry.IsZero())
	})

	t.Run("lifetime too large for duration has no expiry", func(t *testing.T) {
		t.Parallel()
		tok := oauth.TokenResponse{AccessToken: "abc", ExpiresIn: 1 << 62}.Token(now)
		require.True(t, tok.Expiry.IsZero())
	})
}
