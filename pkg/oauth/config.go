package oauth

import "golang.org/x/oauth2"

// GoogleConfig holds Google OAuth configuration.
type GoogleConfig struct {
	ClientID     string   `env:"GOOGLE_OAUTH_CLIENT_ID"     yaml:"client_id"     validate:"required"`
	ClientSecret string   `env:"GOOGLE_OAUTH_CLIENT_SECRET" yaml:"client_secret" validate:"required"`
	RedirectURL  string   `env:"GOOGLE_OAUTH_REDIRECT_URL"  yaml:"redirect_url"  validate:"required,url"`
	Scopes       []string `env:"GOOGLE_OAUTH_SCOPES"        yaml:"scopes"        envSeparator:","`
}

// Validate checks the credentials are present.
func (c GoogleConfig) Validate() error {
	if c.ClientID == "" {
		return ErrMissingClientID
	}
	if c.ClientSecret == "" {
		return ErrMissingClientSecret
	}
	return nil
}

func (c GoogleConfig) scopes() []string {
	if len(c.Scopes) == 0 {
		return GoogleDefaultScopes()
	}
	return c.Scopes
}

// AuthorizationRequest builds a request for the configured client.
// Default scopes apply when none are configured.
func (c GoogleConfig) AuthorizationRequest(state string) AuthorizationRequest {
	return AuthorizationRequest{
		ClientID:    c.ClientID,
		RedirectURI: c.RedirectURL,
		Scopes:      c.scopes(),
		State:       state,
	}
}

// TokenRequest builds a code exchange request for the configured client.
func (c GoogleConfig) TokenRequest(code string) TokenRequest {
	return TokenRequest{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Code:         code,
		RedirectURI:  c.RedirectURL,
	}
}

// OAuth2Config returns the equivalent golang.org/x/oauth2 configuration.
func (c GoogleConfig) OAuth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Scopes:       c.scopes(),
		Endpoint:     Endpoint,
	}
}
