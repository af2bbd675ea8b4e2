package oauth_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/progressit/googleauth/pkg/oauth"
)

func TestParseCallback(t *testing.T) {
	t.Parallel()

	t.Run("code and state", func(t *testing.T) {
		t.Parallel()
		cb, err := oauth.ParseCallback(url.Values{
			"code":  {"4/P7q7W91a-oMsCeLvIaQm6bTrgtp7"},
			"state": {`{"process":"signup"}`},
		})
		require.NoError(t, err)
		require.Equal(t, "4/P7q7W91a-oMsCeLvIaQm6bTrgtp7", cb.Code)
		require.Equal(t, `{"process":"signup"}`, cb.State)
	})

	t.Run("known error", func(t *testing.T) {
		t.Parallel()
		_, err := oauth.ParseCallback(url.Values{"error": {"org_internal"}})
		authErr, ok := oauth.IsAuthorizationError(err)
		require.True(t, ok)
		require.Equal(t, oauth.OrgInternal, authErr.Code)
		require.Equal(t, "org_internal", authErr.RawCode)
		require.NotErrorIs(t, err, oauth.ErrUnknownErrorCode)
		require.Contains(t, err.Error(), oauth.OrgInternal.Message())
	})

	t.Run("error wins over code", func(t *testing.T) {
		t.Parallel()
		_, err := oauth.ParseCallback(url.Values{
			"error": {"disallowed_useragent"},
			"code":  {"abc"},
		})
		authErr, ok := oauth.IsAuthorizationError(err)
		require.True(t, ok)
		require.Equal(t, oauth.DisallowedUserAgent, authErr.Code)
	})

	t.Run("undocumented error", func(t *testing.T) {
		t.Parallel()
		_, err := oauth.ParseCallback(url.Values{
			"error":             {"access_denied"},
			"error_description": {"The user denied access"},
		})
		require.ErrorIs(t, err, oauth.ErrUnknownErrorCode)

		var authErr *oauth.AuthorizationError
		require.True(t, errors.As(err, &authErr))
		require.Empty(t, authErr.Code)
		require.Equal(t, "access_denied", authErr.RawCode)
		require.Contains(t, err.Error(), "The user denied access")
	})

	t.Run("missing code", func(t *testing.T) {
		t.Parallel()
		_, err := oauth.ParseCallback(url.Values{"state": {"s"}})
		require.ErrorIs(t, err, oauth.ErrMissingCode)
		_, ok := oauth.IsAuthorizationError(err)
		require.False(t, ok)
	})
}
