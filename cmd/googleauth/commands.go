package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/progressit/googleauth/pkg/oauth"
)

func newAuthURLCmd(a *app) *cobra.Command {
	var state, process, originalPath string

	cmd := &cobra.Command{
		Use:   "auth-url",
		Short: "Print the authorization URL for the configured client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			if state == "" {
				encoded, err := oauth.NewState(process, originalPath).Encode()
				if err != nil {
					return err
				}
				state = encoded
			}

			req := a.cfg.Google.AuthorizationRequest(state)
			if err := req.Validate(); err != nil {
				return err
			}

			u := oauth.BuildAuthorizationURL(req)
			a.log.Debug("authorization url built", slog.Int("scopes", len(req.Scopes)), slog.String("url", u))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "opaque state value (generated when empty)")
	cmd.Flags().StringVar(&process, "process", "signin", "process recorded in the generated state")
	cmd.Flags().StringVar(&originalPath, "original-path", "/", "path recorded in the generated state")
	return cmd
}

func newTokenURLCmd(a *app) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "token-url",
		Short: "Print the token exchange URL for an authorization code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			req := a.cfg.Google.TokenRequest(code)
			if err := req.Validate(); err != nil {
				return err
			}

			u := oauth.BuildTokenURL(req)
			a.log.Debug("token url built", slog.String("url", u))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "authorization code from the callback")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func newParseTokenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse-token [FILE|-]",
		Short: "Parse a token endpoint response (stdin by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			resp, err := oauth.ParseTokenResponse(string(body))
			if err != nil {
				a.log.Warn("token response rejected", slog.String("error", err.Error()))
				return err
			}
			a.log.Debug("token response parsed", slog.Int64("expires_in", resp.ExpiresIn))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "access_token: %s\n", resp.AccessToken)
			fmt.Fprintf(out, "expires_in: %d\n", resp.ExpiresIn)
			_, err = fmt.Fprintf(out, "%s: %s\n", oauth.AuthorizationHeaderName(), oauth.AuthorizationHeaderValue(resp.AccessToken))
			return err
		},
	}
}

func newHeaderCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "header",
		Short: "Print the Authorization header for an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", oauth.AuthorizationHeaderName(), oauth.AuthorizationHeaderValue(token))
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "access token")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func newExplainErrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain-error CODE",
		Short: "Explain an authorization error code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := oauth.InterpretAuthorizationError(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), code.Message())
			return err
		},
	}
}

func newCallbackCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "callback URL",
		Short: "Parse the redirect URL the provider sent the user back to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse callback url: %w", err)
			}

			cb, err := oauth.ParseCallback(u.Query())
			if authErr, ok := oauth.IsAuthorizationError(err); ok {
				a.log.Info("authorization denied", slog.String("error", authErr.RawCode))
				return authErr
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "code: %s\n", cb.Code)
			fmt.Fprintf(out, "state: %s\n", cb.State)

			// Plain opaque states are fine; only structured ones are expanded.
			if s, err := oauth.DecodeState(cb.State); err == nil {
				fmt.Fprintf(out, "process: %s\n", s.Process)
				fmt.Fprintf(out, "original_request_path: %s\n", s.OriginalRequestPath)
			}
			return nil
		},
	}
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	body, err := os.ReadFile(args[0])
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("token response file %s does not exist", args[0])
	}
	return body, err
}
