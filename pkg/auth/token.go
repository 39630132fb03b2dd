package auth

import (
	"context"
	"net/http"
	"os"

	"golang.org/x/oauth2"
)

// TokenEnvVar supplies the default access token when no --token flag is
// given. Create one at https://github.com/settings/tokens (repo scope).
const TokenEnvVar = "GITHUB_TOKEN"

// ResolveToken returns the token to use: the flag value if set, otherwise
// the GITHUB_TOKEN environment variable. Empty means no token available.
func ResolveToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	return os.Getenv(TokenEnvVar)
}

// NewHTTPClient returns an *http.Client that authenticates every request
// with the given personal access token.
func NewHTTPClient(ctx context.Context, token string) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return oauth2.NewClient(ctx, src)
}
