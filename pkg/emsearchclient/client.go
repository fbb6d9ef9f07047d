package emsearchclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/emsearch/emsearch-client/internal/client"
	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// New creates a new emsearch API client.
func New(ctx context.Context, config *emsearch.Config) (emsearch.Client, error) {
	if config == nil {
		return nil, emsearch.ErrConfigRequired
	}

	if config.BearerToken == "" {
		return nil, emsearch.ErrBearerTokenRequired
	}

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	// Work on a copy so the caller's config is left untouched.
	normalized := *config
	normalized.BaseURL = baseURL

	c, err := client.New(ctx, &normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithToken creates a client for baseURL authenticated with token.
// An empty baseURL selects the production host.
func NewWithToken(ctx context.Context, baseURL, token string) (emsearch.Client, error) {
	return New(ctx, &emsearch.Config{
		BaseURL:     baseURL,
		BearerToken: token,
	})
}

// normalizeBaseURL trims trailing slashes and adds https:// when no scheme
// is given.
func normalizeBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return constants.DefaultBaseURL, nil
	}

	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", emsearch.ErrInvalidBaseURL, baseURL)
	}

	return baseURL, nil
}
