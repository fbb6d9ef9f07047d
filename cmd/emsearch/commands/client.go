package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
	"github.com/emsearch/emsearch-client/pkg/emsearchclient"
)

// CreateClient builds an API client from the merged flag, environment and
// config file settings.
func CreateClient(ctx context.Context) (emsearch.Client, error) {
	config, err := buildClientConfig()
	if err != nil {
		return nil, err
	}

	client, err := emsearchclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func buildClientConfig() (*emsearch.Config, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	headers := make(map[string]string)
	for key, value := range viper.GetStringMapString("headers") {
		headers[key] = value
	}

	flagHeaders, err := parseHeaders(viper.GetStringSlice("header"))
	if err != nil {
		return nil, err
	}

	for key, value := range flagHeaders {
		headers[key] = value
	}

	config := &emsearch.Config{
		BaseURL:     viper.GetString("api"),
		BearerToken: token,
		Headers:     headers,
	}

	if viper.GetBool("verbose") {
		config.Logger = NewLogger(os.Stderr, true)
		config.Debug = true
	}

	return config, nil
}

// parseHeaders parses repeated key=value header flags.
func parseHeaders(values []string) (map[string]string, error) {
	headers := make(map[string]string, len(values))

	for _, value := range values {
		key, val, found := strings.Cut(value, "=")

		key = strings.TrimSpace(key)
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidHeaderFormat, value)
		}

		headers[key] = strings.TrimSpace(val)
	}

	return headers, nil
}

// commandContext bounds a command's API calls.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithTimeout(ctx, constants.DefaultCommandTimeout)
}
