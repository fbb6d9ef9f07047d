//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
	"github.com/emsearch/emsearch-client/pkg/emsearchclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BearerToken string
	APIBaseURL  string
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BearerToken: os.Getenv("bearerToken"),
		APIBaseURL:  os.Getenv("apiBaseUrl"),
		Verbose:     os.Getenv("EMSEARCH_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.BearerToken == "" {
		t.Skip("bearerToken not set, skipping integration test")
	}

	if config.APIBaseURL == "" {
		t.Skip("apiBaseUrl not set, skipping integration test")
	}
}

// NewClient builds a client against the configured API.
func (config *TestConfig) NewClient(t *testing.T) emsearch.Client {
	t.Helper()

	client, err := emsearchclient.New(context.Background(), &emsearch.Config{
		BaseURL:     config.APIBaseURL,
		BearerToken: config.BearerToken,
		Logger:      testLogger{t: t},
		Debug:       config.Verbose,
	})
	require.NoError(t, err)

	return client
}

// GenerateTestName generates a unique name for test resources
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

type testLogger struct {
	t *testing.T
}

func (l testLogger) Debug(msg string, fields map[string]interface{}) { l.t.Logf("DEBUG %s %v", msg, fields) }
func (l testLogger) Info(msg string, fields map[string]interface{})  { l.t.Logf("INFO %s %v", msg, fields) }
func (l testLogger) Warn(msg string, fields map[string]interface{})  { l.t.Logf("WARN %s %v", msg, fields) }
func (l testLogger) Error(msg string, fields map[string]interface{}) { l.t.Logf("ERROR %s %v", msg, fields) }
