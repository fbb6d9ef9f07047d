package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const testToken = "test-token"

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// setupCLI resets viper, points it at apiURL and at a config file in a
// temporary directory, and returns that file's path.
func setupCLI(t *testing.T, apiURL, output string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(configFile)
	viper.Set("api", apiURL)
	viper.Set("token", testToken)
	viper.Set("output", output)

	return configFile
}

// executeCommand runs cmd with args and returns everything it printed.
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	// A nil slice makes cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

// apiCall is one canned exchange of the fake API.
type apiCall struct {
	method string
	path   string
	status int
	body   string
	check  func(t *testing.T, r *http.Request)
}

// newAPIServer serves call and fails the test on any other request.
func newAPIServer(t *testing.T, call apiCall) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, call.method, r.Method)
		assert.Equal(t, call.path, r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		if call.check != nil {
			call.check(t, r)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(call.status)

		if call.body != "" {
			_, _ = w.Write([]byte(call.body))
		}
	}))
	t.Cleanup(server.Close)

	return server
}
