package commands

import (
	"net/http"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

func TestLogin_ReadsTokenAndVerifies(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodGet,
		path:   "/projects",
		status: http.StatusOK,
		body:   `{"data":[],"meta":{"pagination":{"total":0,"count":0,"per_page":1,"current_page":1,"total_pages":1,"links":[]}}}`,
		check: func(t *testing.T, r *http.Request) {
			t.Helper()

			assert.Equal(t, "1", r.URL.Query().Get("limit"))
		},
	})
	configFile := setupCLI(t, server.URL, constants.FormatTable)
	viper.Set("token", "")

	cmd := NewLoginCommand()
	cmd.SetIn(strings.NewReader(testToken + "\n"))

	out, err := executeCommand(cmd)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully logged in to "+server.URL)

	config := readConfigFile(t, configFile)
	assert.Equal(t, testToken, config.Token)
	assert.Equal(t, server.URL, config.API)
}

func TestLogin_RejectedToken(t *testing.T) {
	server := newAPIServer(t, apiCall{
		method: http.MethodGet,
		path:   "/projects",
		status: http.StatusUnauthorized,
		body:   `{"message":"Unauthenticated.","errors":[]}`,
	})
	configFile := setupCLI(t, server.URL, constants.FormatTable)

	_, err := executeCommand(NewLoginCommand())
	require.Error(t, err)
	assert.True(t, emsearch.IsUnauthorized(err))
	assert.NoFileExists(t, configFile)
}

func TestLogin_SkipVerify(t *testing.T) {
	configFile := setupCLI(t, "", constants.FormatTable)
	viper.Set("token", "")

	cmd := NewLoginCommand()
	cmd.SetIn(strings.NewReader("offline-token\n"))

	out, err := executeCommand(cmd, "--skip-verify")
	require.NoError(t, err)
	assert.Contains(t, out, constants.DefaultBaseURL)
	assert.Equal(t, "offline-token", readConfigFile(t, configFile).Token)
}

func TestLogin_EmptyToken(t *testing.T) {
	setupCLI(t, "", constants.FormatTable)
	viper.Set("token", "")

	cmd := NewLoginCommand()
	cmd.SetIn(strings.NewReader("\n"))

	_, err := executeCommand(cmd, "--skip-verify")
	require.ErrorIs(t, err, constants.ErrEmptyToken)
}

func TestLogout(t *testing.T) {
	configFile := setupCLI(t, "https://api.emsearch.io", constants.FormatTable)

	out, err := executeCommand(NewLogoutCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully logged out")

	config := readConfigFile(t, configFile)
	assert.Empty(t, config.Token)
	assert.Equal(t, "https://api.emsearch.io", config.API)
}
