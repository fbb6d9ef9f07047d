package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/internal/constants"
)

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    map[string]string
		wantErr bool
	}{
		{name: "none", values: nil, want: map[string]string{}},
		{name: "single", values: []string{"X-Tenant=acme"}, want: map[string]string{"X-Tenant": "acme"}},
		{name: "value with equals", values: []string{"X-Filter=a=b"}, want: map[string]string{"X-Filter": "a=b"}},
		{name: "spaces trimmed", values: []string{" Accept-Language = fr "}, want: map[string]string{"Accept-Language": "fr"}},
		{name: "empty value", values: []string{"X-Empty="}, want: map[string]string{"X-Empty": ""}},
		{name: "missing separator", values: []string{"X-Tenant"}, wantErr: true},
		{name: "missing key", values: []string{"=acme"}, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			headers, err := parseHeaders(testCase.values)
			if testCase.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidHeaderFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, headers)
		})
	}
}

func TestBuildClientConfig(t *testing.T) {
	setupCLI(t, "https://staging.emsearch.io", constants.FormatTable)
	viper.Set("headers", map[string]string{"x-tenant": "acme", "accept-language": "en"})
	viper.Set("header", []string{"accept-language=fr"})

	config, err := buildClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.emsearch.io", config.BaseURL)
	assert.Equal(t, testToken, config.BearerToken)
	assert.Equal(t, map[string]string{"x-tenant": "acme", "accept-language": "fr"}, config.Headers)
	assert.Nil(t, config.Logger)
	assert.False(t, config.Debug)

	viper.Set("verbose", true)

	config, err = buildClientConfig()
	require.NoError(t, err)
	assert.NotNil(t, config.Logger)
	assert.True(t, config.Debug)
}

func TestNewLogger(t *testing.T) {
	buf := new(bytes.Buffer)

	logger := NewLogger(buf, false)
	logger.Debug("hidden", nil)
	logger.Info("HTTP Response", map[string]interface{}{"status": 200, "method": "GET"})

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), `msg="HTTP Response" method=GET status=200`)

	buf.Reset()

	verbose := NewLogger(buf, true)
	verbose.Debug("shown", map[string]interface{}{"path": "/projects"})
	assert.Contains(t, buf.String(), "level=DEBUG msg=shown path=/projects")
}
