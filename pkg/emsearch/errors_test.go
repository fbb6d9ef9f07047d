package emsearch_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

func TestErrorResponse_Unmarshal(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
		wantErrors  emsearch.FieldErrors
		wantCode    *int
	}{
		{
			name:        "validation errors",
			body:        `{"message":"The given data was invalid.","errors":{"email":["The email has already been taken."]},"status_code":422}`,
			wantMessage: "The given data was invalid.",
			wantErrors:  emsearch.FieldErrors{"email": {"The email has already been taken."}},
		},
		{
			name:        "empty errors array",
			body:        `{"message":"Unauthenticated.","errors":[],"app_error_code":401}`,
			wantMessage: "Unauthenticated.",
			wantCode:    emsearch.Int(401),
		},
		{
			name: "null message",
			body: `{"message":null}`,
		},
		{
			name: "empty object",
			body: `{}`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			errResp, err := emsearch.ParseErrorResponse([]byte(testCase.body))
			require.NoError(t, err)
			assert.Equal(t, testCase.wantMessage, errResp.GetMessage())
			assert.Equal(t, testCase.wantErrors, errResp.Errors)
			assert.Equal(t, testCase.wantCode, errResp.AppErrorCode)
		})
	}
}

func TestParseErrorResponse_NotJSON(t *testing.T) {
	_, err := emsearch.ParseErrorResponse([]byte("<html></html>"))
	require.Error(t, err)
}

func TestErrorResponse_DebugPayload(t *testing.T) {
	var errResp emsearch.ErrorResponse

	err := json.Unmarshal([]byte(`{"message":"Server Error","debug":{"exception":"RuntimeException","line":12}}`), &errResp)
	require.NoError(t, err)

	debug, ok := errResp.Debug.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "RuntimeException", debug["exception"])
}

func TestUnexpectedStatusCodeError(t *testing.T) {
	message := "No query results"
	statusErr := &emsearch.UnexpectedStatusCodeError{
		StatusCode:         http.StatusNotFound,
		ExpectedStatusCode: http.StatusOK,
		Payload:            &emsearch.ErrorResponse{Message: &message},
	}

	assert.Equal(t, "unexpected response status code 404 (expected 200): No query results", statusErr.Error())

	bare := &emsearch.UnexpectedStatusCodeError{StatusCode: 500, ExpectedStatusCode: 201}
	assert.Equal(t, "unexpected response status code 500 (expected 201)", bare.Error())
	assert.Nil(t, bare.FieldErrors())
}

func TestErrorHelpers(t *testing.T) {
	wrap := func(status int) error {
		return fmt.Errorf("getting project: %w", &emsearch.UnexpectedStatusCodeError{StatusCode: status, ExpectedStatusCode: 200})
	}

	assert.True(t, emsearch.IsNotFound(wrap(http.StatusNotFound)))
	assert.True(t, emsearch.IsUnauthorized(wrap(http.StatusUnauthorized)))
	assert.True(t, emsearch.IsForbidden(wrap(http.StatusForbidden)))
	assert.True(t, emsearch.IsValidationError(wrap(http.StatusUnprocessableEntity)))
	assert.False(t, emsearch.IsNotFound(wrap(http.StatusForbidden)))
	assert.False(t, emsearch.IsNotFound(emsearch.ErrConfigRequired))
	assert.False(t, emsearch.IsNotFound(nil))

	statusErr, ok := emsearch.AsUnexpectedStatus(wrap(http.StatusConflict))
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
}
