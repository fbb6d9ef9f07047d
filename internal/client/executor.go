package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/google/go-querystring/query"

	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// operation describes one endpoint call.
type operation struct {
	method   string
	path     string
	params   map[string]string
	expected int
	query    interface{}
	form     interface{}
}

// execute runs op and decodes a response with the expected status into T.
func execute[T any](ctx context.Context, httpClient *internalhttp.Client, op operation) (*T, error) {
	resp, err := send(ctx, httpClient, op)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != op.expected {
		return nil, unexpectedStatus(resp, op.expected)
	}

	var result T

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing response of %s %s: %w", op.method, op.path, err)
	}

	return &result, nil
}

// executeDelete runs a delete op. An empty body yields an empty ErrorResponse.
func executeDelete(ctx context.Context, httpClient *internalhttp.Client, op operation) (*emsearch.ErrorResponse, error) {
	resp, err := send(ctx, httpClient, op)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != op.expected {
		return nil, unexpectedStatus(resp, op.expected)
	}

	if len(strings.TrimSpace(string(resp.Body))) == 0 {
		return &emsearch.ErrorResponse{}, nil
	}

	var result emsearch.ErrorResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing response of %s %s: %w", op.method, op.path, err)
	}

	return &result, nil
}

func send(ctx context.Context, httpClient *internalhttp.Client, op operation) (*internalhttp.Response, error) {
	path, err := expandPath(op.path, op.params)
	if err != nil {
		return nil, err
	}

	req := &internalhttp.Request{
		Method:   op.method,
		Path:     path,
		Template: op.path,
	}

	req.Query, err = encodeValues(op.query)
	if err != nil {
		return nil, fmt.Errorf("encoding query: %w", err)
	}

	if op.method == http.MethodPost || op.method == http.MethodPatch || op.method == http.MethodPut {
		req.Form, err = encodeValues(op.form)
		if err != nil {
			return nil, fmt.Errorf("encoding form: %w", err)
		}

		if req.Form == nil {
			req.Form = url.Values{}
		}
	}

	resp, err := httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op.method, path, err)
	}

	return resp, nil
}

func unexpectedStatus(resp *internalhttp.Response, expected int) error {
	// A body that is not an error envelope leaves Payload nil.
	payload, err := emsearch.ParseErrorResponse(resp.Body)
	if err != nil {
		payload = nil
	}

	return &emsearch.UnexpectedStatusCodeError{
		StatusCode:         resp.StatusCode,
		ExpectedStatusCode: expected,
		Header:             resp.Header,
		Body:               resp.Body,
		Payload:            payload,
	}
}

// expandPath replaces each {name} placeholder with its path-escaped value.
// Commas inside a value are escaped, so the commas of a composite key
// template stay the only literal separators.
func expandPath(template string, params map[string]string) (string, error) {
	path := template

	for name, value := range params {
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(value))
	}

	if start := strings.IndexByte(path, '{'); start >= 0 {
		end := strings.IndexByte(path[start:], '}')
		if end > 0 {
			return "", fmt.Errorf("%w: %s in %s", emsearch.ErrMissingPathParam, path[start+1:start+end], template)
		}
	}

	return path, nil
}

// encodeValues turns a parameter struct into url.Values. Nil pointer
// fields are left out.
func encodeValues(params interface{}) (url.Values, error) {
	if params == nil {
		return nil, nil
	}

	value := reflect.ValueOf(params)
	if value.Kind() == reflect.Ptr && value.IsNil() {
		return nil, nil
	}

	values, err := query.Values(params)
	if err != nil {
		return nil, err
	}

	return values, nil
}

func idParam(id string) map[string]string {
	return map[string]string{"id": id}
}
