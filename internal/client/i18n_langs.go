package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// I18nLangsClient implements emsearch.I18nLangsClient.
type I18nLangsClient struct {
	httpClient *internalhttp.Client
}

// NewI18nLangsClient creates a new languages client.
func NewI18nLangsClient(httpClient *internalhttp.Client) *I18nLangsClient {
	return &I18nLangsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.I18nLangsClient.All.
func (c *I18nLangsClient) All(ctx context.Context, params *emsearch.I18nLangListParams) (*emsearch.I18nLangListResponse, error) {
	list, err := execute[emsearch.I18nLangListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathI18nLangs,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing languages: %w", err)
	}

	return list, nil
}

// Get implements emsearch.I18nLangsClient.Get.
func (c *I18nLangsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.I18nLangResponse, error) {
	resp, err := execute[emsearch.I18nLangResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathI18nLang,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting language: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.I18nLangsClient.Create.
func (c *I18nLangsClient) Create(ctx context.Context, params *emsearch.I18nLangCreateParams) (*emsearch.I18nLangResponse, error) {
	resp, err := execute[emsearch.I18nLangResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathI18nLangs,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating language: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.I18nLangsClient.Update.
func (c *I18nLangsClient) Update(ctx context.Context, id string, params *emsearch.I18nLangUpdateParams) (*emsearch.I18nLangResponse, error) {
	resp, err := execute[emsearch.I18nLangResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathI18nLang,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating language: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.I18nLangsClient.Delete.
func (c *I18nLangsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathI18nLang,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting language: %w", err)
	}

	return resp, nil
}
