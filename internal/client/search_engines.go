package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SearchEnginesClient implements emsearch.SearchEnginesClient.
type SearchEnginesClient struct {
	httpClient *internalhttp.Client
}

// NewSearchEnginesClient creates a new search engines client.
func NewSearchEnginesClient(httpClient *internalhttp.Client) *SearchEnginesClient {
	return &SearchEnginesClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.SearchEnginesClient.All.
func (c *SearchEnginesClient) All(ctx context.Context, params *emsearch.SearchEngineListParams) (*emsearch.SearchEngineListResponse, error) {
	list, err := execute[emsearch.SearchEngineListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchEngines,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing search engines: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SearchEnginesClient.Get.
func (c *SearchEnginesClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.SearchEngineResponse, error) {
	resp, err := execute[emsearch.SearchEngineResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchEngine,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting search engine: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SearchEnginesClient.Create.
func (c *SearchEnginesClient) Create(ctx context.Context, params *emsearch.SearchEngineCreateParams) (*emsearch.SearchEngineResponse, error) {
	resp, err := execute[emsearch.SearchEngineResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSearchEngines,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating search engine: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SearchEnginesClient.Update.
func (c *SearchEnginesClient) Update(ctx context.Context, id string, params *emsearch.SearchEngineUpdateParams) (*emsearch.SearchEngineResponse, error) {
	resp, err := execute[emsearch.SearchEngineResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSearchEngine,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating search engine: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SearchEnginesClient.Delete.
func (c *SearchEnginesClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSearchEngine,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting search engine: %w", err)
	}

	return resp, nil
}
