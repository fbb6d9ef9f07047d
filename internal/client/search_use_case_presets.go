package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SearchUseCasePresetsClient implements emsearch.SearchUseCasePresetsClient.
type SearchUseCasePresetsClient struct {
	httpClient *internalhttp.Client
}

// NewSearchUseCasePresetsClient creates a new search use case presets client.
func NewSearchUseCasePresetsClient(httpClient *internalhttp.Client) *SearchUseCasePresetsClient {
	return &SearchUseCasePresetsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.SearchUseCasePresetsClient.All.
func (c *SearchUseCasePresetsClient) All(ctx context.Context, params *emsearch.SearchUseCasePresetListParams) (*emsearch.SearchUseCasePresetListResponse, error) {
	list, err := execute[emsearch.SearchUseCasePresetListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchUseCasePresets,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing search use case presets: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SearchUseCasePresetsClient.Get.
func (c *SearchUseCasePresetsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.SearchUseCasePresetResponse, error) {
	resp, err := execute[emsearch.SearchUseCasePresetResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchUseCasePreset,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting search use case preset: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SearchUseCasePresetsClient.Create.
func (c *SearchUseCasePresetsClient) Create(ctx context.Context, params *emsearch.SearchUseCasePresetCreateParams) (*emsearch.SearchUseCasePresetResponse, error) {
	resp, err := execute[emsearch.SearchUseCasePresetResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSearchUseCasePresets,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating search use case preset: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SearchUseCasePresetsClient.Update.
func (c *SearchUseCasePresetsClient) Update(ctx context.Context, id string, params *emsearch.SearchUseCasePresetUpdateParams) (*emsearch.SearchUseCasePresetResponse, error) {
	resp, err := execute[emsearch.SearchUseCasePresetResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSearchUseCasePreset,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating search use case preset: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SearchUseCasePresetsClient.Delete.
func (c *SearchUseCasePresetsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSearchUseCasePreset,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting search use case preset: %w", err)
	}

	return resp, nil
}
