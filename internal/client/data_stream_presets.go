package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// DataStreamPresetsClient implements emsearch.DataStreamPresetsClient.
type DataStreamPresetsClient struct {
	httpClient *internalhttp.Client
}

// NewDataStreamPresetsClient creates a new data stream presets client.
func NewDataStreamPresetsClient(httpClient *internalhttp.Client) *DataStreamPresetsClient {
	return &DataStreamPresetsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.DataStreamPresetsClient.All.
func (c *DataStreamPresetsClient) All(ctx context.Context, params *emsearch.DataStreamPresetListParams) (*emsearch.DataStreamPresetListResponse, error) {
	list, err := execute[emsearch.DataStreamPresetListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStreamPresets,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing data stream presets: %w", err)
	}

	return list, nil
}

// Get implements emsearch.DataStreamPresetsClient.Get.
func (c *DataStreamPresetsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.DataStreamPresetResponse, error) {
	resp, err := execute[emsearch.DataStreamPresetResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStreamPreset,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting data stream preset: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.DataStreamPresetsClient.Create.
func (c *DataStreamPresetsClient) Create(ctx context.Context, params *emsearch.DataStreamPresetCreateParams) (*emsearch.DataStreamPresetResponse, error) {
	resp, err := execute[emsearch.DataStreamPresetResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathDataStreamPresets,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating data stream preset: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.DataStreamPresetsClient.Update.
func (c *DataStreamPresetsClient) Update(ctx context.Context, id string, params *emsearch.DataStreamPresetUpdateParams) (*emsearch.DataStreamPresetResponse, error) {
	resp, err := execute[emsearch.DataStreamPresetResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathDataStreamPreset,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating data stream preset: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.DataStreamPresetsClient.Delete.
func (c *DataStreamPresetsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathDataStreamPreset,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting data stream preset: %w", err)
	}

	return resp, nil
}
