package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// WidgetPresetsClient implements emsearch.WidgetPresetsClient.
type WidgetPresetsClient struct {
	httpClient *internalhttp.Client
}

// NewWidgetPresetsClient creates a new widget presets client.
func NewWidgetPresetsClient(httpClient *internalhttp.Client) *WidgetPresetsClient {
	return &WidgetPresetsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.WidgetPresetsClient.All.
func (c *WidgetPresetsClient) All(ctx context.Context, params *emsearch.WidgetPresetListParams) (*emsearch.WidgetPresetListResponse, error) {
	list, err := execute[emsearch.WidgetPresetListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathWidgetPresets,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing widget presets: %w", err)
	}

	return list, nil
}

// Get implements emsearch.WidgetPresetsClient.Get.
func (c *WidgetPresetsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.WidgetPresetResponse, error) {
	resp, err := execute[emsearch.WidgetPresetResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathWidgetPreset,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting widget preset: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.WidgetPresetsClient.Create.
func (c *WidgetPresetsClient) Create(ctx context.Context, params *emsearch.WidgetPresetCreateParams) (*emsearch.WidgetPresetResponse, error) {
	resp, err := execute[emsearch.WidgetPresetResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathWidgetPresets,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating widget preset: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.WidgetPresetsClient.Update.
func (c *WidgetPresetsClient) Update(ctx context.Context, id string, params *emsearch.WidgetPresetUpdateParams) (*emsearch.WidgetPresetResponse, error) {
	resp, err := execute[emsearch.WidgetPresetResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathWidgetPreset,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating widget preset: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.WidgetPresetsClient.Delete.
func (c *WidgetPresetsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathWidgetPreset,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting widget preset: %w", err)
	}

	return resp, nil
}
