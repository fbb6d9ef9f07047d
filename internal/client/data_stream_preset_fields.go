package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// DataStreamPresetFieldsClient implements emsearch.DataStreamPresetFieldsClient.
type DataStreamPresetFieldsClient struct {
	httpClient *internalhttp.Client
}

// NewDataStreamPresetFieldsClient creates a new data stream preset fields client.
func NewDataStreamPresetFieldsClient(httpClient *internalhttp.Client) *DataStreamPresetFieldsClient {
	return &DataStreamPresetFieldsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.DataStreamPresetFieldsClient.All.
func (c *DataStreamPresetFieldsClient) All(ctx context.Context, params *emsearch.DataStreamPresetFieldListParams) (*emsearch.DataStreamPresetFieldListResponse, error) {
	list, err := execute[emsearch.DataStreamPresetFieldListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStreamPresetFields,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing data stream preset fields: %w", err)
	}

	return list, nil
}

// Get implements emsearch.DataStreamPresetFieldsClient.Get.
func (c *DataStreamPresetFieldsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.DataStreamPresetFieldResponse, error) {
	resp, err := execute[emsearch.DataStreamPresetFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStreamPresetField,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting data stream preset field: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.DataStreamPresetFieldsClient.Create.
func (c *DataStreamPresetFieldsClient) Create(ctx context.Context, params *emsearch.DataStreamPresetFieldCreateParams) (*emsearch.DataStreamPresetFieldResponse, error) {
	resp, err := execute[emsearch.DataStreamPresetFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathDataStreamPresetFields,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating data stream preset field: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.DataStreamPresetFieldsClient.Update.
func (c *DataStreamPresetFieldsClient) Update(ctx context.Context, id string, params *emsearch.DataStreamPresetFieldUpdateParams) (*emsearch.DataStreamPresetFieldResponse, error) {
	resp, err := execute[emsearch.DataStreamPresetFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathDataStreamPresetField,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating data stream preset field: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.DataStreamPresetFieldsClient.Delete.
func (c *DataStreamPresetFieldsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathDataStreamPresetField,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting data stream preset field: %w", err)
	}

	return resp, nil
}
