package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// DataStreamDecodersClient implements emsearch.DataStreamDecodersClient.
type DataStreamDecodersClient struct {
	httpClient *internalhttp.Client
}

// NewDataStreamDecodersClient creates a new data stream decoders client.
func NewDataStreamDecodersClient(httpClient *internalhttp.Client) *DataStreamDecodersClient {
	return &DataStreamDecodersClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.DataStreamDecodersClient.All.
func (c *DataStreamDecodersClient) All(ctx context.Context, params *emsearch.DataStreamDecoderListParams) (*emsearch.DataStreamDecoderListResponse, error) {
	list, err := execute[emsearch.DataStreamDecoderListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStreamDecoders,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing data stream decoders: %w", err)
	}

	return list, nil
}

// Get implements emsearch.DataStreamDecodersClient.Get.
func (c *DataStreamDecodersClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.DataStreamDecoderResponse, error) {
	resp, err := execute[emsearch.DataStreamDecoderResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathDataStreamDecoder,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting data stream decoder: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.DataStreamDecodersClient.Create.
func (c *DataStreamDecodersClient) Create(ctx context.Context, params *emsearch.DataStreamDecoderCreateParams) (*emsearch.DataStreamDecoderResponse, error) {
	resp, err := execute[emsearch.DataStreamDecoderResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathDataStreamDecoders,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating data stream decoder: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.DataStreamDecodersClient.Update.
func (c *DataStreamDecodersClient) Update(ctx context.Context, id string, params *emsearch.DataStreamDecoderUpdateParams) (*emsearch.DataStreamDecoderResponse, error) {
	resp, err := execute[emsearch.DataStreamDecoderResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathDataStreamDecoder,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating data stream decoder: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.DataStreamDecodersClient.Delete.
func (c *DataStreamDecodersClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathDataStreamDecoder,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting data stream decoder: %w", err)
	}

	return resp, nil
}
