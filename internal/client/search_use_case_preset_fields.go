package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// SearchUseCasePresetFieldsClient implements emsearch.SearchUseCasePresetFieldsClient.
type SearchUseCasePresetFieldsClient struct {
	httpClient *internalhttp.Client
}

// NewSearchUseCasePresetFieldsClient creates a new search use case preset fields client.
func NewSearchUseCasePresetFieldsClient(httpClient *internalhttp.Client) *SearchUseCasePresetFieldsClient {
	return &SearchUseCasePresetFieldsClient{
		httpClient: httpClient,
	}
}

func searchUseCasePresetFieldKey(searchUseCasePresetID, dataStreamPresetFieldID string) map[string]string {
	return map[string]string{
		"search_use_case_preset_id":   searchUseCasePresetID,
		"data_stream_preset_field_id": dataStreamPresetFieldID,
	}
}

// All implements emsearch.SearchUseCasePresetFieldsClient.All.
func (c *SearchUseCasePresetFieldsClient) All(ctx context.Context, params *emsearch.SearchUseCasePresetFieldListParams) (*emsearch.SearchUseCasePresetFieldListResponse, error) {
	list, err := execute[emsearch.SearchUseCasePresetFieldListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchUseCasePresetFields,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing search use case preset fields: %w", err)
	}

	return list, nil
}

// Get implements emsearch.SearchUseCasePresetFieldsClient.Get.
func (c *SearchUseCasePresetFieldsClient) Get(ctx context.Context, searchUseCasePresetID, dataStreamPresetFieldID string, params *emsearch.GetParams) (*emsearch.SearchUseCasePresetFieldResponse, error) {
	resp, err := execute[emsearch.SearchUseCasePresetFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathSearchUseCasePresetField,
		params:   searchUseCasePresetFieldKey(searchUseCasePresetID, dataStreamPresetFieldID),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting search use case preset field: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.SearchUseCasePresetFieldsClient.Create.
func (c *SearchUseCasePresetFieldsClient) Create(ctx context.Context, params *emsearch.SearchUseCasePresetFieldCreateParams) (*emsearch.SearchUseCasePresetFieldResponse, error) {
	resp, err := execute[emsearch.SearchUseCasePresetFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathSearchUseCasePresetFields,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating search use case preset field: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.SearchUseCasePresetFieldsClient.Update.
func (c *SearchUseCasePresetFieldsClient) Update(ctx context.Context, searchUseCasePresetID, dataStreamPresetFieldID string, params *emsearch.SearchUseCasePresetFieldUpdateParams) (*emsearch.SearchUseCasePresetFieldResponse, error) {
	resp, err := execute[emsearch.SearchUseCasePresetFieldResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathSearchUseCasePresetField,
		params:   searchUseCasePresetFieldKey(searchUseCasePresetID, dataStreamPresetFieldID),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating search use case preset field: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.SearchUseCasePresetFieldsClient.Delete.
func (c *SearchUseCasePresetFieldsClient) Delete(ctx context.Context, searchUseCasePresetID, dataStreamPresetFieldID string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathSearchUseCasePresetField,
		params:   searchUseCasePresetFieldKey(searchUseCasePresetID, dataStreamPresetFieldID),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting search use case preset field: %w", err)
	}

	return resp, nil
}
