package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// WidgetsClient implements emsearch.WidgetsClient.
type WidgetsClient struct {
	httpClient *internalhttp.Client
}

// NewWidgetsClient creates a new widgets client.
func NewWidgetsClient(httpClient *internalhttp.Client) *WidgetsClient {
	return &WidgetsClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.WidgetsClient.All.
func (c *WidgetsClient) All(ctx context.Context, params *emsearch.WidgetListParams) (*emsearch.WidgetListResponse, error) {
	list, err := execute[emsearch.WidgetListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathWidgets,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing widgets: %w", err)
	}

	return list, nil
}

// Get implements emsearch.WidgetsClient.Get.
func (c *WidgetsClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.WidgetResponse, error) {
	resp, err := execute[emsearch.WidgetResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathWidget,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting widget: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.WidgetsClient.Create.
func (c *WidgetsClient) Create(ctx context.Context, params *emsearch.WidgetCreateParams) (*emsearch.WidgetResponse, error) {
	resp, err := execute[emsearch.WidgetResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathWidgets,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating widget: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.WidgetsClient.Update.
func (c *WidgetsClient) Update(ctx context.Context, id string, params *emsearch.WidgetUpdateParams) (*emsearch.WidgetResponse, error) {
	resp, err := execute[emsearch.WidgetResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathWidget,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating widget: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.WidgetsClient.Delete.
func (c *WidgetsClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathWidget,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting widget: %w", err)
	}

	return resp, nil
}
