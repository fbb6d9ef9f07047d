package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// UsersClient implements emsearch.UsersClient.
type UsersClient struct {
	httpClient *internalhttp.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *internalhttp.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// All implements emsearch.UsersClient.All.
func (c *UsersClient) All(ctx context.Context, params *emsearch.UserListParams) (*emsearch.UserListResponse, error) {
	list, err := execute[emsearch.UserListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathUsers,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return list, nil
}

// Get implements emsearch.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string, params *emsearch.GetParams) (*emsearch.UserResponse, error) {
	resp, err := execute[emsearch.UserResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathUser,
		params:   idParam(id),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, params *emsearch.UserCreateParams) (*emsearch.UserResponse, error) {
	resp, err := execute[emsearch.UserResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathUsers,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, id string, params *emsearch.UserUpdateParams) (*emsearch.UserResponse, error) {
	resp, err := execute[emsearch.UserResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathUser,
		params:   idParam(id),
		expected: constants.StatusUpdated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, id string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathUser,
		params:   idParam(id),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting user: %w", err)
	}

	return resp, nil
}
