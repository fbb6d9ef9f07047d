package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/emsearch/emsearch-client/internal/constants"
	internalhttp "github.com/emsearch/emsearch-client/internal/http"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// UserHasProjectsClient implements emsearch.UserHasProjectsClient.
type UserHasProjectsClient struct {
	httpClient *internalhttp.Client
}

// NewUserHasProjectsClient creates a new project memberships client.
func NewUserHasProjectsClient(httpClient *internalhttp.Client) *UserHasProjectsClient {
	return &UserHasProjectsClient{
		httpClient: httpClient,
	}
}

func userHasProjectKey(userID, projectID string) map[string]string {
	return map[string]string{
		"user_id":    userID,
		"project_id": projectID,
	}
}

// All implements emsearch.UserHasProjectsClient.All.
func (c *UserHasProjectsClient) All(ctx context.Context, params *emsearch.UserHasProjectListParams) (*emsearch.UserHasProjectListResponse, error) {
	list, err := execute[emsearch.UserHasProjectListResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathUserHasProjects,
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("listing project memberships: %w", err)
	}

	return list, nil
}

// Get implements emsearch.UserHasProjectsClient.Get.
func (c *UserHasProjectsClient) Get(ctx context.Context, userID, projectID string, params *emsearch.GetParams) (*emsearch.UserHasProjectResponse, error) {
	resp, err := execute[emsearch.UserHasProjectResponse](ctx, c.httpClient, operation{
		method:   http.MethodGet,
		path:     constants.APIPathUserHasProject,
		params:   userHasProjectKey(userID, projectID),
		expected: constants.StatusRead,
		query:    params,
	})
	if err != nil {
		return nil, fmt.Errorf("getting project membership: %w", err)
	}

	return resp, nil
}

// Create implements emsearch.UserHasProjectsClient.Create.
func (c *UserHasProjectsClient) Create(ctx context.Context, params *emsearch.UserHasProjectCreateParams) (*emsearch.UserHasProjectResponse, error) {
	resp, err := execute[emsearch.UserHasProjectResponse](ctx, c.httpClient, operation{
		method:   http.MethodPost,
		path:     constants.APIPathUserHasProjects,
		expected: constants.StatusCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("creating project membership: %w", err)
	}

	return resp, nil
}

// Update implements emsearch.UserHasProjectsClient.Update.
// The server answers 201 to a successful update of this resource.
func (c *UserHasProjectsClient) Update(ctx context.Context, userID, projectID string, params *emsearch.UserHasProjectUpdateParams) (*emsearch.UserHasProjectResponse, error) {
	resp, err := execute[emsearch.UserHasProjectResponse](ctx, c.httpClient, operation{
		method:   http.MethodPatch,
		path:     constants.APIPathUserHasProject,
		params:   userHasProjectKey(userID, projectID),
		expected: constants.StatusUpdatedCreated,
		form:     params,
	})
	if err != nil {
		return nil, fmt.Errorf("updating project membership: %w", err)
	}

	return resp, nil
}

// Delete implements emsearch.UserHasProjectsClient.Delete.
func (c *UserHasProjectsClient) Delete(ctx context.Context, userID, projectID string) (*emsearch.ErrorResponse, error) {
	resp, err := executeDelete(ctx, c.httpClient, operation{
		method:   http.MethodDelete,
		path:     constants.APIPathUserHasProject,
		params:   userHasProjectKey(userID, projectID),
		expected: constants.StatusDeleted,
	})
	if err != nil {
		return nil, fmt.Errorf("deleting project membership: %w", err)
	}

	return resp, nil
}
