package emsearch

import (
	"strings"
)

// Parameter structs are encoded with go-querystring: a nil pointer is left
// out of the request entirely, a pointer to the zero value is sent as is.
// Booleans travel as 1/0.

// Sort directions accepted by order_by.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// GetParams holds the options of single resource reads.
type GetParams struct {
	Include *string `url:"include,omitempty"`
}

// ListParams holds the options shared by every list endpoint.
type ListParams struct {
	Include *string `url:"include,omitempty"`
	Search  *string `url:"search,omitempty"`
	Page    *int32  `url:"page,omitempty"`
	Limit   *int32  `url:"limit,omitempty"`
	OrderBy *string `url:"order_by,omitempty"`
}

// NewListParams returns empty list options.
func NewListParams() *ListParams {
	return &ListParams{}
}

// WithInclude sets the relations to expand.
func (p *ListParams) WithInclude(relations ...string) *ListParams {
	p.Include = String(Include(relations...))

	return p
}

// WithSearch sets the free-text filter.
func (p *ListParams) WithSearch(search string) *ListParams {
	p.Search = &search

	return p
}

// WithPage sets the requested page number.
func (p *ListParams) WithPage(page int32) *ListParams {
	p.Page = &page

	return p
}

// WithLimit sets the page size.
func (p *ListParams) WithLimit(limit int32) *ListParams {
	p.Limit = &limit

	return p
}

// WithOrderBy sets the sort field and direction.
func (p *ListParams) WithOrderBy(field, direction string) *ListParams {
	p.OrderBy = String(OrderBy(field, direction))

	return p
}

// String returns a pointer to v.
func String(v string) *string { return &v }

// Int32 returns a pointer to v.
func Int32(v int32) *int32 { return &v }

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// OrderBy formats an order_by value ("field,asc").
func OrderBy(field, direction string) string {
	return field + "," + direction
}

// Include joins relation names into an include value.
func Include(relations ...string) string {
	return strings.Join(relations, ",")
}

// Nested expands a relation together with relations of its own, using the
// bracket syntax of the include parameter:
//
//	Nested("data_stream", "data_stream_decoder", Nested("project", "search_engine"))
//	// data_stream{data_stream_decoder,project{search_engine}}
func Nested(relation string, children ...string) string {
	if len(children) == 0 {
		return relation
	}

	return relation + "{" + strings.Join(children, ",") + "}"
}

// DataStreamDecoderListParams filters DataStreamDecodersClient.All.
type DataStreamDecoderListParams struct {
	ListParams
}

// DataStreamDecoderCreateParams is the body of DataStreamDecodersClient.Create.
type DataStreamDecoderCreateParams struct {
	Name         string `url:"name"`
	ClassName    string `url:"class_name"`
	FileMimeType string `url:"file_mime_type"`
}

// DataStreamDecoderUpdateParams is the body of DataStreamDecodersClient.Update.
type DataStreamDecoderUpdateParams struct {
	Name         *string `url:"name,omitempty"`
	ClassName    *string `url:"class_name,omitempty"`
	FileMimeType *string `url:"file_mime_type,omitempty"`
}

// DataStreamListParams filters DataStreamsClient.All.
type DataStreamListParams struct {
	ListParams

	DataStreamDecoderID *string `url:"data_stream_decoder_id,omitempty"`
}

// DataStreamCreateParams is the body of DataStreamsClient.Create.
type DataStreamCreateParams struct {
	DataStreamDecoderID string  `url:"data_stream_decoder_id"`
	Name                string  `url:"name"`
	FeedURL             string  `url:"feed_url"`
	BasicAuthUser       *string `url:"basic_auth_user,omitempty"`
	BasicAuthPassword   *string `url:"basic_auth_password,omitempty"`
}

// DataStreamUpdateParams is the body of DataStreamsClient.Update.
type DataStreamUpdateParams struct {
	DataStreamDecoderID *string `url:"data_stream_decoder_id,omitempty"`
	Name                *string `url:"name,omitempty"`
	FeedURL             *string `url:"feed_url,omitempty"`
	BasicAuthUser       *string `url:"basic_auth_user,omitempty"`
	BasicAuthPassword   *string `url:"basic_auth_password,omitempty"`
}

// DataStreamFieldListParams filters DataStreamFieldsClient.All.
type DataStreamFieldListParams struct {
	ListParams

	DataStreamID *string `url:"data_stream_id,omitempty"`
}

// DataStreamFieldCreateParams is the body of DataStreamFieldsClient.Create.
type DataStreamFieldCreateParams struct {
	DataStreamID string `url:"data_stream_id"`
	Name         string `url:"name"`
	Path         string `url:"path"`
	Versioned    *bool  `url:"versioned,int,omitempty"`
	Searchable   *bool  `url:"searchable,int,omitempty"`
	ToRetrieve   *bool  `url:"to_retrieve,int,omitempty"`
}

// DataStreamFieldUpdateParams is the body of DataStreamFieldsClient.Update.
type DataStreamFieldUpdateParams struct {
	Name       *string `url:"name,omitempty"`
	Path       *string `url:"path,omitempty"`
	Versioned  *bool   `url:"versioned,int,omitempty"`
	Searchable *bool   `url:"searchable,int,omitempty"`
	ToRetrieve *bool   `url:"to_retrieve,int,omitempty"`
}

// DataStreamPresetListParams filters DataStreamPresetsClient.All.
type DataStreamPresetListParams struct {
	ListParams

	DataStreamDecoderID *string `url:"data_stream_decoder_id,omitempty"`
}

// DataStreamPresetCreateParams is the body of DataStreamPresetsClient.Create.
type DataStreamPresetCreateParams struct {
	DataStreamDecoderID string `url:"data_stream_decoder_id"`
	Name                string `url:"name"`
}

// DataStreamPresetUpdateParams is the body of DataStreamPresetsClient.Update.
type DataStreamPresetUpdateParams struct {
	DataStreamDecoderID *string `url:"data_stream_decoder_id,omitempty"`
	Name                *string `url:"name,omitempty"`
}

// DataStreamPresetFieldListParams filters DataStreamPresetFieldsClient.All.
type DataStreamPresetFieldListParams struct {
	ListParams

	DataStreamPresetID *string `url:"data_stream_preset_id,omitempty"`
}

// DataStreamPresetFieldCreateParams is the body of DataStreamPresetFieldsClient.Create.
type DataStreamPresetFieldCreateParams struct {
	DataStreamPresetID string `url:"data_stream_preset_id"`
	Name               string `url:"name"`
	Path               string `url:"path"`
	Versioned          *bool  `url:"versioned,int,omitempty"`
	Searchable         *bool  `url:"searchable,int,omitempty"`
	ToRetrieve         *bool  `url:"to_retrieve,int,omitempty"`
}

// DataStreamPresetFieldUpdateParams is the body of DataStreamPresetFieldsClient.Update.
type DataStreamPresetFieldUpdateParams struct {
	Name       *string `url:"name,omitempty"`
	Path       *string `url:"path,omitempty"`
	Versioned  *bool   `url:"versioned,int,omitempty"`
	Searchable *bool   `url:"searchable,int,omitempty"`
	ToRetrieve *bool   `url:"to_retrieve,int,omitempty"`
}

// SearchEngineListParams filters SearchEnginesClient.All.
type SearchEngineListParams struct {
	ListParams
}

// SearchEngineCreateParams is the body of SearchEnginesClient.Create.
type SearchEngineCreateParams struct {
	Name      string `url:"name"`
	ClassName string `url:"class_name"`
}

// SearchEngineUpdateParams is the body of SearchEnginesClient.Update.
type SearchEngineUpdateParams struct {
	Name      *string `url:"name,omitempty"`
	ClassName *string `url:"class_name,omitempty"`
}

// ProjectListParams filters ProjectsClient.All.
type ProjectListParams struct {
	ListParams

	SearchEngineID *string `url:"search_engine_id,omitempty"`
	DataStreamID   *string `url:"data_stream_id,omitempty"`
}

// ProjectCreateParams is the body of ProjectsClient.Create.
type ProjectCreateParams struct {
	SearchEngineID string  `url:"search_engine_id"`
	Name           string  `url:"name"`
	DataStreamID   *string `url:"data_stream_id,omitempty"`
}

// ProjectUpdateParams is the body of ProjectsClient.Update.
type ProjectUpdateParams struct {
	SearchEngineID *string `url:"search_engine_id,omitempty"`
	Name           *string `url:"name,omitempty"`
	DataStreamID   *string `url:"data_stream_id,omitempty"`
}

// SearchUseCaseListParams filters SearchUseCasesClient.All.
type SearchUseCaseListParams struct {
	ListParams

	ProjectID *string `url:"project_id,omitempty"`
}

// SearchUseCaseCreateParams is the body of SearchUseCasesClient.Create.
type SearchUseCaseCreateParams struct {
	ProjectID string `url:"project_id"`
	Name      string `url:"name"`
}

// SearchUseCaseUpdateParams is the body of SearchUseCasesClient.Update.
type SearchUseCaseUpdateParams struct {
	Name *string `url:"name,omitempty"`
}

// SearchParams holds the options of SearchUseCasesClient.Search.
type SearchParams struct {
	Search *string `url:"search,omitempty"`
	Page   *int32  `url:"page,omitempty"`
	Limit  *int32  `url:"limit,omitempty"`
}

// SearchUseCaseFieldListParams filters SearchUseCaseFieldsClient.All.
type SearchUseCaseFieldListParams struct {
	ListParams

	SearchUseCaseID   *string `url:"search_use_case_id,omitempty"`
	DataStreamFieldID *string `url:"data_stream_field_id,omitempty"`
}

// SearchUseCaseFieldCreateParams is the body of SearchUseCaseFieldsClient.Create.
type SearchUseCaseFieldCreateParams struct {
	SearchUseCaseID   string `url:"search_use_case_id"`
	DataStreamFieldID string `url:"data_stream_field_id"`
	Name              string `url:"name"`
	Searchable        *bool  `url:"searchable,int,omitempty"`
	ToRetrieve        *bool  `url:"to_retrieve,int,omitempty"`
}

// SearchUseCaseFieldUpdateParams is the body of SearchUseCaseFieldsClient.Update.
type SearchUseCaseFieldUpdateParams struct {
	Name       *string `url:"name,omitempty"`
	Searchable *bool   `url:"searchable,int,omitempty"`
	ToRetrieve *bool   `url:"to_retrieve,int,omitempty"`
}

// SearchUseCasePresetListParams filters SearchUseCasePresetsClient.All.
type SearchUseCasePresetListParams struct {
	ListParams

	DataStreamPresetID *string `url:"data_stream_preset_id,omitempty"`
}

// SearchUseCasePresetCreateParams is the body of SearchUseCasePresetsClient.Create.
type SearchUseCasePresetCreateParams struct {
	DataStreamPresetID string `url:"data_stream_preset_id"`
	Name               string `url:"name"`
}

// SearchUseCasePresetUpdateParams is the body of SearchUseCasePresetsClient.Update.
type SearchUseCasePresetUpdateParams struct {
	Name *string `url:"name,omitempty"`
}

// SearchUseCasePresetFieldListParams filters SearchUseCasePresetFieldsClient.All.
type SearchUseCasePresetFieldListParams struct {
	ListParams

	SearchUseCasePresetID   *string `url:"search_use_case_preset_id,omitempty"`
	DataStreamPresetFieldID *string `url:"data_stream_preset_field_id,omitempty"`
}

// SearchUseCasePresetFieldCreateParams is the body of SearchUseCasePresetFieldsClient.Create.
type SearchUseCasePresetFieldCreateParams struct {
	SearchUseCasePresetID   string `url:"search_use_case_preset_id"`
	DataStreamPresetFieldID string `url:"data_stream_preset_field_id"`
	Name                    string `url:"name"`
	Searchable              *bool  `url:"searchable,int,omitempty"`
	ToRetrieve              *bool  `url:"to_retrieve,int,omitempty"`
}

// SearchUseCasePresetFieldUpdateParams is the body of SearchUseCasePresetFieldsClient.Update.
type SearchUseCasePresetFieldUpdateParams struct {
	Name       *string `url:"name,omitempty"`
	Searchable *bool   `url:"searchable,int,omitempty"`
	ToRetrieve *bool   `url:"to_retrieve,int,omitempty"`
}

// I18nLangListParams filters I18nLangsClient.All.
type I18nLangListParams struct {
	ListParams
}

// I18nLangCreateParams is the body of I18nLangsClient.Create.
type I18nLangCreateParams struct {
	ID          string `url:"id"`
	Description string `url:"description"`
}

// I18nLangUpdateParams is the body of I18nLangsClient.Update.
type I18nLangUpdateParams struct {
	Description *string `url:"description,omitempty"`
}

// SyncTaskTypeListParams filters SyncTaskTypesClient.All.
type SyncTaskTypeListParams struct {
	ListParams
}

// SyncTaskTypeCreateParams is the body of SyncTaskTypesClient.Create.
type SyncTaskTypeCreateParams struct {
	ID string `url:"id"`
}

// SyncTaskTypeUpdateParams is the body of SyncTaskTypesClient.Update.
type SyncTaskTypeUpdateParams struct {
	ID *string `url:"id,omitempty"`
}

// SyncTaskTypeVersionListParams filters SyncTaskTypeVersionsClient.All.
type SyncTaskTypeVersionListParams struct {
	ListParams

	SyncTaskTypeID *string `url:"sync_task_type_id,omitempty"`
	I18nLangID     *string `url:"i18n_lang_id,omitempty"`
}

// SyncTaskTypeVersionCreateParams is the body of SyncTaskTypeVersionsClient.Create.
type SyncTaskTypeVersionCreateParams struct {
	SyncTaskTypeID string `url:"sync_task_type_id"`
	I18nLangID     string `url:"i18n_lang_id"`
	Description    string `url:"description"`
}

// SyncTaskTypeVersionUpdateParams is the body of SyncTaskTypeVersionsClient.Update.
type SyncTaskTypeVersionUpdateParams struct {
	Description *string `url:"description,omitempty"`
}

// SyncTaskStatusListParams filters SyncTaskStatusesClient.All.
type SyncTaskStatusListParams struct {
	ListParams
}

// SyncTaskStatusCreateParams is the body of SyncTaskStatusesClient.Create.
type SyncTaskStatusCreateParams struct {
	ID string `url:"id"`
}

// SyncTaskStatusUpdateParams is the body of SyncTaskStatusesClient.Update.
type SyncTaskStatusUpdateParams struct {
	ID *string `url:"id,omitempty"`
}

// SyncTaskStatusVersionListParams filters SyncTaskStatusVersionsClient.All.
type SyncTaskStatusVersionListParams struct {
	ListParams

	SyncTaskStatusID *string `url:"sync_task_status_id,omitempty"`
	I18nLangID       *string `url:"i18n_lang_id,omitempty"`
}

// SyncTaskStatusVersionCreateParams is the body of SyncTaskStatusVersionsClient.Create.
type SyncTaskStatusVersionCreateParams struct {
	SyncTaskStatusID string `url:"sync_task_status_id"`
	I18nLangID       string `url:"i18n_lang_id"`
	Description      string `url:"description"`
}

// SyncTaskStatusVersionUpdateParams is the body of SyncTaskStatusVersionsClient.Update.
type SyncTaskStatusVersionUpdateParams struct {
	Description *string `url:"description,omitempty"`
}

// SyncTaskListParams filters SyncTasksClient.All.
type SyncTaskListParams struct {
	ListParams

	SyncTaskID       *string `url:"sync_task_id,omitempty"`
	ProjectID        *string `url:"project_id,omitempty"`
	SyncTaskTypeID   *string `url:"sync_task_type_id,omitempty"`
	SyncTaskStatusID *string `url:"sync_task_status_id,omitempty"`
	CreatedByUserID  *string `url:"created_by_user_id,omitempty"`
}

// SyncTaskCreateParams is the body of SyncTasksClient.Create.
type SyncTaskCreateParams struct {
	SyncTaskTypeID   string  `url:"sync_task_type_id"`
	SyncTaskStatusID string  `url:"sync_task_status_id"`
	ProjectID        string  `url:"project_id"`
	PlannedAt        string  `url:"planned_at"`
	SyncTaskID       *string `url:"sync_task_id,omitempty"`
}

// SyncTaskUpdateParams is the body of SyncTasksClient.Update.
type SyncTaskUpdateParams struct {
	SyncTaskStatusID *string `url:"sync_task_status_id,omitempty"`
	PlannedAt        *string `url:"planned_at,omitempty"`
}

// SyncItemListParams filters SyncItemsClient.All.
type SyncItemListParams struct {
	ListParams

	ProjectID *string `url:"project_id,omitempty"`
}

// SyncItemCreateParams is the body of SyncItemsClient.Create.
type SyncItemCreateParams struct {
	ProjectID     string `url:"project_id"`
	ItemID        string `url:"item_id"`
	ItemSignature string `url:"item_signature"`
}

// SyncItemUpdateParams is the body of SyncItemsClient.Update.
type SyncItemUpdateParams struct {
	ItemSignature *string `url:"item_signature,omitempty"`
}

// UserListParams filters UsersClient.All.
type UserListParams struct {
	ListParams
}

// UserCreateParams is the body of UsersClient.Create.
type UserCreateParams struct {
	FirstName string `url:"first_name"`
	LastName  string `url:"last_name"`
	Email     string `url:"email"`
	Password  string `url:"password"`
}

// UserUpdateParams is the body of UsersClient.Update.
type UserUpdateParams struct {
	FirstName *string `url:"first_name,omitempty"`
	LastName  *string `url:"last_name,omitempty"`
	Email     *string `url:"email,omitempty"`
	Password  *string `url:"password,omitempty"`
}

// UserHasProjectListParams filters UserHasProjectsClient.All.
type UserHasProjectListParams struct {
	ListParams

	UserID    *string `url:"user_id,omitempty"`
	ProjectID *string `url:"project_id,omitempty"`
}

// UserHasProjectCreateParams is the body of UserHasProjectsClient.Create.
type UserHasProjectCreateParams struct {
	UserID    string `url:"user_id"`
	ProjectID string `url:"project_id"`
	RoleID    string `url:"role_id"`
}

// UserHasProjectUpdateParams is the body of UserHasProjectsClient.Update.
type UserHasProjectUpdateParams struct {
	RoleID *string `url:"role_id,omitempty"`
}

// WidgetListParams filters WidgetsClient.All.
type WidgetListParams struct {
	ListParams

	SearchUseCaseID *string `url:"search_use_case_id,omitempty"`
}

// WidgetCreateParams is the body of WidgetsClient.Create.
type WidgetCreateParams struct {
	SearchUseCaseID string  `url:"search_use_case_id"`
	Name            string  `url:"name"`
	Techno          string  `url:"techno"`
	Params          *string `url:"params,omitempty"`
}

// WidgetUpdateParams is the body of WidgetsClient.Update.
type WidgetUpdateParams struct {
	Name   *string `url:"name,omitempty"`
	Techno *string `url:"techno,omitempty"`
	Params *string `url:"params,omitempty"`
}

// WidgetPresetListParams filters WidgetPresetsClient.All.
type WidgetPresetListParams struct {
	ListParams

	SearchUseCasePresetID *string `url:"search_use_case_preset_id,omitempty"`
}

// WidgetPresetCreateParams is the body of WidgetPresetsClient.Create.
type WidgetPresetCreateParams struct {
	SearchUseCasePresetID string  `url:"search_use_case_preset_id"`
	Name                  string  `url:"name"`
	Techno                string  `url:"techno"`
	Params                *string `url:"params,omitempty"`
}

// WidgetPresetUpdateParams is the body of WidgetPresetsClient.Update.
type WidgetPresetUpdateParams struct {
	Name   *string `url:"name,omitempty"`
	Techno *string `url:"techno,omitempty"`
	Params *string `url:"params,omitempty"`
}
