package emsearch

// Timestamps are kept as the strings the server sends; the API is not
// consistent about the layout (dates, "Y-m-d H:i:s", RFC 3339).

// DataStreamDecoder describes a feed format the indexer can read.
type DataStreamDecoder struct {
	ID           string `json:"id"             yaml:"id"`
	Name         string `json:"name"           yaml:"name"`
	ClassName    string `json:"class_name"     yaml:"class_name"`
	FileMimeType string `json:"file_mime_type" yaml:"file_mime_type"`
	CreatedAt    string `json:"created_at"     yaml:"created_at"`
	UpdatedAt    string `json:"updated_at"     yaml:"updated_at"`
}

// DataStream is a feed of items ingested by a project.
type DataStream struct {
	ID                  string  `json:"id"                            yaml:"id"`
	DataStreamDecoderID string  `json:"data_stream_decoder_id"        yaml:"data_stream_decoder_id"`
	Name                string  `json:"name"                          yaml:"name"`
	FeedURL             string  `json:"feed_url"                      yaml:"feed_url"`
	BasicAuthUser       *string `json:"basic_auth_user,omitempty"     yaml:"basic_auth_user,omitempty"`
	BasicAuthPassword   *string `json:"basic_auth_password,omitempty" yaml:"basic_auth_password,omitempty"`
	CreatedAt           string  `json:"created_at"                    yaml:"created_at"`
	UpdatedAt           string  `json:"updated_at"                    yaml:"updated_at"`

	DataStreamDecoder *Response[DataStreamDecoder] `json:"data_stream_decoder,omitempty" yaml:"data_stream_decoder,omitempty"`
	Project           *Response[Project]           `json:"project,omitempty"             yaml:"project,omitempty"`
	DataStreamFields  *Collection[DataStreamField] `json:"data_stream_fields,omitempty"  yaml:"data_stream_fields,omitempty"`
}

// DataStreamField maps a path inside a stream item to an indexed field.
type DataStreamField struct {
	ID           string `json:"id"             yaml:"id"`
	DataStreamID string `json:"data_stream_id" yaml:"data_stream_id"`
	Name         string `json:"name"           yaml:"name"`
	Path         string `json:"path"           yaml:"path"`
	Versioned    bool   `json:"versioned"      yaml:"versioned"`
	Searchable   bool   `json:"searchable"     yaml:"searchable"`
	ToRetrieve   bool   `json:"to_retrieve"    yaml:"to_retrieve"`
	CreatedAt    string `json:"created_at"     yaml:"created_at"`
	UpdatedAt    string `json:"updated_at"     yaml:"updated_at"`

	DataStream *Response[DataStream] `json:"data_stream,omitempty" yaml:"data_stream,omitempty"`
}

// DataStreamPreset is a template used to pre-configure new data streams.
type DataStreamPreset struct {
	ID                  string `json:"id"                     yaml:"id"`
	DataStreamDecoderID string `json:"data_stream_decoder_id" yaml:"data_stream_decoder_id"`
	Name                string `json:"name"                   yaml:"name"`
	CreatedAt           string `json:"created_at"             yaml:"created_at"`
	UpdatedAt           string `json:"updated_at"             yaml:"updated_at"`

	DataStreamDecoder      *Response[DataStreamDecoder]       `json:"data_stream_decoder,omitempty"       yaml:"data_stream_decoder,omitempty"`
	DataStreamPresetFields *Collection[DataStreamPresetField] `json:"data_stream_preset_fields,omitempty" yaml:"data_stream_preset_fields,omitempty"`
	SearchUseCasePresets   *Collection[SearchUseCasePreset]   `json:"search_use_case_presets,omitempty"   yaml:"search_use_case_presets,omitempty"`
}

// DataStreamPresetField is the preset counterpart of DataStreamField.
type DataStreamPresetField struct {
	ID                 string `json:"id"                    yaml:"id"`
	DataStreamPresetID string `json:"data_stream_preset_id" yaml:"data_stream_preset_id"`
	Name               string `json:"name"                  yaml:"name"`
	Path               string `json:"path"                  yaml:"path"`
	Versioned          bool   `json:"versioned"             yaml:"versioned"`
	Searchable         bool   `json:"searchable"            yaml:"searchable"`
	ToRetrieve         bool   `json:"to_retrieve"           yaml:"to_retrieve"`
	CreatedAt          string `json:"created_at"            yaml:"created_at"`
	UpdatedAt          string `json:"updated_at"            yaml:"updated_at"`

	DataStreamPreset *Response[DataStreamPreset] `json:"data_stream_preset,omitempty" yaml:"data_stream_preset,omitempty"`
}

// SearchEngine is a backend a project indexes into.
type SearchEngine struct {
	ID        string `json:"id"         yaml:"id"`
	Name      string `json:"name"       yaml:"name"`
	ClassName string `json:"class_name" yaml:"class_name"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// Project is a tenant workspace. Deleting it cascades server side to its
// user memberships and sync items.
type Project struct {
	ID             string  `json:"id"                       yaml:"id"`
	SearchEngineID string  `json:"search_engine_id"         yaml:"search_engine_id"`
	DataStreamID   *string `json:"data_stream_id,omitempty" yaml:"data_stream_id,omitempty"`
	Name           string  `json:"name"                     yaml:"name"`
	CreatedAt      string  `json:"created_at"               yaml:"created_at"`
	UpdatedAt      string  `json:"updated_at"               yaml:"updated_at"`

	SearchEngine *Response[SearchEngine] `json:"search_engine,omitempty" yaml:"search_engine,omitempty"`
	DataStream   *Response[DataStream]   `json:"data_stream,omitempty"   yaml:"data_stream,omitempty"`
}

// SearchUseCase is a named search configuration of a project.
type SearchUseCase struct {
	ID                       string `json:"id"                                     yaml:"id"`
	ProjectID                string `json:"project_id"                             yaml:"project_id"`
	Name                     string `json:"name"                                   yaml:"name"`
	SearchUseCaseFieldsCount *int   `json:"search_use_case_fields_count,omitempty" yaml:"search_use_case_fields_count,omitempty"`
	CreatedAt                string `json:"created_at"                             yaml:"created_at"`
	UpdatedAt                string `json:"updated_at"                             yaml:"updated_at"`

	Project             *Response[Project]              `json:"project,omitempty"                yaml:"project,omitempty"`
	SearchUseCaseFields *Collection[SearchUseCaseField] `json:"search_use_case_fields,omitempty" yaml:"search_use_case_fields,omitempty"`
}

// SearchUseCaseField associates a data stream field with a search use case.
type SearchUseCaseField struct {
	SearchUseCaseID   string `json:"search_use_case_id"   yaml:"search_use_case_id"`
	DataStreamFieldID string `json:"data_stream_field_id" yaml:"data_stream_field_id"`
	Name              string `json:"name"                 yaml:"name"`
	Searchable        bool   `json:"searchable"           yaml:"searchable"`
	ToRetrieve        bool   `json:"to_retrieve"          yaml:"to_retrieve"`
	CreatedAt         string `json:"created_at"           yaml:"created_at"`
	UpdatedAt         string `json:"updated_at"           yaml:"updated_at"`

	SearchUseCase   *Response[SearchUseCase]   `json:"search_use_case,omitempty"   yaml:"search_use_case,omitempty"`
	DataStreamField *Response[DataStreamField] `json:"data_stream_field,omitempty" yaml:"data_stream_field,omitempty"`
}

// Key returns the composite identity accepted by SearchUseCaseFieldsClient.Get.
func (f *SearchUseCaseField) Key() (string, string) {
	return f.SearchUseCaseID, f.DataStreamFieldID
}

// SearchUseCasePreset is the preset counterpart of SearchUseCase.
type SearchUseCasePreset struct {
	ID                             string `json:"id"                                            yaml:"id"`
	DataStreamPresetID             string `json:"data_stream_preset_id"                         yaml:"data_stream_preset_id"`
	Name                           string `json:"name"                                          yaml:"name"`
	SearchUseCasePresetFieldsCount *int   `json:"search_use_case_preset_fields_count,omitempty" yaml:"search_use_case_preset_fields_count,omitempty"`
	CreatedAt                      string `json:"created_at"                                    yaml:"created_at"`
	UpdatedAt                      string `json:"updated_at"                                    yaml:"updated_at"`

	DataStreamPreset          *Response[DataStreamPreset]           `json:"data_stream_preset,omitempty"            yaml:"data_stream_preset,omitempty"`
	SearchUseCasePresetFields *Collection[SearchUseCasePresetField] `json:"search_use_case_preset_fields,omitempty" yaml:"search_use_case_preset_fields,omitempty"`
}

// SearchUseCasePresetField is the preset counterpart of SearchUseCaseField.
type SearchUseCasePresetField struct {
	SearchUseCasePresetID   string `json:"search_use_case_preset_id"   yaml:"search_use_case_preset_id"`
	DataStreamPresetFieldID string `json:"data_stream_preset_field_id" yaml:"data_stream_preset_field_id"`
	Name                    string `json:"name"                        yaml:"name"`
	Searchable              bool   `json:"searchable"                  yaml:"searchable"`
	ToRetrieve              bool   `json:"to_retrieve"                 yaml:"to_retrieve"`
	CreatedAt               string `json:"created_at"                  yaml:"created_at"`
	UpdatedAt               string `json:"updated_at"                  yaml:"updated_at"`

	SearchUseCasePreset   *Response[SearchUseCasePreset]   `json:"search_use_case_preset,omitempty"   yaml:"search_use_case_preset,omitempty"`
	DataStreamPresetField *Response[DataStreamPresetField] `json:"data_stream_preset_field,omitempty" yaml:"data_stream_preset_field,omitempty"`
}

// Key returns the composite identity accepted by SearchUseCasePresetFieldsClient.Get.
func (f *SearchUseCasePresetField) Key() (string, string) {
	return f.SearchUseCasePresetID, f.DataStreamPresetFieldID
}

// I18nLang is a supported description language.
type I18nLang struct {
	ID          string `json:"id"          yaml:"id"`
	Description string `json:"description" yaml:"description"`
	CreatedAt   string `json:"created_at"  yaml:"created_at"`
	UpdatedAt   string `json:"updated_at"  yaml:"updated_at"`
}

// SyncTaskType is a lookup entity for sync task kinds.
type SyncTaskType struct {
	ID        string `json:"id"         yaml:"id"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`

	SyncTaskTypeVersions *Collection[SyncTaskTypeVersion] `json:"sync_task_type_versions,omitempty" yaml:"sync_task_type_versions,omitempty"`
}

// SyncTaskTypeVersion is the per-language description of a SyncTaskType.
type SyncTaskTypeVersion struct {
	SyncTaskTypeID string `json:"sync_task_type_id" yaml:"sync_task_type_id"`
	I18nLangID     string `json:"i18n_lang_id"      yaml:"i18n_lang_id"`
	Description    string `json:"description"       yaml:"description"`
	CreatedAt      string `json:"created_at"        yaml:"created_at"`
	UpdatedAt      string `json:"updated_at"        yaml:"updated_at"`

	SyncTaskType *Response[SyncTaskType] `json:"sync_task_type,omitempty" yaml:"sync_task_type,omitempty"`
	I18nLang     *Response[I18nLang]     `json:"i18n_lang,omitempty"      yaml:"i18n_lang,omitempty"`
}

// Key returns the composite identity accepted by SyncTaskTypeVersionsClient.Get.
func (v *SyncTaskTypeVersion) Key() (string, string) {
	return v.SyncTaskTypeID, v.I18nLangID
}

// SyncTaskStatus is a lookup entity for sync task states.
type SyncTaskStatus struct {
	ID        string `json:"id"         yaml:"id"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`

	SyncTaskStatusVersions *Collection[SyncTaskStatusVersion] `json:"sync_task_status_versions,omitempty" yaml:"sync_task_status_versions,omitempty"`
}

// SyncTaskStatusVersion is the per-language description of a SyncTaskStatus.
type SyncTaskStatusVersion struct {
	SyncTaskStatusID string `json:"sync_task_status_id" yaml:"sync_task_status_id"`
	I18nLangID       string `json:"i18n_lang_id"        yaml:"i18n_lang_id"`
	Description      string `json:"description"         yaml:"description"`
	CreatedAt        string `json:"created_at"          yaml:"created_at"`
	UpdatedAt        string `json:"updated_at"          yaml:"updated_at"`

	SyncTaskStatus *Response[SyncTaskStatus] `json:"sync_task_status,omitempty" yaml:"sync_task_status,omitempty"`
	I18nLang       *Response[I18nLang]       `json:"i18n_lang,omitempty"        yaml:"i18n_lang,omitempty"`
}

// Key returns the composite identity accepted by SyncTaskStatusVersionsClient.Get.
func (v *SyncTaskStatusVersion) Key() (string, string) {
	return v.SyncTaskStatusID, v.I18nLangID
}

// SyncTask is a planned or running synchronisation job. Tasks form a tree
// through SyncTaskID; children are counted, and only embedded on request.
type SyncTask struct {
	ID               string  `json:"id"                     yaml:"id"`
	SyncTaskID       *string `json:"sync_task_id,omitempty" yaml:"sync_task_id,omitempty"`
	SyncTaskTypeID   string  `json:"sync_task_type_id"      yaml:"sync_task_type_id"`
	SyncTaskStatusID string  `json:"sync_task_status_id"    yaml:"sync_task_status_id"`
	CreatedByUserID  string  `json:"created_by_user_id"     yaml:"created_by_user_id"`
	ProjectID        string  `json:"project_id"             yaml:"project_id"`
	PlannedAt        string  `json:"planned_at"             yaml:"planned_at"`
	SyncTasksCount   *int    `json:"sync_tasks_count,omitempty" yaml:"sync_tasks_count,omitempty"`
	CreatedAt        string  `json:"created_at"             yaml:"created_at"`
	UpdatedAt        string  `json:"updated_at"             yaml:"updated_at"`

	SyncTask       *Response[SyncTask]       `json:"sync_task,omitempty"        yaml:"sync_task,omitempty"`
	SyncTasks      *Collection[SyncTask]     `json:"sync_tasks,omitempty"       yaml:"sync_tasks,omitempty"`
	SyncTaskType   *Response[SyncTaskType]   `json:"sync_task_type,omitempty"   yaml:"sync_task_type,omitempty"`
	SyncTaskStatus *Response[SyncTaskStatus] `json:"sync_task_status,omitempty" yaml:"sync_task_status,omitempty"`
	CreatedByUser  *Response[User]           `json:"created_by_user,omitempty"  yaml:"created_by_user,omitempty"`
	Project        *Response[Project]        `json:"project,omitempty"          yaml:"project,omitempty"`
}

// SyncItem records the last indexed signature of one item of a project.
type SyncItem struct {
	ID            string `json:"id"             yaml:"id"`
	ProjectID     string `json:"project_id"     yaml:"project_id"`
	ItemID        string `json:"item_id"        yaml:"item_id"`
	ItemSignature string `json:"item_signature" yaml:"item_signature"`
	CreatedAt     string `json:"created_at"     yaml:"created_at"`
	UpdatedAt     string `json:"updated_at"     yaml:"updated_at"`

	Project *Response[Project] `json:"project,omitempty" yaml:"project,omitempty"`
}

// User is an account of the service.
type User struct {
	ID        string `json:"id"         yaml:"id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name"  yaml:"last_name"`
	Email     string `json:"email"      yaml:"email"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`

	UserHasProjects *Collection[UserHasProject] `json:"user_has_projects,omitempty" yaml:"user_has_projects,omitempty"`
}

// UserHasProject is the membership of a user in a project.
type UserHasProject struct {
	UserID    string `json:"user_id"    yaml:"user_id"`
	ProjectID string `json:"project_id" yaml:"project_id"`
	RoleID    string `json:"role_id"    yaml:"role_id"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`

	User    *Response[User]    `json:"user,omitempty"    yaml:"user,omitempty"`
	Project *Response[Project] `json:"project,omitempty" yaml:"project,omitempty"`
}

// Key returns the composite identity accepted by UserHasProjectsClient.Get.
func (m *UserHasProject) Key() (string, string) {
	return m.UserID, m.ProjectID
}

// Widget is an embeddable search front end bound to a search use case.
type Widget struct {
	ID              string `json:"id"                 yaml:"id"`
	SearchUseCaseID string `json:"search_use_case_id" yaml:"search_use_case_id"`
	Name            string `json:"name"               yaml:"name"`
	Techno          string `json:"techno"             yaml:"techno"`
	Params          string `json:"params"             yaml:"params"`
	CreatedAt       string `json:"created_at"         yaml:"created_at"`
	UpdatedAt       string `json:"updated_at"         yaml:"updated_at"`

	SearchUseCase *Response[SearchUseCase] `json:"search_use_case,omitempty" yaml:"search_use_case,omitempty"`
}

// WidgetPreset is the preset counterpart of Widget.
type WidgetPreset struct {
	ID                    string `json:"id"                        yaml:"id"`
	SearchUseCasePresetID string `json:"search_use_case_preset_id" yaml:"search_use_case_preset_id"`
	Name                  string `json:"name"                      yaml:"name"`
	Techno                string `json:"techno"                    yaml:"techno"`
	Params                string `json:"params"                    yaml:"params"`
	CreatedAt             string `json:"created_at"                yaml:"created_at"`
	UpdatedAt             string `json:"updated_at"                yaml:"updated_at"`

	SearchUseCasePreset *Response[SearchUseCasePreset] `json:"search_use_case_preset,omitempty" yaml:"search_use_case_preset,omitempty"`
}

// Single resource envelopes.
type (
	DataStreamDecoderResponse        = Response[DataStreamDecoder]
	DataStreamResponse               = Response[DataStream]
	DataStreamFieldResponse          = Response[DataStreamField]
	DataStreamPresetResponse         = Response[DataStreamPreset]
	DataStreamPresetFieldResponse    = Response[DataStreamPresetField]
	SearchEngineResponse             = Response[SearchEngine]
	ProjectResponse                  = Response[Project]
	SearchUseCaseResponse            = Response[SearchUseCase]
	SearchUseCaseFieldResponse       = Response[SearchUseCaseField]
	SearchUseCasePresetResponse      = Response[SearchUseCasePreset]
	SearchUseCasePresetFieldResponse = Response[SearchUseCasePresetField]
	I18nLangResponse                 = Response[I18nLang]
	SyncTaskTypeResponse             = Response[SyncTaskType]
	SyncTaskTypeVersionResponse      = Response[SyncTaskTypeVersion]
	SyncTaskStatusResponse           = Response[SyncTaskStatus]
	SyncTaskStatusVersionResponse    = Response[SyncTaskStatusVersion]
	SyncTaskResponse                 = Response[SyncTask]
	SyncItemResponse                 = Response[SyncItem]
	UserResponse                     = Response[User]
	UserHasProjectResponse           = Response[UserHasProject]
	WidgetResponse                   = Response[Widget]
	WidgetPresetResponse             = Response[WidgetPreset]
)

// Paginated list envelopes.
type (
	DataStreamDecoderListResponse        = ListResponse[DataStreamDecoder]
	DataStreamListResponse               = ListResponse[DataStream]
	DataStreamFieldListResponse          = ListResponse[DataStreamField]
	DataStreamPresetListResponse         = ListResponse[DataStreamPreset]
	DataStreamPresetFieldListResponse    = ListResponse[DataStreamPresetField]
	SearchEngineListResponse             = ListResponse[SearchEngine]
	ProjectListResponse                  = ListResponse[Project]
	SearchUseCaseListResponse            = ListResponse[SearchUseCase]
	SearchUseCaseFieldListResponse       = ListResponse[SearchUseCaseField]
	SearchUseCasePresetListResponse      = ListResponse[SearchUseCasePreset]
	SearchUseCasePresetFieldListResponse = ListResponse[SearchUseCasePresetField]
	I18nLangListResponse                 = ListResponse[I18nLang]
	SyncTaskTypeListResponse             = ListResponse[SyncTaskType]
	SyncTaskTypeVersionListResponse      = ListResponse[SyncTaskTypeVersion]
	SyncTaskStatusListResponse           = ListResponse[SyncTaskStatus]
	SyncTaskStatusVersionListResponse    = ListResponse[SyncTaskStatusVersion]
	SyncTaskListResponse                 = ListResponse[SyncTask]
	SyncItemListResponse                 = ListResponse[SyncItem]
	UserListResponse                     = ListResponse[User]
	UserHasProjectListResponse           = ListResponse[UserHasProject]
	WidgetListResponse                   = ListResponse[Widget]
	WidgetPresetListResponse             = ListResponse[WidgetPreset]
)
