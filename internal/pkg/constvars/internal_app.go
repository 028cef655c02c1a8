package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_APPLICATION_KEY          ContextKey = "application"
)

const (
	REQUEST_ID_PREFIX = "RCGN_SVC_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	URLParamApplicationID = "applicationId"
	URLParamQuestionID    = "questionId"
	URLParamTaskID        = "taskId"
)

const (
	FormFieldAttachments = "attachments"
	FormFieldName        = "field"
)
