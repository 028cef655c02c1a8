package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"uuid":        "must be a valid UUID",
	"task_status": "must be one of [NotStarted, InProgress, Completed, CannotStartYet]",
	"field_name":  "must contain only letters, digits, dashes or underscores",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process the request, please check your input"
	ErrClientServerLongRespond             = "the server took too long to respond"
	ErrClientApplicationNotFound           = "application not found"
	ErrClientQuestionNotFound              = "question not found"
	ErrClientTaskNotFound                  = "task not found"
	ErrClientSectionNotFound               = "section not found"
	ErrClientApplicationAlreadySubmitted   = "application has already been submitted"
	ErrClientApplicationIncomplete         = "all tasks must be completed before the application can be submitted"
	ErrClientQuestionHasNoFileUpload       = "this question does not accept attachments"
	ErrClientAttachmentTooLarge            = "the selected file must be smaller than 25MB"
	ErrClientAttachmentsTooLarge           = "the selected files must be smaller than 100MB in total"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientValidationFailed              = "There is a problem"
)

const (
	ErrDevValidationFailed              = "request validation failed"
	ErrDevInvalidInput                  = "invalid input"
	ErrDevURLParamIDValidationFailed    = "url param '%s' is not a valid uuid"
	ErrDevCannotParseJSON               = "cannot parse json"
	ErrDevCannotMarshalJSON             = "cannot marshal json"
	ErrDevCannotParseMultipartForm      = "cannot parse multipart form"
	ErrDevServerDeadlineExceeded        = "server deadline exceeded"
	ErrDevServerProcess                 = "server failed to process request"
	ErrDevApplicationNotFound           = "application '%s' does not exist"
	ErrDevQuestionNotFound              = "question '%s' does not exist"
	ErrDevTaskNotFound                  = "task '%s' does not exist"
	ErrDevApplicationAlreadySubmitted   = "application '%s' already submitted"
	ErrDevApplicationIncomplete         = "application '%s' has incomplete tasks"
	ErrDevQuestionHasNoFileUpload       = "question '%s' has no file upload form group"
	ErrDevAttachmentTooLarge            = "attachment '%s' exceeds max file size"
	ErrDevAttachmentsTooLarge           = "attachments exceed max total size"
	ErrDevInvalidQuestionContent        = "question '%s' has invalid content"
	ErrDevDBFailedToFindData            = "failed to find data in postgres"
	ErrDevDBFailedToInsertData          = "failed to insert data in postgres"
	ErrDevDBFailedToUpdateData          = "failed to update data in postgres"
	ErrDevDBFailedToIterateDataset      = "failed to iterate dataset in postgres"
	ErrDevDBFailedToFindDocument        = "failed to find document in mongo"
	ErrDevDBFailedToInsertDocument      = "failed to insert document in mongo"
	ErrDevDBFailedToIterateDocuments    = "failed to iterate documents in mongo"
	ErrDevRedisGetData                  = "failed to get data from redis"
	ErrDevRedisSetData                  = "failed to set data in redis"
	ErrDevRedisDeleteData               = "failed to delete data in redis"
	ErrDevMinioFailedToCreateObject     = "failed to create object in bucket '%s'"
	ErrDevMinioFailedToStatObject       = "failed to read object metadata in bucket '%s'"
	ErrDevRabbitMQFailedToPublish       = "failed to publish message to queue '%s'"
	ErrDevNotificationTemplateNotFound  = "notification template '%s' is not configured"
	ErrDevSubmissionRateLimitedForKey   = "submission rate limited for '%s'"
)
