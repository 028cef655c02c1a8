package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingErrorTypeKey       = "error_type"
	LoggingApplicationIDKey   = "application_id"
	LoggingQuestionIDKey      = "question_id"
	LoggingSectionIDKey       = "section_id"
	LoggingTaskIDKey          = "task_id"
	LoggingTaskStatusKey      = "task_status"
	LoggingSectionCountKey    = "section_count"
	LoggingTaskCountKey       = "task_count"
	LoggingErrorCountKey      = "error_count"
	LoggingObjectKeyKey       = "object_key"
	LoggingObjectSizeKey      = "object_size"
	LoggingBucketNameKey      = "bucket_name"
	LoggingQueueNameKey       = "queue_name"
	LoggingTemplateIDKey      = "template_id"
	LoggingCacheKeyKey        = "cache_key"
	LoggingQuestionTypeKey    = "question_type"
	LoggingUserIDKey          = "user_id"
	LoggingFieldNameKey       = "field_name"
	LoggingAttachmentCountKey = "attachment_count"
	LoggingOperationKey       = "operation"
	LoggingBusinessEventKey   = "business_event"
	LoggingSecurityEventKey   = "security_event"
	LoggingSeverityKey        = "severity"
	LoggingReferenceKey       = "reference"
)
