package constvars

const (
	NotificationTemplateApplicationSubmitted = "application_submitted"
	NotificationTemplateSubmissionReceipt    = "submission_receipt"
)

const (
	NotificationMessageType     = "JSON"
	NotificationRequeueStrategy = "DROP"
)
