package constvars

const (
	GetSectionsSuccessMessage         = "Successfully retrieved sections"
	GetApplicationTasksSuccessMessage = "Successfully retrieved application tasks"
	GetQuestionSuccessMessage         = "Successfully retrieved question"
	SaveAnswerSuccessMessage          = "Successfully saved answer"
	UploadAttachmentSuccessMessage    = "Successfully uploaded attachments"
	UpdateTaskStatusSuccessMessage    = "Successfully updated task status"
	SubmitApplicationSuccessMessage   = "Successfully submitted application"
)

const (
	ResponseUnknown = "unknown"
)
