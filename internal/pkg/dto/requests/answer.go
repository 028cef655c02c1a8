package requests

type AttachmentReference struct {
	ObjectKey   string `json:"objectKey" validate:"required"`
	FileName    string `json:"fileName" validate:"required"`
	Size        int64  `json:"size" validate:"gte=0"`
	ContentType string `json:"contentType"`
}

// AnswerSubmission is the body of a question answer. Values and attachments
// are keyed by the form field name.
type AnswerSubmission struct {
	Values      map[string][]string              `json:"values" validate:"dive,keys,field_name,endkeys"`
	Attachments map[string][]AttachmentReference `json:"attachments" validate:"dive,keys,field_name,endkeys,dive"`
}
