package requests

// NotificationPayload is the message published for the notification worker.
type NotificationPayload struct {
	TemplateID      string            `json:"template_id"`
	EmailAddress    string            `json:"email_address"`
	Reference       string            `json:"reference,omitempty"`
	Personalisation map[string]string `json:"personalisation,omitempty"`
}
