package constvars

// Attachment limits enforced before any object is handed to blob storage.
const (
	MaxFileSizeBytes  int64 = 25 * 1024 * 1024
	MaxTotalSizeBytes int64 = 100 * 1024 * 1024
)

const (
	AttachmentObjectKeyFormat = "applications/%s/questions/%s/%s%s"
)
