package utils

import (
	"fmt"
	"recognition-service/internal/pkg/constvars"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateApplicationReference builds the human readable reference quoted in
// notifications, e.g. "RCGN-20240501-3F2A9C1B".
func GenerateApplicationReference(applicationID uuid.UUID, submittedAt time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(applicationID.String(), "-", "")[:8])
	return fmt.Sprintf("RCGN-%s-%s", submittedAt.UTC().Format("20060102"), suffix)
}
