package requests

import "recognition-service/internal/pkg/constvars"

type UpdateTaskStatus struct {
	Status constvars.TaskStatus `json:"status" validate:"required,task_status"`
}
