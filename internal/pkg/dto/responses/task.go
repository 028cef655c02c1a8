package responses

import (
	"recognition-service/internal/pkg/constvars"
	"sort"

	"github.com/google/uuid"
)

type TaskStatusDto struct {
	TaskID      uuid.UUID            `json:"taskId"`
	TaskName    string               `json:"taskName"`
	OrderNumber int                  `json:"orderNumber"`
	Status      constvars.TaskStatus `json:"status"`
}

type TaskSectionDto struct {
	SectionID   uuid.UUID       `json:"sectionId"`
	SectionName string          `json:"sectionName"`
	OrderNumber int             `json:"orderNumber"`
	Tasks       []TaskStatusDto `json:"tasks"`
}

// NewTaskSectionDto orders tasks by OrderNumber; tasks sharing an order
// number keep their input order.
func NewTaskSectionDto(sectionID uuid.UUID, sectionName string, orderNumber int, tasks []TaskStatusDto) TaskSectionDto {
	sorted := make([]TaskStatusDto, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderNumber < sorted[j].OrderNumber
	})

	return TaskSectionDto{
		SectionID:   sectionID,
		SectionName: sectionName,
		OrderNumber: orderNumber,
		Tasks:       sorted,
	}
}

func (s TaskSectionDto) IsCompleted() bool {
	for _, task := range s.Tasks {
		if task.Status != constvars.TaskStatusCompleted {
			return false
		}
	}
	return true
}
