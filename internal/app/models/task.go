package models

import (
	"recognition-service/internal/pkg/constvars"
	"recognition-service/internal/pkg/dto/responses"
	"sort"

	"github.com/google/uuid"
)

// TaskItem is implemented by anything listed as a task inside a section.
type TaskItem interface {
	TaskID() uuid.UUID
	TaskName() string
	TaskOrder() int
}

// StageTask is a catalog task belonging to one section.
type StageTask struct {
	ID          uuid.UUID `json:"id"`
	SectionID   uuid.UUID `json:"sectionId"`
	Name        string    `json:"name"`
	OrderNumber int       `json:"orderNumber"`
	DataMetadata
}

func (t StageTask) TaskID() uuid.UUID { return t.ID }
func (t StageTask) TaskName() string  { return t.Name }
func (t StageTask) TaskOrder() int    { return t.OrderNumber }

// ApplicationTask is the status of one stage task within an application.
type ApplicationTask struct {
	ApplicationID uuid.UUID            `json:"applicationId"`
	StageTaskID   uuid.UUID            `json:"stageTaskId"`
	Status        constvars.TaskStatus `json:"status"`
	DataMetadata
}

func ConvertTaskIntoStatusResponse(task TaskItem, status constvars.TaskStatus) responses.TaskStatusDto {
	return responses.TaskStatusDto{
		TaskID:      task.TaskID(),
		TaskName:    task.TaskName(),
		OrderNumber: task.TaskOrder(),
		Status:      status,
	}
}

// BuildTaskSections groups catalog tasks under their sections. Tasks without
// a recorded status are NotStarted; tasks of unknown sections are dropped.
func BuildTaskSections(sections []Section, tasks []StageTask, statuses map[uuid.UUID]constvars.TaskStatus) []responses.TaskSectionDto {
	tasksBySection := make(map[uuid.UUID][]responses.TaskStatusDto, len(sections))
	for _, task := range tasks {
		status, ok := statuses[task.ID]
		if !ok {
			status = constvars.TaskStatusNotStarted
		}
		tasksBySection[task.SectionID] = append(tasksBySection[task.SectionID], ConvertTaskIntoStatusResponse(task, status))
	}

	ordered := make([]Section, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderNumber < ordered[j].OrderNumber
	})

	result := make([]responses.TaskSectionDto, 0, len(ordered))
	for _, section := range ordered {
		sectionTasks := tasksBySection[section.ID]
		if sectionTasks == nil {
			sectionTasks = []responses.TaskStatusDto{}
		}
		result = append(result, responses.NewTaskSectionDto(section.ID, section.Name, section.OrderNumber, sectionTasks))
	}
	return result
}
