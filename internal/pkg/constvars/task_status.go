package constvars

import "fmt"

// TaskStatus is the completion state of one task inside an application.
type TaskStatus string

const (
	TaskStatusNotStarted     TaskStatus = "NotStarted"
	TaskStatusInProgress     TaskStatus = "InProgress"
	TaskStatusCompleted      TaskStatus = "Completed"
	TaskStatusCannotStartYet TaskStatus = "CannotStartYet"
)

var taskStatuses = map[TaskStatus]bool{
	TaskStatusNotStarted:     true,
	TaskStatusInProgress:     true,
	TaskStatusCompleted:      true,
	TaskStatusCannotStartYet: true,
}

func (s TaskStatus) IsValid() bool {
	return taskStatuses[s]
}

func (s TaskStatus) String() string {
	return string(s)
}

func (s TaskStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown task status %q", string(s))
	}
	return []byte(s), nil
}

func (s *TaskStatus) UnmarshalText(text []byte) error {
	status := TaskStatus(text)
	if !status.IsValid() {
		return fmt.Errorf("unknown task status %q", string(text))
	}
	*s = status
	return nil
}
