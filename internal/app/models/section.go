package models

import "github.com/google/uuid"

type Section struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	OrderNumber int       `json:"orderNumber"`
	DataMetadata
}

type QuestionType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	DataMetadata
}

// SectionCatalog is the full section and stage task listing, cached as one
// value.
type SectionCatalog struct {
	Sections      []Section      `json:"sections"`
	Tasks         []StageTask    `json:"tasks"`
	QuestionTypes []QuestionType `json:"questionTypes"`
}

func (c SectionCatalog) FindTask(taskID uuid.UUID) (StageTask, bool) {
	for _, task := range c.Tasks {
		if task.ID == taskID {
			return task, true
		}
	}
	return StageTask{}, false
}

func (c SectionCatalog) FindQuestionType(questionTypeID uuid.UUID) (QuestionType, bool) {
	for _, questionType := range c.QuestionTypes {
		if questionType.ID == questionTypeID {
			return questionType, true
		}
	}
	return QuestionType{}, false
}
