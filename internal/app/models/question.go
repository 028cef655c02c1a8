package models

import (
	"recognition-service/internal/pkg/questions"

	"github.com/goccy/go-json"
)

// Question is stored as a document. Content keeps the raw JSON schema so the
// variant invariants are enforced by the questions codecs on every read.
type Question struct {
	ID             string `bson:"_id"`
	TaskID         string `bson:"taskId"`
	QuestionTypeID string `bson:"questionTypeId"`
	OrderNumber    int    `bson:"orderNumber"`
	Content        string `bson:"content"`
	DataMetadata   `bson:",inline"`
}

func (q Question) DecodeContent() (questions.QuestionContent, error) {
	var content questions.QuestionContent
	if err := json.Unmarshal([]byte(q.Content), &content); err != nil {
		return questions.QuestionContent{}, err
	}
	if err := content.Check(); err != nil {
		return questions.QuestionContent{}, err
	}
	return content, nil
}

type StoredAttachment struct {
	ObjectKey   string `bson:"objectKey"`
	FileName    string `bson:"fileName"`
	Size        int64  `bson:"size"`
	ContentType string `bson:"contentType"`
}

// Answer is the last accepted submission for one question of an application.
type Answer struct {
	ApplicationID string                        `bson:"applicationId"`
	QuestionID    string                        `bson:"questionId"`
	Values        map[string][]string           `bson:"values"`
	Attachments   map[string][]StoredAttachment `bson:"attachments,omitempty"`
	DataMetadata  `bson:",inline"`
}
