package models

import "time"

// DataMetadata holds the audit fields carried by every persisted entity.
type DataMetadata struct {
	CreatedDate   time.Time `json:"createdDate" bson:"createdDate"`
	ModifiedDate  time.Time `json:"modifiedDate" bson:"modifiedDate"`
	CreatedByUpn  string    `json:"createdByUpn" bson:"createdByUpn"`
	ModifiedByUpn string    `json:"modifiedByUpn" bson:"modifiedByUpn"`
}

type Auditable interface {
	Metadata() *DataMetadata
}

func (m *DataMetadata) Metadata() *DataMetadata {
	return m
}

// Touch stamps the modification fields, and the creation fields when they
// were never set.
func (m *DataMetadata) Touch(upn string, now time.Time) {
	if m.CreatedDate.IsZero() {
		m.CreatedDate = now
		m.CreatedByUpn = upn
	}
	m.ModifiedDate = now
	m.ModifiedByUpn = upn
}
