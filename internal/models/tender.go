// internal/models/tender.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Tender struct {
	BaseModel
	ReferenceNo  string       `json:"reference_no" gorm:"uniqueIndex;size:50;not null"`
	Title        string       `json:"title" gorm:"size:255;not null"`
	Description  string       `json:"description" gorm:"type:text"`
	DocumentURL  string       `json:"document_url" gorm:"size:500"`
	OpeningDate  time.Time    `json:"opening_date" gorm:"not null"`
	ClosingDate  time.Time    `json:"closing_date" gorm:"not null"`
	Status       TenderStatus `json:"status" gorm:"type:varchar(10);default:'open';index"`
	PublishedBy  uuid.UUID    `json:"published_by" gorm:"type:uuid;not null"`

	Publisher User `json:"publisher,omitempty" gorm:"foreignKey:PublishedBy"`
}

type Notice struct {
	BaseModel
	Title         string     `json:"title" gorm:"size:255;not null"`
	Body          string     `json:"body" gorm:"type:text;not null"`
	AttachmentURL string     `json:"attachment_url" gorm:"size:500"`
	Published     bool       `json:"published" gorm:"default:false;index"`
	PublishedBy   uuid.UUID  `json:"published_by" gorm:"type:uuid;not null"`
	PublishedAt   *time.Time `json:"published_at"`

	Publisher User `json:"publisher,omitempty" gorm:"foreignKey:PublishedBy"`
}
