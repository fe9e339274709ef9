// internal/models/registration.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Registration profiles share a single-step review cycle:
// pending -> approved | rejected, stamped once by an admin.

type ArtistProfile struct {
	BaseModel
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	FullName    string         `json:"full_name" gorm:"size:100;not null"`
	FatherName  string         `json:"father_name" gorm:"size:100"`
	DateOfBirth *time.Time     `json:"date_of_birth"`
	Gender      string         `json:"gender" gorm:"size:10"`
	Address     string         `json:"address" gorm:"type:text;not null"`
	DistrictID  *uuid.UUID     `json:"district_id" gorm:"type:uuid;index"`
	Disciplines pq.StringArray `json:"disciplines" gorm:"type:text[]"`
	Experience  string         `json:"experience" gorm:"type:text"`
	PhotoURL    string         `json:"photo_url" gorm:"size:500"`

	Status        RegistrationStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	ReviewedBy    *uuid.UUID         `json:"reviewed_by" gorm:"type:uuid"`
	ReviewedAt    *time.Time         `json:"reviewed_at"`
	ReviewRemarks string             `json:"review_remarks,omitempty" gorm:"type:text"`

	// Relationships
	User     User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	District *District `json:"district,omitempty" gorm:"foreignKey:DistrictID"`
}

type ProducerProfile struct {
	BaseModel
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	ProductionHouse string         `json:"production_house" gorm:"size:255;not null"`
	OwnerName       string         `json:"owner_name" gorm:"size:100;not null"`
	Address         string         `json:"address" gorm:"type:text;not null"`
	GSTNumber       string         `json:"gst_number" gorm:"size:20"`
	PastProjects    pq.StringArray `json:"past_projects" gorm:"type:text[]"`
	DocumentURL     string         `json:"document_url" gorm:"size:500"`

	Status        RegistrationStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	ReviewedBy    *uuid.UUID         `json:"reviewed_by" gorm:"type:uuid"`
	ReviewedAt    *time.Time         `json:"reviewed_at"`
	ReviewRemarks string             `json:"review_remarks,omitempty" gorm:"type:text"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

type VendorProfile struct {
	BaseModel
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	FirmName    string         `json:"firm_name" gorm:"size:255;not null"`
	OwnerName   string         `json:"owner_name" gorm:"size:100;not null"`
	Address     string         `json:"address" gorm:"type:text;not null"`
	Services    pq.StringArray `json:"services" gorm:"type:text[]"`
	GSTNumber   string         `json:"gst_number" gorm:"size:20"`
	DocumentURL string         `json:"document_url" gorm:"size:500"`

	Status        RegistrationStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	ReviewedBy    *uuid.UUID         `json:"reviewed_by" gorm:"type:uuid"`
	ReviewedAt    *time.Time         `json:"reviewed_at"`
	ReviewRemarks string             `json:"review_remarks,omitempty" gorm:"type:text"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
