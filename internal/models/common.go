// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type UserRole string

const (
	UserRoleAdmin         UserRole = "admin"
	UserRoleDistrictAdmin UserRole = "district_admin"
	UserRoleFilmmaker     UserRole = "filmmaker"
	UserRoleVendor        UserRole = "vendor"
	UserRoleArtist        UserRole = "artist"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type NOCStatus string

const (
	NOCStatusSubmitted   NOCStatus = "submitted"
	NOCStatusUnderReview NOCStatus = "under_review"
	NOCStatusForwarded   NOCStatus = "forwarded"
	NOCStatusApproved    NOCStatus = "approved"
	NOCStatusRejected    NOCStatus = "rejected"
)

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

type TenderStatus string

const (
	TenderStatusOpen   TenderStatus = "open"
	TenderStatusClosed TenderStatus = "closed"
)

type TimelineState string

const (
	TimelineStateCompleted TimelineState = "completed"
	TimelineStateCurrent   TimelineState = "current"
	TimelineStatePending   TimelineState = "pending"
	TimelineStateRejected  TimelineState = "rejected"
)
