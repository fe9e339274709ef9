// internal/models/noc.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// NOCApplication is a shooting permission request. The applicant payload is
// written once at submission; only the workflow fields change afterwards,
// and only through NOCService transitions.
type NOCApplication struct {
	BaseModel
	ApplicationNo string    `json:"application_no" gorm:"uniqueIndex;size:30;not null"`
	ApplicantID   uuid.UUID `json:"applicant_id" gorm:"type:uuid;not null;index"`

	// Project details
	ProjectTitle string         `json:"project_title" gorm:"size:255;not null"`
	ProjectType  string         `json:"project_type" gorm:"size:50;not null"`
	Language     string         `json:"language" gorm:"size:50;not null"`
	Genre        string         `json:"genre" gorm:"size:50;not null"`
	DurationMins int            `json:"duration_mins" gorm:"not null"`
	Director     string         `json:"director" gorm:"size:100;not null"`
	CastMembers  pq.StringArray `json:"cast_members" gorm:"type:text[]"`
	Synopsis     string         `json:"synopsis" gorm:"type:text"`

	// Production house details
	ProductionHouse   string `json:"production_house" gorm:"size:255;not null"`
	ProductionContact string `json:"production_contact" gorm:"size:15;not null"`
	ProductionEmail   string `json:"production_email" gorm:"size:255;not null"`
	ProductionAddress string `json:"production_address" gorm:"type:text;not null"`

	// Authorized representative
	RepresentativeName        string `json:"representative_name" gorm:"size:100;not null"`
	RepresentativeDesignation string `json:"representative_designation" gorm:"size:100;not null"`
	RepresentativeContact     string `json:"representative_contact" gorm:"size:15;not null"`
	RepresentativeEmail       string `json:"representative_email" gorm:"size:255;not null"`

	DocumentURL string `json:"document_url" gorm:"size:500"`

	// Workflow state
	Status NOCStatus `json:"status" gorm:"type:varchar(20);default:'submitted';index"`

	AdminActionBy *uuid.UUID `json:"admin_action_by" gorm:"type:uuid"`
	AdminActionAt *time.Time `json:"admin_action_at"`
	AdminRemarks  string     `json:"admin_remarks,omitempty" gorm:"type:text"`

	ForwardedAt *time.Time `json:"forwarded_at"`

	DistrictActionBy *uuid.UUID `json:"district_action_by" gorm:"type:uuid"`
	DistrictActionAt *time.Time `json:"district_action_at"`
	DistrictRemarks  string     `json:"district_remarks,omitempty" gorm:"type:text"`

	// Relationships
	Applicant            User               `json:"applicant,omitempty" gorm:"foreignKey:ApplicantID"`
	Locations            []ShootingLocation `json:"locations,omitempty" gorm:"foreignKey:ApplicationID"`
	ForwardedDistricts   []District         `json:"forwarded_districts,omitempty" gorm:"many2many:noc_forwarded_districts"`
	ForwardedDepartments []Department       `json:"forwarded_departments,omitempty" gorm:"many2many:noc_forwarded_departments"`
	AdminActor           *User              `json:"admin_actor,omitempty" gorm:"foreignKey:AdminActionBy"`
	DistrictActor        *User              `json:"district_actor,omitempty" gorm:"foreignKey:DistrictActionBy"`
}

// ShootingLocation is one Annexure-A entry attached to an application.
type ShootingLocation struct {
	BaseModel
	ApplicationID uuid.UUID `json:"application_id" gorm:"type:uuid;not null;index"`
	Location      string    `json:"location" gorm:"size:255;not null"`
	StartDate     time.Time `json:"start_date" gorm:"not null"`
	EndDate       time.Time `json:"end_date" gorm:"not null"`
	PersonCount   int       `json:"person_count" gorm:"not null"`
	SecurityFee   float64   `json:"security_fee" gorm:"type:decimal(12,2);default:0"`
}

type NOCEvent string

const (
	NOCEventForward NOCEvent = "forward"
	NOCEventApprove NOCEvent = "approve"
	NOCEventReject  NOCEvent = "reject"
)

// nocTransitions is the only place transition legality is defined. Every
// mutation of NOCApplication.Status goes through TransitionTarget.
var nocTransitions = map[NOCEvent]struct {
	From []NOCStatus
	To   NOCStatus
}{
	NOCEventForward: {From: []NOCStatus{NOCStatusSubmitted, NOCStatusUnderReview}, To: NOCStatusForwarded},
	NOCEventApprove: {From: []NOCStatus{NOCStatusForwarded}, To: NOCStatusApproved},
	NOCEventReject:  {From: []NOCStatus{NOCStatusForwarded}, To: NOCStatusRejected},
}

// TransitionTarget returns the status an event leads to from the given
// status, or false if the guard table does not permit it.
func TransitionTarget(from NOCStatus, event NOCEvent) (NOCStatus, bool) {
	rule, ok := nocTransitions[event]
	if !ok {
		return "", false
	}
	for _, s := range rule.From {
		if s == from {
			return rule.To, true
		}
	}
	return "", false
}

// TransitionSources returns the statuses from which the event is legal.
// Used to build conditional updates keyed on the expected current status.
func TransitionSources(event NOCEvent) []NOCStatus {
	rule, ok := nocTransitions[event]
	if !ok {
		return nil
	}
	return rule.From
}

func (s NOCStatus) IsTerminal() bool {
	return s == NOCStatusApproved || s == NOCStatusRejected
}

// PastReview reports whether the workflow has progressed beyond admin
// review. Used by the timeline projection.
func (s NOCStatus) PastReview() bool {
	return s == NOCStatusForwarded || s.IsTerminal()
}
