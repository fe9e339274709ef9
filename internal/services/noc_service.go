// internal/services/noc_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bsfdc/film-portal-backend/internal/apperrors"
	"github.com/bsfdc/film-portal-backend/internal/database"
	"github.com/bsfdc/film-portal-backend/internal/models"
	"github.com/bsfdc/film-portal-backend/internal/utils"
)

// Actor is the request-scoped identity every workflow call receives. It is
// built from JWT claims by the handler and never read from shared state.
type Actor struct {
	ID         uuid.UUID
	Name       string
	Role       models.UserRole
	DistrictID *uuid.UUID
}

type NOCService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

type LocationEntryRequest struct {
	Location    string    `json:"location" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	PersonCount int       `json:"person_count" validate:"required,gt=0"`
	SecurityFee float64   `json:"security_fee" validate:"gte=0"`
}

type SubmitNOCRequest struct {
	ProjectTitle string   `json:"project_title" validate:"required,max=255"`
	ProjectType  string   `json:"project_type" validate:"required"`
	Language     string   `json:"language" validate:"required"`
	Genre        string   `json:"genre" validate:"required"`
	DurationMins int      `json:"duration_mins" validate:"required,gt=0"`
	Director     string   `json:"director" validate:"required"`
	CastMembers  []string `json:"cast_members,omitempty"`
	Synopsis     string   `json:"synopsis,omitempty"`

	ProductionHouse   string `json:"production_house" validate:"required"`
	ProductionContact string `json:"production_contact" validate:"required,indian_mobile"`
	ProductionEmail   string `json:"production_email" validate:"required,email"`
	ProductionAddress string `json:"production_address" validate:"required"`

	RepresentativeName        string `json:"representative_name" validate:"required"`
	RepresentativeDesignation string `json:"representative_designation" validate:"required"`
	RepresentativeContact     string `json:"representative_contact" validate:"required,indian_mobile"`
	RepresentativeEmail       string `json:"representative_email" validate:"required,email"`

	DocumentURL string `json:"document_url,omitempty"`

	Locations []LocationEntryRequest `json:"locations" validate:"required,min=1,dive"`
}

type ForwardNOCRequest struct {
	Remarks       string      `json:"remarks" validate:"required"`
	DistrictIDs   []uuid.UUID `json:"district_ids,omitempty"`
	DepartmentIDs []uuid.UUID `json:"department_ids,omitempty"`
}

type DistrictDecisionRequest struct {
	Action  string `json:"action" validate:"required,oneof=approve reject"`
	Remarks string `json:"remarks" validate:"required"`
}

type NOCListParams struct {
	utils.PaginationParams
	Status *models.NOCStatus
}

func NewNOCService(db *gorm.DB, notificationService *NotificationService) *NOCService {
	return &NOCService{
		db:                  db,
		notificationService: notificationService,
	}
}

// Submit validates the applicant payload and creates the application in
// submitted state. Nothing is persisted when validation fails.
func (s *NOCService) Submit(actor Actor, req *SubmitNOCRequest) (*models.NOCApplication, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	if actor.Role != models.UserRoleFilmmaker {
		return nil, apperrors.Forbidden("only filmmakers can submit NOC applications")
	}

	application := &models.NOCApplication{
		ApplicantID:  actor.ID,
		ProjectTitle: req.ProjectTitle,
		ProjectType:  req.ProjectType,
		Language:     req.Language,
		Genre:        req.Genre,
		DurationMins: req.DurationMins,
		Director:     req.Director,
		CastMembers:  req.CastMembers,
		Synopsis:     req.Synopsis,

		ProductionHouse:   req.ProductionHouse,
		ProductionContact: req.ProductionContact,
		ProductionEmail:   req.ProductionEmail,
		ProductionAddress: req.ProductionAddress,

		RepresentativeName:        req.RepresentativeName,
		RepresentativeDesignation: req.RepresentativeDesignation,
		RepresentativeContact:     req.RepresentativeContact,
		RepresentativeEmail:       req.RepresentativeEmail,

		DocumentURL: req.DocumentURL,
		Status:      models.NOCStatusSubmitted,
	}

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		number, err := nextApplicationNo(tx)
		if err != nil {
			return err
		}
		application.ApplicationNo = number

		if err := tx.Create(application).Error; err != nil {
			return fmt.Errorf("failed to create NOC application: %w", err)
		}

		locations := make([]models.ShootingLocation, 0, len(req.Locations))
		for _, loc := range req.Locations {
			locations = append(locations, models.ShootingLocation{
				ApplicationID: application.ID,
				Location:      loc.Location,
				StartDate:     loc.StartDate,
				EndDate:       loc.EndDate,
				PersonCount:   loc.PersonCount,
				SecurityFee:   loc.SecurityFee,
			})
		}

		if err := tx.Create(&locations).Error; err != nil {
			return fmt.Errorf("failed to create shooting locations: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	s.db.Preload("Locations").First(application, application.ID)

	return application, nil
}

// Forward moves an application to the districts and departments that must
// clear it. The status change is a conditional update keyed on the statuses
// the guard table allows, so a concurrent transition cannot double-apply.
func (s *NOCService) Forward(actor Actor, applicationID uuid.UUID, req *ForwardNOCRequest) (*models.NOCApplication, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	if actor.Role != models.UserRoleAdmin {
		return nil, apperrors.Forbidden("only admins can forward NOC applications")
	}

	if len(req.DistrictIDs) == 0 && len(req.DepartmentIDs) == 0 {
		return nil, apperrors.Validation([]utils.ValidationError{{
			Field:   "district_ids",
			Tag:     "min",
			Message: "at least one district or department target is required",
		}})
	}

	var application models.NOCApplication

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.First(&application, applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("NOC application")
			}
			return fmt.Errorf("database error: %w", err)
		}

		var districts []models.District
		if len(req.DistrictIDs) > 0 {
			if err := tx.Where("id IN ?", req.DistrictIDs).Find(&districts).Error; err != nil {
				return fmt.Errorf("failed to resolve districts: %w", err)
			}
			if len(districts) != len(req.DistrictIDs) {
				return apperrors.NotFound("district")
			}
		}

		var departments []models.Department
		if len(req.DepartmentIDs) > 0 {
			if err := tx.Where("id IN ?", req.DepartmentIDs).Find(&departments).Error; err != nil {
				return fmt.Errorf("failed to resolve departments: %w", err)
			}
			if len(departments) != len(req.DepartmentIDs) {
				return apperrors.NotFound("department")
			}
		}

		now := time.Now()
		result := tx.Model(&models.NOCApplication{}).
			Where("id = ? AND status IN ?", applicationID, models.TransitionSources(models.NOCEventForward)).
			Updates(map[string]interface{}{
				"status":          models.NOCStatusForwarded,
				"admin_action_by": actor.ID,
				"admin_action_at": now,
				"admin_remarks":   req.Remarks,
				"forwarded_at":    now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update NOC application: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// Lost the guard check: surface the actual current status
			var current models.NOCApplication
			if err := tx.First(&current, applicationID).Error; err != nil {
				return fmt.Errorf("failed to reload NOC application: %w", err)
			}
			return apperrors.InvalidState("application cannot be forwarded", string(current.Status))
		}

		if err := tx.Model(&application).Association("ForwardedDistricts").Replace(districts); err != nil {
			return fmt.Errorf("failed to set forwarded districts: %w", err)
		}
		if err := tx.Model(&application).Association("ForwardedDepartments").Replace(departments); err != nil {
			return fmt.Errorf("failed to set forwarded departments: %w", err)
		}

		return nil
	})
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}

	s.db.Preload("Applicant").Preload("Locations").
		Preload("ForwardedDistricts").Preload("ForwardedDepartments").
		First(&application, applicationID)

	// Notify the applicant
	go s.sendForwardNotification(&application)

	return &application, nil
}

// Decide records a district admin's approval or rejection. Only legal from
// forwarded, only for an admin bound to one of the forwarded districts.
func (s *NOCService) Decide(actor Actor, applicationID uuid.UUID, req *DistrictDecisionRequest) (*models.NOCApplication, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	if actor.Role != models.UserRoleDistrictAdmin || actor.DistrictID == nil {
		return nil, apperrors.Forbidden("only district admins can decide NOC applications")
	}

	event, target, conflictMsg := decisionOutcome(req.Action)

	var application models.NOCApplication

	err := database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Preload("ForwardedDistricts").First(&application, applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("NOC application")
			}
			return fmt.Errorf("database error: %w", err)
		}

		bound := false
		for _, d := range application.ForwardedDistricts {
			if d.ID == *actor.DistrictID {
				bound = true
				break
			}
		}
		if !bound {
			return apperrors.Forbidden("application is not forwarded to your district")
		}

		now := time.Now()
		result := tx.Model(&models.NOCApplication{}).
			Where("id = ? AND status IN ?", applicationID, models.TransitionSources(event)).
			Updates(map[string]interface{}{
				"status":             target,
				"district_action_by": actor.ID,
				"district_action_at": now,
				"district_remarks":   req.Remarks,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update NOC application: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var current models.NOCApplication
			if err := tx.First(&current, applicationID).Error; err != nil {
				return fmt.Errorf("failed to reload NOC application: %w", err)
			}
			return apperrors.InvalidState(conflictMsg, string(current.Status))
		}

		return nil
	})
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}

	s.db.Preload("Applicant").Preload("Locations").
		Preload("ForwardedDistricts").Preload("ForwardedDepartments").
		First(&application, applicationID)

	// Notify the applicant
	go s.sendDecisionNotification(&application)

	return &application, nil
}

func decisionOutcome(action string) (models.NOCEvent, models.NOCStatus, string) {
	if action == "reject" {
		return models.NOCEventReject, models.NOCStatusRejected, "application cannot be rejected"
	}
	return models.NOCEventApprove, models.NOCStatusApproved, "application cannot be approved"
}

// GetByID returns one application, readable by its applicant, any admin,
// or a district admin whose district the application was forwarded to.
func (s *NOCService) GetByID(actor Actor, applicationID uuid.UUID) (*models.NOCApplication, error) {
	var application models.NOCApplication
	if err := s.db.Preload("Applicant").Preload("Locations").
		Preload("ForwardedDistricts").Preload("ForwardedDepartments").
		First(&application, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("NOC application")
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.canRead(actor, &application); err != nil {
		return nil, err
	}

	return &application, nil
}

// List returns applications visible to the actor: admins see everything,
// district admins see what was forwarded to their district, everyone else
// sees their own submissions.
func (s *NOCService) List(actor Actor, params NOCListParams) ([]models.NOCApplication, int64, error) {
	query := s.db.Model(&models.NOCApplication{}).
		Preload("Applicant").Preload("ForwardedDistricts").Preload("ForwardedDepartments")

	switch actor.Role {
	case models.UserRoleAdmin:
		// no scoping
	case models.UserRoleDistrictAdmin:
		if actor.DistrictID == nil {
			return nil, 0, apperrors.Forbidden("district admin has no bound district")
		}
		query = query.Where(
			"id IN (SELECT noc_application_id FROM noc_forwarded_districts WHERE district_id = ?)",
			*actor.DistrictID)
	default:
		query = query.Where("applicant_id = ?", actor.ID)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("project_title ILIKE ? OR application_no ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to count NOC applications: %w", err))
	}

	allowedSortFields := []string{"created_at", "updated_at", "status", "project_title"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var applications []models.NOCApplication
	if err := query.Find(&applications).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to fetch NOC applications: %w", err))
	}

	return applications, total, nil
}

// Timeline projects the lifecycle steps for one application.
func (s *NOCService) Timeline(actor Actor, applicationID uuid.UUID) ([]TimelineStep, error) {
	application, err := s.GetByID(actor, applicationID)
	if err != nil {
		return nil, err
	}
	return BuildTimeline(application), nil
}

func (s *NOCService) canRead(actor Actor, application *models.NOCApplication) error {
	switch actor.Role {
	case models.UserRoleAdmin:
		return nil
	case models.UserRoleDistrictAdmin:
		if actor.DistrictID != nil {
			for _, d := range application.ForwardedDistricts {
				if d.ID == *actor.DistrictID {
					return nil
				}
			}
		}
		return apperrors.Forbidden("application is not forwarded to your district")
	default:
		if application.ApplicantID == actor.ID {
			return nil
		}
		return apperrors.Forbidden("you cannot view this application")
	}
}

func nextApplicationNo(tx *gorm.DB) (string, error) {
	year := time.Now().Year()
	prefix := fmt.Sprintf("NOC/%d/", year)

	var count int64
	if err := tx.Model(&models.NOCApplication{}).
		Where("application_no LIKE ?", prefix+"%").Count(&count).Error; err != nil {
		return "", fmt.Errorf("failed to compute application number: %w", err)
	}

	return fmt.Sprintf("%s%05d", prefix, count+1), nil
}

func (s *NOCService) sendForwardNotification(application *models.NOCApplication) {
	if s.notificationService != nil {
		s.notificationService.SendNOCForwardedNotification(application)
	}
}

func (s *NOCService) sendDecisionNotification(application *models.NOCApplication) {
	if s.notificationService != nil {
		s.notificationService.SendNOCDecisionNotification(application)
	}
}
