// internal/services/registration_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bsfdc/film-portal-backend/internal/apperrors"
	"github.com/bsfdc/film-portal-backend/internal/models"
	"github.com/bsfdc/film-portal-backend/internal/utils"
)

// RegistrationService handles the artist, producer and vendor empanelment
// profiles. All three share a single-step review: pending until an admin
// approves or rejects, each stamped exactly once.
type RegistrationService struct {
	db                  *gorm.DB
	notificationService *NotificationService
}

type ArtistRegistrationRequest struct {
	FullName    string     `json:"full_name" validate:"required,max=100"`
	FatherName  string     `json:"father_name,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Gender      string     `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Address     string     `json:"address" validate:"required"`
	DistrictID  *uuid.UUID `json:"district_id,omitempty"`
	Disciplines []string   `json:"disciplines" validate:"required,min=1"`
	Experience  string     `json:"experience,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
}

type ProducerRegistrationRequest struct {
	ProductionHouse string   `json:"production_house" validate:"required,max=255"`
	OwnerName       string   `json:"owner_name" validate:"required,max=100"`
	Address         string   `json:"address" validate:"required"`
	GSTNumber       string   `json:"gst_number,omitempty" validate:"omitempty,max=20"`
	PastProjects    []string `json:"past_projects,omitempty"`
	DocumentURL     string   `json:"document_url,omitempty"`
}

type VendorRegistrationRequest struct {
	FirmName    string   `json:"firm_name" validate:"required,max=255"`
	OwnerName   string   `json:"owner_name" validate:"required,max=100"`
	Address     string   `json:"address" validate:"required"`
	Services    []string `json:"services" validate:"required,min=1"`
	GSTNumber   string   `json:"gst_number,omitempty" validate:"omitempty,max=20"`
	DocumentURL string   `json:"document_url,omitempty"`
}

type ReviewRequest struct {
	Action  string `json:"action" validate:"required,oneof=approve reject"`
	Remarks string `json:"remarks,omitempty"`
}

type RegistrationListParams struct {
	utils.PaginationParams
	Status *models.RegistrationStatus
}

func NewRegistrationService(db *gorm.DB, notificationService *NotificationService) *RegistrationService {
	return &RegistrationService{
		db:                  db,
		notificationService: notificationService,
	}
}

func (s *RegistrationService) RegisterArtist(actor Actor, req *ArtistRegistrationRequest) (*models.ArtistProfile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	if err := s.ensureNoPendingProfile(&models.ArtistProfile{}, actor.ID); err != nil {
		return nil, err
	}

	profile := &models.ArtistProfile{
		UserID:      actor.ID,
		FullName:    req.FullName,
		FatherName:  req.FatherName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		Address:     req.Address,
		DistrictID:  req.DistrictID,
		Disciplines: req.Disciplines,
		Experience:  req.Experience,
		PhotoURL:    req.PhotoURL,
		Status:      models.RegistrationStatusPending,
	}

	if err := s.db.Create(profile).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create artist profile: %w", err))
	}

	return profile, nil
}

func (s *RegistrationService) RegisterProducer(actor Actor, req *ProducerRegistrationRequest) (*models.ProducerProfile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	if err := s.ensureNoPendingProfile(&models.ProducerProfile{}, actor.ID); err != nil {
		return nil, err
	}

	profile := &models.ProducerProfile{
		UserID:          actor.ID,
		ProductionHouse: req.ProductionHouse,
		OwnerName:       req.OwnerName,
		Address:         req.Address,
		GSTNumber:       req.GSTNumber,
		PastProjects:    req.PastProjects,
		DocumentURL:     req.DocumentURL,
		Status:          models.RegistrationStatusPending,
	}

	if err := s.db.Create(profile).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create producer profile: %w", err))
	}

	return profile, nil
}

func (s *RegistrationService) RegisterVendor(actor Actor, req *VendorRegistrationRequest) (*models.VendorProfile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	if err := s.ensureNoPendingProfile(&models.VendorProfile{}, actor.ID); err != nil {
		return nil, err
	}

	profile := &models.VendorProfile{
		UserID:      actor.ID,
		FirmName:    req.FirmName,
		OwnerName:   req.OwnerName,
		Address:     req.Address,
		Services:    req.Services,
		GSTNumber:   req.GSTNumber,
		DocumentURL: req.DocumentURL,
		Status:      models.RegistrationStatusPending,
	}

	if err := s.db.Create(profile).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create vendor profile: %w", err))
	}

	return profile, nil
}

// ReviewArtist stamps an admin decision on a pending artist profile. The
// update is conditional on the profile still being pending, so two admins
// reviewing concurrently cannot both win.
func (s *RegistrationService) ReviewArtist(actor Actor, profileID uuid.UUID, req *ReviewRequest) (*models.ArtistProfile, error) {
	var profile models.ArtistProfile
	if err := s.review(actor, &profile, profileID, req); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *RegistrationService) ReviewProducer(actor Actor, profileID uuid.UUID, req *ReviewRequest) (*models.ProducerProfile, error) {
	var profile models.ProducerProfile
	if err := s.review(actor, &profile, profileID, req); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *RegistrationService) ReviewVendor(actor Actor, profileID uuid.UUID, req *ReviewRequest) (*models.VendorProfile, error) {
	var profile models.VendorProfile
	if err := s.review(actor, &profile, profileID, req); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *RegistrationService) ListArtists(params RegistrationListParams) ([]models.ArtistProfile, int64, error) {
	var profiles []models.ArtistProfile
	total, err := s.list(&models.ArtistProfile{}, &profiles, params, "District")
	return profiles, total, err
}

func (s *RegistrationService) ListProducers(params RegistrationListParams) ([]models.ProducerProfile, int64, error) {
	var profiles []models.ProducerProfile
	total, err := s.list(&models.ProducerProfile{}, &profiles, params)
	return profiles, total, err
}

func (s *RegistrationService) ListVendors(params RegistrationListParams) ([]models.VendorProfile, int64, error) {
	var profiles []models.VendorProfile
	total, err := s.list(&models.VendorProfile{}, &profiles, params)
	return profiles, total, err
}

func (s *RegistrationService) ensureNoPendingProfile(model interface{}, userID uuid.UUID) error {
	var count int64
	if err := s.db.Model(model).
		Where("user_id = ? AND status = ?", userID, models.RegistrationStatusPending).
		Count(&count).Error; err != nil {
		return apperrors.Internal(fmt.Errorf("database error: %w", err))
	}
	if count > 0 {
		return apperrors.AlreadyExists("a registration is already pending review")
	}
	return nil
}

func (s *RegistrationService) review(actor Actor, profile interface{}, profileID uuid.UUID, req *ReviewRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return apperrors.Validation(utils.GetValidationErrors(err))
	}

	if actor.Role != models.UserRoleAdmin {
		return apperrors.Forbidden("only admins can review registrations")
	}

	status := models.RegistrationStatusApproved
	if req.Action == "reject" {
		status = models.RegistrationStatusRejected
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(profile, profileID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("registration")
			}
			return fmt.Errorf("database error: %w", err)
		}

		result := tx.Model(profile).
			Where("id = ? AND status = ?", profileID, models.RegistrationStatusPending).
			Updates(map[string]interface{}{
				"status":         status,
				"reviewed_by":    actor.ID,
				"reviewed_at":    time.Now(),
				"review_remarks": req.Remarks,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update registration: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			if err := tx.First(profile, profileID).Error; err != nil {
				return fmt.Errorf("failed to reload registration: %w", err)
			}
			return apperrors.InvalidState(
				"registration has already been reviewed", string(registrationStatusOf(profile)))
		}

		return tx.First(profile, profileID).Error
	})
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return err
		}
		return apperrors.Internal(err)
	}

	// Notify the applicant
	if s.notificationService != nil {
		var user models.User
		if err := s.db.First(&user, registrationUserIDOf(profile)).Error; err == nil {
			go s.notificationService.SendRegistrationReviewedNotification(
				&user, registrationKindOf(profile), status, req.Remarks)
		}
	}

	return nil
}

func registrationKindOf(profile interface{}) string {
	switch profile.(type) {
	case *models.ArtistProfile:
		return "artist"
	case *models.ProducerProfile:
		return "producer"
	case *models.VendorProfile:
		return "vendor"
	}
	return "registration"
}

func registrationUserIDOf(profile interface{}) uuid.UUID {
	switch p := profile.(type) {
	case *models.ArtistProfile:
		return p.UserID
	case *models.ProducerProfile:
		return p.UserID
	case *models.VendorProfile:
		return p.UserID
	}
	return uuid.Nil
}

func registrationStatusOf(profile interface{}) models.RegistrationStatus {
	switch p := profile.(type) {
	case *models.ArtistProfile:
		return p.Status
	case *models.ProducerProfile:
		return p.Status
	case *models.VendorProfile:
		return p.Status
	}
	return ""
}

func (s *RegistrationService) list(model interface{}, dest interface{}, params RegistrationListParams, preloads ...string) (int64, error) {
	query := s.db.Model(model).Preload("User")
	for _, p := range preloads {
		query = query.Preload(p)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, apperrors.Internal(fmt.Errorf("failed to count registrations: %w", err))
	}

	allowedSortFields := []string{"created_at", "updated_at", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	if err := query.Find(dest).Error; err != nil {
		return 0, apperrors.Internal(fmt.Errorf("failed to fetch registrations: %w", err))
	}

	return total, nil
}
