// internal/services/admin_service.go
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

type AdminService struct {
	db *gorm.DB
}

type AdminDashboardStats struct {
	TotalUsers        int64 `json:"total_users"`
	ActiveUsers       int64 `json:"active_users"`
	NewUsersThisMonth int64 `json:"new_users_this_month"`

	TotalApplications     int64 `json:"total_applications"`
	PendingApplications   int64 `json:"pending_applications"`
	ForwardedApplications int64 `json:"forwarded_applications"`
	ApprovedApplications  int64 `json:"approved_applications"`
	RejectedApplications  int64 `json:"rejected_applications"`
	ApplicationsThisMonth int64 `json:"applications_this_month"`

	PendingArtists   int64 `json:"pending_artists"`
	PendingProducers int64 `json:"pending_producers"`
	PendingVendors   int64 `json:"pending_vendors"`

	OpenTenders int64 `json:"open_tenders"`
}

type AdminUserFilter struct {
	utils.PaginationParams
	Role       *models.UserRole   `json:"role,omitempty"`
	Status     *models.UserStatus `json:"status,omitempty"`
	DistrictID *uuid.UUID         `json:"district_id,omitempty"`
}

type CreateDistrictAdminRequest struct {
	Name       string    `json:"name" validate:"required,max=100"`
	Email      string    `json:"email" validate:"required,email"`
	Mobile     string    `json:"mobile" validate:"required,indian_mobile"`
	Password   string    `json:"password" validate:"required,strong_password"`
	DistrictID uuid.UUID `json:"district_id" validate:"required"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// GetDashboardStats aggregates the counters shown on the admin console.
func (s *AdminService) GetDashboardStats() (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	s.db.Model(&models.User{}).Count(&stats.TotalUsers)
	s.db.Model(&models.User{}).Where("status = ?", models.UserStatusActive).Count(&stats.ActiveUsers)
	s.db.Model(&models.User{}).Where("created_at >= ?", monthStart).Count(&stats.NewUsersThisMonth)

	s.db.Model(&models.NOCApplication{}).Count(&stats.TotalApplications)
	s.db.Model(&models.NOCApplication{}).
		Where("status IN ?", []models.NOCStatus{models.NOCStatusSubmitted, models.NOCStatusUnderReview}).
		Count(&stats.PendingApplications)
	s.db.Model(&models.NOCApplication{}).
		Where("status = ?", models.NOCStatusForwarded).Count(&stats.ForwardedApplications)
	s.db.Model(&models.NOCApplication{}).
		Where("status = ?", models.NOCStatusApproved).Count(&stats.ApprovedApplications)
	s.db.Model(&models.NOCApplication{}).
		Where("status = ?", models.NOCStatusRejected).Count(&stats.RejectedApplications)
	s.db.Model(&models.NOCApplication{}).
		Where("created_at >= ?", monthStart).Count(&stats.ApplicationsThisMonth)

	s.db.Model(&models.ArtistProfile{}).
		Where("status = ?", models.RegistrationStatusPending).Count(&stats.PendingArtists)
	s.db.Model(&models.ProducerProfile{}).
		Where("status = ?", models.RegistrationStatusPending).Count(&stats.PendingProducers)
	s.db.Model(&models.VendorProfile{}).
		Where("status = ?", models.RegistrationStatusPending).Count(&stats.PendingVendors)

	s.db.Model(&models.Tender{}).
		Where("status = ?", models.TenderStatusOpen).Count(&stats.OpenTenders)

	return stats, nil
}

// GetUsers lists portal accounts for the admin console.
func (s *AdminService) GetUsers(filter AdminUserFilter) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{}).Preload("District")

	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.DistrictID != nil {
		query = query.Where("district_id = ?", *filter.DistrictID)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to count users: %w", err))
	}

	allowedSortFields := []string{"created_at", "name", "email", "role", "status"}
	query = utils.ApplySort(query, filter.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, filter.PaginationParams)

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to fetch users: %w", err))
	}

	return users, total, nil
}

// CreateDistrictAdmin provisions a district admin account bound to exactly
// one district. Self-service registration never produces this role.
func (s *AdminService) CreateDistrictAdmin(req *CreateDistrictAdminRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	var district models.District
	if err := s.db.First(&district, req.DistrictID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("district")
		}
		return nil, apperrors.Internal(fmt.Errorf("database error: %w", err))
	}

	var existing models.User
	err := s.db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, apperrors.AlreadyExists("an account with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Internal(fmt.Errorf("database error: %w", err))
	}

	user := &models.User{
		Name:       req.Name,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Role:       models.UserRoleDistrictAdmin,
		Status:     models.UserStatusActive,
		DistrictID: &district.ID,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to hash password: %w", err))
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create district admin: %w", err))
	}

	return user, nil
}

// UpdateUserStatus suspends or reinstates an account.
func (s *AdminService) UpdateUserStatus(userID uuid.UUID, status models.UserStatus) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.Internal(fmt.Errorf("database error: %w", err))
	}

	if err := s.db.Model(&user).Update("status", status).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to update user status: %w", err))
	}

	return &user, nil
}

// GetAuditLogs pages through the audit trail, newest first.
func (s *AdminService) GetAuditLogs(params utils.PaginationParams) ([]models.AuditLog, int64, error) {
	query := s.db.Model(&models.AuditLog{})

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("action ILIKE ? OR resource_type ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to count audit logs: %w", err))
	}

	allowedSortFields := []string{"created_at", "action", "resource_type"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var logs []models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to fetch audit logs: %w", err))
	}

	return logs, total, nil
}
