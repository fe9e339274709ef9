// internal/services/reference_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bsfdc/film-portal-backend/internal/apperrors"
	"github.com/bsfdc/film-portal-backend/internal/models"
)

// ReferenceService serves the seeded lookup tables used by forms and the
// forwarding dialog.
type ReferenceService struct {
	db *gorm.DB
}

func NewReferenceService(db *gorm.DB) *ReferenceService {
	return &ReferenceService{db: db}
}

func (s *ReferenceService) ListDistricts() ([]models.District, error) {
	var districts []models.District
	if err := s.db.Order("name ASC").Find(&districts).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to fetch districts: %w", err))
	}
	return districts, nil
}

func (s *ReferenceService) ListDepartments() ([]models.Department, error) {
	var departments []models.Department
	if err := s.db.Order("name ASC").Find(&departments).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to fetch departments: %w", err))
	}
	return departments, nil
}
