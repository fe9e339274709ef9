// internal/services/tender_service.go
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

type TenderService struct {
	db *gorm.DB
}

type CreateTenderRequest struct {
	ReferenceNo string    `json:"reference_no" validate:"required,max=50"`
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description,omitempty"`
	DocumentURL string    `json:"document_url,omitempty"`
	OpeningDate time.Time `json:"opening_date" validate:"required"`
	ClosingDate time.Time `json:"closing_date" validate:"required"`
}

type UpdateTenderRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string    `json:"description,omitempty"`
	DocumentURL *string    `json:"document_url,omitempty"`
	OpeningDate *time.Time `json:"opening_date,omitempty"`
	ClosingDate *time.Time `json:"closing_date,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=open closed"`
}

type TenderListParams struct {
	utils.PaginationParams
	Status *models.TenderStatus
}

func NewTenderService(db *gorm.DB) *TenderService {
	return &TenderService{db: db}
}

func (s *TenderService) Create(actor Actor, req *CreateTenderRequest) (*models.Tender, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	if !req.ClosingDate.After(req.OpeningDate) {
		return nil, apperrors.Validation([]utils.ValidationError{{
			Field:   "closing_date",
			Tag:     "gtfield",
			Message: "closing date must be after opening date",
		}})
	}

	tender := &models.Tender{
		ReferenceNo: req.ReferenceNo,
		Title:       req.Title,
		Description: req.Description,
		DocumentURL: req.DocumentURL,
		OpeningDate: req.OpeningDate,
		ClosingDate: req.ClosingDate,
		Status:      models.TenderStatusOpen,
		PublishedBy: actor.ID,
	}

	if err := s.db.Create(tender).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create tender: %w", err))
	}

	return tender, nil
}

func (s *TenderService) Update(actor Actor, tenderID uuid.UUID, req *UpdateTenderRequest) (*models.Tender, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	var tender models.Tender
	if err := s.db.First(&tender, tenderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("tender")
		}
		return nil, apperrors.Internal(fmt.Errorf("database error: %w", err))
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DocumentURL != nil {
		updates["document_url"] = *req.DocumentURL
	}
	if req.OpeningDate != nil {
		updates["opening_date"] = *req.OpeningDate
	}
	if req.ClosingDate != nil {
		updates["closing_date"] = *req.ClosingDate
	}
	if req.Status != nil {
		updates["status"] = models.TenderStatus(*req.Status)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&tender).Updates(updates).Error; err != nil {
			return nil, apperrors.Internal(fmt.Errorf("failed to update tender: %w", err))
		}
	}

	return &tender, nil
}

func (s *TenderService) GetByID(tenderID uuid.UUID) (*models.Tender, error) {
	var tender models.Tender
	if err := s.db.First(&tender, tenderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("tender")
		}
		return nil, apperrors.Internal(fmt.Errorf("database error: %w", err))
	}
	return &tender, nil
}

// List returns tenders for the public listing. Tenders past their closing
// date are reported closed even before the sweep updates them.
func (s *TenderService) List(params TenderListParams) ([]models.Tender, int64, error) {
	query := s.db.Model(&models.Tender{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		search := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR reference_no ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to count tenders: %w", err))
	}

	allowedSortFields := []string{"created_at", "opening_date", "closing_date", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var tenders []models.Tender
	if err := query.Find(&tenders).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to fetch tenders: %w", err))
	}

	now := time.Now()
	for i := range tenders {
		if tenders[i].Status == models.TenderStatusOpen && tenders[i].ClosingDate.Before(now) {
			tenders[i].Status = models.TenderStatusClosed
		}
	}

	return tenders, total, nil
}

// CloseExpired marks open tenders past their closing date as closed.
func (s *TenderService) CloseExpired() (int64, error) {
	result := s.db.Model(&models.Tender{}).
		Where("status = ? AND closing_date < ?", models.TenderStatusOpen, time.Now()).
		Update("status", models.TenderStatusClosed)
	if result.Error != nil {
		return 0, apperrors.Internal(fmt.Errorf("failed to close expired tenders: %w", result.Error))
	}
	return result.RowsAffected, nil
}

func (s *TenderService) Delete(tenderID uuid.UUID) error {
	result := s.db.Delete(&models.Tender{}, tenderID)
	if result.Error != nil {
		return apperrors.Internal(fmt.Errorf("failed to delete tender: %w", result.Error))
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("tender")
	}
	return nil
}
