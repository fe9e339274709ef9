// internal/services/notice_service.go
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

type NoticeService struct {
	db *gorm.DB
}

type CreateNoticeRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Body          string `json:"body" validate:"required"`
	AttachmentURL string `json:"attachment_url,omitempty"`
	Publish       bool   `json:"publish"`
}

type UpdateNoticeRequest struct {
	Title         *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Body          *string `json:"body,omitempty"`
	AttachmentURL *string `json:"attachment_url,omitempty"`
	Published     *bool   `json:"published,omitempty"`
}

func NewNoticeService(db *gorm.DB) *NoticeService {
	return &NoticeService{db: db}
}

func (s *NoticeService) Create(actor Actor, req *CreateNoticeRequest) (*models.Notice, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	notice := &models.Notice{
		Title:         req.Title,
		Body:          req.Body,
		AttachmentURL: req.AttachmentURL,
		Published:     req.Publish,
		PublishedBy:   actor.ID,
	}
	if req.Publish {
		now := time.Now()
		notice.PublishedAt = &now
	}

	if err := s.db.Create(notice).Error; err != nil {
		return nil, apperrors.Internal(fmt.Errorf("failed to create notice: %w", err))
	}

	return notice, nil
}

func (s *NoticeService) Update(actor Actor, noticeID uuid.UUID, req *UpdateNoticeRequest) (*models.Notice, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.GetValidationErrors(err))
	}

	var notice models.Notice
	if err := s.db.First(&notice, noticeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("notice")
		}
		return nil, apperrors.Internal(fmt.Errorf("database error: %w", err))
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.AttachmentURL != nil {
		updates["attachment_url"] = *req.AttachmentURL
	}
	if req.Published != nil {
		updates["published"] = *req.Published
		if *req.Published && notice.PublishedAt == nil {
			updates["published_at"] = time.Now()
		}
	}

	if len(updates) > 0 {
		if err := s.db.Model(&notice).Updates(updates).Error; err != nil {
			return nil, apperrors.Internal(fmt.Errorf("failed to update notice: %w", err))
		}
	}

	return &notice, nil
}

func (s *NoticeService) GetByID(noticeID uuid.UUID) (*models.Notice, error) {
	var notice models.Notice
	if err := s.db.First(&notice, noticeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("notice")
		}
		return nil, apperrors.Internal(fmt.Errorf("database error: %w", err))
	}
	return &notice, nil
}

// ListPublished is the public feed: newest first, published only.
func (s *NoticeService) ListPublished(params utils.PaginationParams) ([]models.Notice, int64, error) {
	return s.list(params, true)
}

// ListAll includes drafts, for the admin console.
func (s *NoticeService) ListAll(params utils.PaginationParams) ([]models.Notice, int64, error) {
	return s.list(params, false)
}

func (s *NoticeService) list(params utils.PaginationParams, publishedOnly bool) ([]models.Notice, int64, error) {
	query := s.db.Model(&models.Notice{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	if params.Search != "" {
		query = query.Where("title ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to count notices: %w", err))
	}

	allowedSortFields := []string{"created_at", "published_at", "title"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var notices []models.Notice
	if err := query.Find(&notices).Error; err != nil {
		return nil, 0, apperrors.Internal(fmt.Errorf("failed to fetch notices: %w", err))
	}

	return notices, total, nil
}

func (s *NoticeService) Delete(noticeID uuid.UUID) error {
	result := s.db.Delete(&models.Notice{}, noticeID)
	if result.Error != nil {
		return apperrors.Internal(fmt.Errorf("failed to delete notice: %w", result.Error))
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("notice")
	}
	return nil
}
