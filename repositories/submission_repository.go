package repositories

import (
	"time"

	"encyclo-cms/models"

	"gorm.io/gorm"
)

type SubmissionRepository interface {
	WithTx(tx *gorm.DB) SubmissionRepository
	Create(submission *models.Submission) error
	GetByID(id uint) (*models.Submission, error)
	GetList(params models.SubmissionListParams, userID uint) ([]models.Submission, int64, error)
	GetPending(limit int) ([]models.Submission, error)
	Submit(id, userID uint) (int64, error)
	ApplyReview(id uint, from models.SubmissionStatus, fields map[string]interface{}) (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) WithTx(tx *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: tx}
}

func (r *submissionRepository) Create(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) GetByID(id uint) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.Preload("Section").First(&submission, id).Error
	return &submission, err
}

func (r *submissionRepository) GetList(params models.SubmissionListParams, userID uint) ([]models.Submission, int64, error) {
	var submissions []models.Submission
	var total int64

	query := r.db.Model(&models.Submission{}).Preload("Section").Where("user_id = ?", userID)

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.SectionID > 0 {
		query = query.Where("section_id = ?", params.SectionID)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&submissions).Error

	return submissions, total, err
}

func (r *submissionRepository) GetPending(limit int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Preload("Section").Preload("User").
		Where("status = ?", models.SubmissionPending).
		Order("created_at asc").
		Limit(limit).
		Find(&submissions).Error
	return submissions, err
}

// Submit moves a draft to pending. Conditional on the current status so a
// double submit is a no-op reported by the row count.
func (r *submissionRepository) Submit(id, userID uint) (int64, error) {
	res := r.db.Model(&models.Submission{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, models.SubmissionDraft).
		Updates(map[string]interface{}{"status": models.SubmissionPending, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// ApplyReview performs the status transition as a single conditional update.
// A zero row count means another reviewer got there first (or the status
// changed since it was read); callers treat that as a state error.
func (r *submissionRepository) ApplyReview(id uint, from models.SubmissionStatus, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Submission{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	return res.RowsAffected, res.Error
}
