package repositories

import (
	"time"

	"encyclo-cms/models"

	"gorm.io/gorm"
)

type SuggestionRepository interface {
	WithTx(tx *gorm.DB) SuggestionRepository
	Create(suggestion *models.PersonSuggestion) error
	GetByID(id uint) (*models.PersonSuggestion, error)
	GetByUser(userID uint) ([]models.PersonSuggestion, error)
	GetPending(limit int) ([]models.PersonSuggestion, error)
	ApplyReview(id uint, from models.SuggestionStatus, fields map[string]interface{}) (int64, error)
	MarkPublished(id, personID uint) (int64, error)
}

type suggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) WithTx(tx *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: tx}
}

func (r *suggestionRepository) Create(suggestion *models.PersonSuggestion) error {
	return r.db.Create(suggestion).Error
}

func (r *suggestionRepository) GetByID(id uint) (*models.PersonSuggestion, error) {
	var suggestion models.PersonSuggestion
	err := r.db.First(&suggestion, id).Error
	return &suggestion, err
}

func (r *suggestionRepository) GetByUser(userID uint) ([]models.PersonSuggestion, error) {
	var suggestions []models.PersonSuggestion
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&suggestions).Error
	return suggestions, err
}

func (r *suggestionRepository) GetPending(limit int) ([]models.PersonSuggestion, error) {
	var suggestions []models.PersonSuggestion
	err := r.db.Preload("User").
		Where("status = ?", models.SuggestionPending).
		Order("created_at asc").
		Limit(limit).
		Find(&suggestions).Error
	return suggestions, err
}

func (r *suggestionRepository) ApplyReview(id uint, from models.SuggestionStatus, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.PersonSuggestion{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// MarkPublished is conditional on status = approved AND person_id IS NULL so
// a suggestion can be published at most once.
func (r *suggestionRepository) MarkPublished(id, personID uint) (int64, error) {
	now := time.Now()
	res := r.db.Model(&models.PersonSuggestion{}).
		Where("id = ? AND status = ? AND person_id IS NULL", id, models.SuggestionApproved).
		Updates(map[string]interface{}{
			"status":       models.SuggestionPublished,
			"person_id":    personID,
			"published_at": now,
			"updated_at":   now,
		})
	return res.RowsAffected, res.Error
}
