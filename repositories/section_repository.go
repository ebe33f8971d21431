package repositories

import (
	"encyclo-cms/models"

	"gorm.io/gorm"
)

type SectionRepository interface {
	GetByID(id uint) (*models.Section, error)
	GetByKey(key string) (*models.Section, error)
	GetAll() ([]models.Section, error)
}

type sectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

func (r *sectionRepository) GetByID(id uint) (*models.Section, error) {
	var section models.Section
	err := r.db.First(&section, id).Error
	return &section, err
}

func (r *sectionRepository) GetByKey(key string) (*models.Section, error) {
	var section models.Section
	err := r.db.Where("key = ?", key).First(&section).Error
	return &section, err
}

func (r *sectionRepository) GetAll() ([]models.Section, error) {
	var sections []models.Section
	err := r.db.Where("active = ?", true).Order("id asc").Find(&sections).Error
	return sections, err
}
