package repositories

import (
	"encyclo-cms/models"

	"gorm.io/gorm"
)

// AuditRepository is append-only; there is no update or delete.
type AuditRepository interface {
	WithTx(tx *gorm.DB) AuditRepository
	Record(entry *models.AuditLog) error
	GetList(limit, offset int) ([]models.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) WithTx(tx *gorm.DB) AuditRepository {
	return &auditRepository{db: tx}
}

func (r *auditRepository) Record(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditRepository) GetList(limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	query := r.db.Model(&models.AuditLog{})
	query.Count(&total)

	err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}
