package repositories

import (
	"encyclo-cms/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	AdjustReputation(userID uint, delta int) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

// AdjustReputation applies a point delta, floored at zero so cumulative
// penalties can never drive the score negative.
func (r *userRepository) AdjustReputation(userID uint, delta int) error {
	return r.db.Exec(
		"UPDATE users SET reputation = GREATEST(0, reputation + ?), updated_at = NOW() WHERE id = ?",
		delta, userID,
	).Error
}
