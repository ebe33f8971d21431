package models

import (
	"time"

	"gorm.io/gorm"
)

type SuggestionStatus string

const (
	SuggestionPending           SuggestionStatus = "pending"
	SuggestionApproved          SuggestionStatus = "approved"
	SuggestionRejected          SuggestionStatus = "rejected"
	SuggestionRevisionRequested SuggestionStatus = "revision_requested"
	SuggestionPublished         SuggestionStatus = "published"
)

type PersonSuggestion struct {
	ID               uint             `json:"id" gorm:"primarykey"`
	UserID           uint             `json:"user_id" gorm:"not null"`
	User             *User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FirstNameRu      string           `json:"first_name_ru" gorm:"not null"`
	LastNameRu       string           `json:"last_name_ru" gorm:"not null"`
	FirstNameEn      string           `json:"first_name_en"`
	LastNameEn       string           `json:"last_name_en"`
	Biography        string           `json:"biography" gorm:"type:text"`
	Rank             string           `json:"rank"`
	Epigraph         string           `json:"epigraph"`
	BirthDate        *time.Time       `json:"birth_date"`
	DeathDate        *time.Time       `json:"death_date"`
	BirthCountry     string           `json:"birth_country"`
	DeathCountry     string           `json:"death_country"`
	Gender           string           `json:"gender"`
	PersonPhotoPath  string           `json:"person_photo_path"`
	ArticlePhotoPath string           `json:"article_photo_path"`
	Status           SuggestionStatus `json:"status" gorm:"default:'pending'"`
	ModeratorID      *uint            `json:"moderator_id"`
	ModeratorNote    string           `json:"moderator_note"`
	PersonID         *uint            `json:"person_id"`
	PublishedAt      *time.Time       `json:"published_at"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `json:"-" gorm:"index"`
}
