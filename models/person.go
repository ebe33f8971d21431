package models

import "time"

// Person is the production encyclopedia record. Rows are created only by the
// suggestion publisher, never by direct user action.
type Person struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	FirstNameRu string     `json:"first_name_ru" gorm:"not null"`
	LastNameRu  string     `json:"last_name_ru" gorm:"not null"`
	FirstNameEn string     `json:"first_name_en"`
	LastNameEn  string     `json:"last_name_en"`
	URL         string     `json:"url" gorm:"uniqueIndex;not null"`
	Epigraph    string     `json:"epigraph"`
	BirthDate   *time.Time `json:"birth_date"`
	DeathDate   *time.Time `json:"death_date"`
	Country     string     `json:"country"`
	Gender      string     `json:"gender"`
	PhotoPath   string     `json:"photo_path"`
	Moderated   bool       `json:"moderated" gorm:"default:false"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Person) TableName() string {
	return "persons"
}
