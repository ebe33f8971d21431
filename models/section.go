package models

import "time"

// Section keys with a bespoke production insert. Any other section falls
// back to the generic insert driven by the section's table_name.
const (
	SectionBiography = "biography"
	SectionPhoto     = "photo"
	SectionNews      = "news"
	SectionForum     = "forum"
	SectionSong      = "song"
	SectionFact      = "fact"
	SectionPoem      = "poem"
)

type Section struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Key       string    `json:"key" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Path      string    `json:"path" gorm:"not null"`
	TableName string    `json:"table_name" gorm:"column:table_name;not null"`
	FKColumn  string    `json:"fk_column" gorm:"column:fk_column"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
}
