package models

import (
	"time"

	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionDraft             SubmissionStatus = "draft"
	SubmissionPending           SubmissionStatus = "pending"
	SubmissionApproved          SubmissionStatus = "approved"
	SubmissionRejected          SubmissionStatus = "rejected"
	SubmissionRevisionRequested SubmissionStatus = "revision_requested"
)

type Submission struct {
	ID                uint             `json:"id" gorm:"primarykey"`
	UserID            uint             `json:"user_id" gorm:"not null"`
	User              *User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	SectionID         uint             `json:"section_id" gorm:"not null"`
	Section           *Section         `json:"section,omitempty" gorm:"foreignKey:SectionID"`
	PersonID          *uint            `json:"person_id"`
	Title             string           `json:"title" gorm:"not null"`
	Body              string           `json:"body" gorm:"type:text"`
	Epigraph          string           `json:"epigraph"`
	PhotoPath         string           `json:"photo_path"`
	Status            SubmissionStatus `json:"status" gorm:"default:'draft'"`
	ModeratorID       *uint            `json:"moderator_id"`
	ModeratorNote     string           `json:"moderator_note"`
	PublishedRecordID *uint            `json:"published_record_id"`
	ReviewedAt        *time.Time       `json:"reviewed_at"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `json:"-" gorm:"index"`
}
