package models

import "time"

// Production records written by the section router on approval. Each known
// section has its own table; anything else goes through the generic insert.

type Biography struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PersonID  *uint     `json:"person_id"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Slug      string    `json:"slug"`
	Body      string    `json:"body" gorm:"type:text"`
	Epigraph  string    `json:"epigraph"`
	CreatedAt time.Time `json:"created_at"`
}

func (Biography) TableName() string {
	return "biographies"
}

type NewsItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (NewsItem) TableName() string {
	return "news_items"
}

type PhotoRecord struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PersonID  *uint     `json:"person_id"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Title     string    `json:"title"`
	Path      string    `json:"path" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (PhotoRecord) TableName() string {
	return "photo_records"
}

type ForumPost struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	PersonID  *uint     `json:"person_id"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}

type Song struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PersonID  *uint     `json:"person_id"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (Song) TableName() string {
	return "songs"
}

type Fact struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PersonID  *uint     `json:"person_id"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (Fact) TableName() string {
	return "facts"
}

type Poem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PersonID  *uint     `json:"person_id"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	Title     string    `json:"title" gorm:"not null"`
	Body      string    `json:"body" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (Poem) TableName() string {
	return "poems"
}
