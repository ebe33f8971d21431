package models

import "time"

const (
	AuditActionApprove         = "approve"
	AuditActionReject          = "reject"
	AuditActionRequestRevision = "request_revision"
	AuditActionPublish         = "publish"
)

const (
	AuditTargetSubmission = "submission"
	AuditTargetSuggestion = "person_suggestion"
)

// AuditLog is append-only: rows are inserted on committed transitions and
// never updated or deleted.
type AuditLog struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ModeratorID uint      `json:"moderator_id" gorm:"not null"`
	Action      string    `json:"action" gorm:"not null"`
	TargetType  string    `json:"target_type" gorm:"not null"`
	TargetID    uint      `json:"target_id" gorm:"not null"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}
