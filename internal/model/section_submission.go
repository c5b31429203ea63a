package model

import (
	"time"

	"github.com/google/uuid"
)

// SectionSubmission locks one section of an attempt. The unique index on
// (test_attempt_id, section_type) is the lock itself.
type SectionSubmission struct {
	ID               uint      `gorm:"primarykey" json:"id"`
	TestAttemptID    uuid.UUID `json:"test_attempt_id" gorm:"type:uuid;not null;uniqueIndex:idx_submission_attempt_section"`
	SectionType      string    `json:"section_type" gorm:"not null;uniqueIndex:idx_submission_attempt_section"`
	SubmittedAt      time.Time `json:"submitted_at" gorm:"not null"`
	TimeSpentSeconds int       `json:"time_spent_seconds" gorm:"not null;default:0"`
}
