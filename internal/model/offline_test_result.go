package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"gorm.io/datatypes"
)

// OfflineTestResult is a scored outcome built from counts the user reported
// after taking a paper test. It is never updated, only deleted.
type OfflineTestResult struct {
	ID              uuid.UUID                                   `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID         string                                      `json:"owner_id" gorm:"not null;index"`
	Level           string                                      `json:"level" gorm:"not null"`
	Mode            AttemptMode                                 `json:"mode" gorm:"not null"`
	PracticeSection *string                                     `json:"practice_section,omitempty"`
	Source          string                                      `json:"source"`
	Note            string                                      `json:"note" gorm:"type:text"`
	TakenOn         *time.Time                                  `json:"taken_on,omitempty"`
	ScoringVersion  string                                      `json:"scoring_version" gorm:"not null"`
	TotalScore      int                                         `json:"total_score"`
	IsPassed        bool                                        `json:"is_passed"`
	FailureReasons  datatypes.JSONType[[]scoring.FailureReason] `json:"failure_reasons" gorm:"type:jsonb"`
	SectionScores   []SectionScore                              `json:"section_scores,omitempty" gorm:"-"`
	CreatedAt       time.Time                                   `json:"created_at"`
}
