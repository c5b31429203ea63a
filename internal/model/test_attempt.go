package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"gorm.io/datatypes"
)

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
)

type AttemptMode string

const (
	ModeFull    AttemptMode = "full"    // every section of the level
	ModeSection AttemptMode = "section" // single-section practice
)

type TestAttempt struct {
	ID              uuid.UUID                                   `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID         string                                      `json:"owner_id" gorm:"not null;index"`
	Level           string                                      `json:"level" gorm:"not null"`
	Mode            AttemptMode                                 `json:"mode" gorm:"not null"`
	PracticeSection *string                                     `json:"practice_section,omitempty"`
	Status          AttemptStatus                               `json:"status" gorm:"not null;default:'in_progress';index"`
	Snapshot        datatypes.JSONType[QuestionSnapshot]        `json:"snapshot" gorm:"type:jsonb;not null"`
	ScoringVersion  string                                      `json:"scoring_version" gorm:"not null"`
	StartedAt       time.Time                                   `json:"started_at" gorm:"not null"`
	CompletedAt     *time.Time                                  `json:"completed_at,omitempty"`
	TotalScore      *int                                        `json:"total_score,omitempty"`
	IsPassed        *bool                                       `json:"is_passed,omitempty"`
	FailureReasons  datatypes.JSONType[[]scoring.FailureReason] `json:"failure_reasons" gorm:"type:jsonb"`
	Submissions     []SectionSubmission                         `json:"submissions,omitempty" gorm:"-"`
	SectionScores   []SectionScore                              `json:"section_scores,omitempty" gorm:"-"`
	CreatedAt       time.Time                                   `json:"created_at"`
	UpdatedAt       time.Time                                   `json:"updated_at"`
}

// RequiredSections lists the sections that must be submitted before the
// attempt can complete, in presentation order.
func (a *TestAttempt) RequiredSections() []string {
	return a.Snapshot.Data().SectionTypes()
}

func (a *TestAttempt) IsCompleted() bool {
	return a.Status == AttemptCompleted
}
