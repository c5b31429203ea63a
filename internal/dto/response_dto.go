package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/lshigami/nihongo-test/internal/scoring"
)

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// SectionSummaryDTO is the per-section count shown when an attempt starts.
type SectionSummaryDTO struct {
	SectionType     string `json:"section_type"`
	QuestionCount   int    `json:"question_count"`
	DurationSeconds int    `json:"duration_seconds"`
}

type AttemptCreatedDTO struct {
	ID             uuid.UUID           `json:"id"`
	Level          string              `json:"level"`
	Mode           model.AttemptMode   `json:"mode"`
	Status         model.AttemptStatus `json:"status"`
	ScoringVersion string              `json:"scoring_version"`
	StartedAt      time.Time           `json:"started_at"`
	Sections       []SectionSummaryDTO `json:"sections"`
}

// SnapshotQuestionDTO withholds the correct answer until the attempt is
// completed.
type SnapshotQuestionDTO struct {
	QuestionID    uint `json:"question_id"`
	CorrectAnswer *int `json:"correct_answer,omitempty"`
}

type SnapshotMondaiDTO struct {
	Number    int                   `json:"number"`
	Questions []SnapshotQuestionDTO `json:"questions"`
}

type SnapshotSectionDTO struct {
	SectionType     string              `json:"section_type"`
	QuestionCount   int                 `json:"question_count"`
	DurationSeconds int                 `json:"duration_seconds"`
	Locked          bool                `json:"locked"`
	Mondai          []SnapshotMondaiDTO `json:"mondai"`
}

type SectionSubmissionDTO struct {
	SectionType      string    `json:"section_type"`
	SubmittedAt      time.Time `json:"submitted_at"`
	TimeSpentSeconds int       `json:"time_spent_seconds"`
}

type UserAnswerDTO struct {
	QuestionID     uint      `json:"question_id"`
	SectionType    string    `json:"section_type"`
	SelectedAnswer *int      `json:"selected_answer"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// TestAttemptDetailDTO is the full read model of one attempt. Score fields
// are populated only once Status is completed.
type TestAttemptDetailDTO struct {
	ID              uuid.UUID               `json:"id"`
	OwnerID         string                  `json:"owner_id"`
	Level           string                  `json:"level"`
	Mode            model.AttemptMode       `json:"mode"`
	PracticeSection *string                 `json:"practice_section,omitempty"`
	Status          model.AttemptStatus     `json:"status"`
	ScoringVersion  string                  `json:"scoring_version"`
	StartedAt       time.Time               `json:"started_at"`
	CompletedAt     *time.Time              `json:"completed_at,omitempty"`
	Sections        []SnapshotSectionDTO    `json:"sections"`
	Submissions     []SectionSubmissionDTO  `json:"submissions"`
	Answers         []UserAnswerDTO         `json:"answers"`
	TotalScore      *int                    `json:"total_score,omitempty"`
	IsPassed        *bool                   `json:"is_passed,omitempty"`
	FailureReasons  []scoring.FailureReason `json:"failure_reasons,omitempty"`
	SectionScores   []scoring.SectionScore  `json:"section_scores,omitempty"`
}

type TestAttemptSummaryDTO struct {
	ID          uuid.UUID           `json:"id"`
	Level       string              `json:"level"`
	Mode        model.AttemptMode   `json:"mode"`
	Status      model.AttemptStatus `json:"status"`
	StartedAt   time.Time           `json:"started_at"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	TotalScore  *int                `json:"total_score,omitempty"`
	IsPassed    *bool               `json:"is_passed,omitempty"`
}

// SubmitSectionResponseDTO reports whether this submit completed the attempt.
// attempt_completed can be false after the last section when completion
// failed; the next read of the attempt completes it.
type SubmitSectionResponseDTO struct {
	Submission       SectionSubmissionDTO `json:"submission"`
	AttemptCompleted bool                 `json:"attempt_completed"`
}

type SectionTimerDTO struct {
	AttemptID        uuid.UUID `json:"attempt_id"`
	SectionType      string    `json:"section_type"`
	State            string    `json:"state"`
	RemainingSeconds int       `json:"remaining_seconds"`
}

type OfflineResultDTO struct {
	ID              uuid.UUID               `json:"id"`
	OwnerID         string                  `json:"owner_id"`
	Level           string                  `json:"level"`
	Mode            model.AttemptMode       `json:"mode"`
	PracticeSection *string                 `json:"practice_section,omitempty"`
	Source          string                  `json:"source"`
	Note            string                  `json:"note"`
	TakenOn         *time.Time              `json:"taken_on,omitempty"`
	ScoringVersion  string                  `json:"scoring_version"`
	TotalScore      int                     `json:"total_score"`
	IsPassed        bool                    `json:"is_passed"`
	FailureReasons  []scoring.FailureReason `json:"failure_reasons"`
	SectionScores   []scoring.SectionScore  `json:"section_scores"`
	CreatedAt       time.Time               `json:"created_at"`
}

type StudyAdviceDTO struct {
	AttemptID uuid.UUID `json:"attempt_id"`
	Advice    string    `json:"advice"`
}
