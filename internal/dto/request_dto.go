package dto

import "time"

// CreateAttemptRequest starts a new attempt. PracticeSection is required
// when Mode is "section".
type CreateAttemptRequest struct {
	Level           string  `json:"level" binding:"required"`
	Mode            string  `json:"mode" binding:"required,oneof=full section"`
	PracticeSection *string `json:"practice_section"`
}

// RecordAnswerRequest sets or clears the answer to one question. A null
// selected_answer leaves the question blank.
type RecordAnswerRequest struct {
	SelectedAnswer *int `json:"selected_answer" binding:"omitempty,min=0"`
}

type SubmitSectionRequest struct {
	TimeSpentSeconds int `json:"time_spent_seconds" binding:"min=0"`
}

// OfflineEntryRequest carries no binding rules; the service checks every
// field and reports problems against the entry index.
type OfflineEntryRequest struct {
	SectionType string `json:"section_type"`
	Subsection  int    `json:"subsection"`
	Correct     int    `json:"correct"`
	Total       int    `json:"total"`
}

// OfflineResultRequest records a paper-test outcome from self-reported
// counts. Per-entry consistency is checked by the service so that every
// problem is reported at once.
type OfflineResultRequest struct {
	Level           string                `json:"level" binding:"required"`
	Mode            string                `json:"mode" binding:"required,oneof=full section"`
	PracticeSection *string               `json:"practice_section"`
	Source          string                `json:"source" binding:"max=255"`
	Note            string                `json:"note"`
	TakenOn         *time.Time            `json:"taken_on"`
	Entries         []OfflineEntryRequest `json:"entries" binding:"required,min=1,dive"`
}
