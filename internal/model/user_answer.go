package model

import (
	"time"

	"github.com/google/uuid"
)

type UserAnswer struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	TestAttemptID  uuid.UUID `json:"test_attempt_id" gorm:"type:uuid;not null;uniqueIndex:idx_answer_attempt_question"`
	QuestionID     uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_attempt_question"`
	SectionType    string    `json:"section_type" gorm:"not null"`
	SelectedAnswer *int      `json:"selected_answer"` // nil means left blank
	AnsweredAt     time.Time `json:"answered_at" gorm:"not null"`
}
