package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question is the row shape of the question bank this engine reads from.
// The bank itself is maintained elsewhere; the engine never writes it.
type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Level         string         `json:"level" gorm:"not null;index:idx_question_pool"`
	SectionType   string         `json:"section_type" gorm:"not null;index:idx_question_pool"`
	MondaiNumber  int            `json:"mondai_number" gorm:"not null;index:idx_question_pool"`
	OrderInMondai int            `json:"order_in_mondai" gorm:"not null;default:0"`
	Prompt        string         `json:"prompt" gorm:"type:text;not null"`
	Choices       datatypes.JSON `json:"choices" gorm:"type:jsonb"`
	CorrectAnswer int            `json:"correct_answer" gorm:"not null"`
	Active        bool           `json:"active" gorm:"not null;default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
