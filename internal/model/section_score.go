package model

import (
	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/scoring"
	"gorm.io/datatypes"
)

type ResultKind string

const (
	ResultKindAttempt ResultKind = "attempt"
	ResultKindOffline ResultKind = "offline"
)

// SectionScore persists one scoring.SectionScore for either a test attempt
// or an offline result.
type SectionScore struct {
	ID              uint                                      `gorm:"primarykey" json:"id"`
	ResultID        uuid.UUID                                 `json:"result_id" gorm:"type:uuid;not null;uniqueIndex:idx_score_result_section"`
	ResultKind      ResultKind                                `json:"result_kind" gorm:"not null"`
	SectionType     string                                    `json:"section_type" gorm:"not null;uniqueIndex:idx_score_result_section"`
	Position        int                                       `json:"position" gorm:"not null"`
	CorrectCount    int                                       `json:"correct_count"`
	QuestionCount   int                                       `json:"question_count"`
	RawScore        float64                                   `json:"raw_score"`
	RawMaxScore     float64                                   `json:"raw_max_score"`
	WeightedScore   float64                                   `json:"weighted_score"`
	NormalizedScore int                                       `json:"normalized_score"`
	ScaleMax        int                                       `json:"scale_max"`
	PassMark        int                                       `json:"pass_mark"`
	IsPassed        bool                                      `json:"is_passed"`
	ReferenceGrade  string                                    `json:"reference_grade" gorm:"size:1"`
	MondaiBreakdown datatypes.JSONType[[]scoring.MondaiScore] `json:"mondai_breakdown" gorm:"type:jsonb"`
}

func NewSectionScores(resultID uuid.UUID, kind ResultKind, scores []scoring.SectionScore) []SectionScore {
	out := make([]SectionScore, len(scores))
	for i, s := range scores {
		out[i] = SectionScore{
			ResultID:        resultID,
			ResultKind:      kind,
			SectionType:     s.SectionType,
			Position:        i,
			CorrectCount:    s.CorrectCount,
			QuestionCount:   s.QuestionCount,
			RawScore:        s.RawScore,
			RawMaxScore:     s.RawMaxScore,
			WeightedScore:   s.WeightedScore,
			NormalizedScore: s.NormalizedScore,
			ScaleMax:        s.ScaleMax,
			PassMark:        s.PassMark,
			IsPassed:        s.IsPassed,
			ReferenceGrade:  string(s.ReferenceGrade),
			MondaiBreakdown: datatypes.NewJSONType(s.Mondai),
		}
	}
	return out
}

func (s SectionScore) ToScoring() scoring.SectionScore {
	return scoring.SectionScore{
		SectionType:     s.SectionType,
		CorrectCount:    s.CorrectCount,
		QuestionCount:   s.QuestionCount,
		RawScore:        s.RawScore,
		RawMaxScore:     s.RawMaxScore,
		WeightedScore:   s.WeightedScore,
		NormalizedScore: s.NormalizedScore,
		ScaleMax:        s.ScaleMax,
		PassMark:        s.PassMark,
		IsPassed:        s.IsPassed,
		ReferenceGrade:  scoring.Grade(s.ReferenceGrade),
		Mondai:          s.MondaiBreakdown.Data(),
	}
}
