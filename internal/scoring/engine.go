// Package scoring turns per-subsection correct/total counts into normalized
// section scores, reference grades and a pass/fail verdict. It does no I/O and
// holds no state; every call receives the Config it scores against.
package scoring

import (
	"fmt"
	"math"
)

type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
)

type FailureKind string

const (
	FailureSectionBelowMinimum FailureKind = "section_below_minimum"
	FailureTotalBelowMinimum   FailureKind = "total_below_minimum"
)

// MondaiInput is the correct/total count for one subsection.
type MondaiInput struct {
	Number  int
	Correct int
	Total   int
}

type SectionInput struct {
	SectionType string
	Mondai      []MondaiInput
}

type MondaiScore struct {
	Number   int     `json:"number"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
	Max      float64 `json:"max"`
}

type SectionScore struct {
	SectionType     string        `json:"section_type"`
	CorrectCount    int           `json:"correct_count"`
	QuestionCount   int           `json:"question_count"`
	RawScore        float64       `json:"raw_score"`
	RawMaxScore     float64       `json:"raw_max_score"`
	WeightedScore   float64       `json:"weighted_score"` // raw/rawMax*scaleMax before rounding
	NormalizedScore int           `json:"normalized_score"`
	ScaleMax        int           `json:"scale_max"`
	PassMark        int           `json:"pass_mark"`
	IsPassed        bool          `json:"is_passed"`
	ReferenceGrade  Grade         `json:"reference_grade"`
	Mondai          []MondaiScore `json:"mondai"`
}

type FailureReason struct {
	Kind        FailureKind `json:"kind"`
	SectionType string      `json:"section_type,omitempty"`
	Score       int         `json:"score"`
	Required    int         `json:"required"`
}

func (r FailureReason) String() string {
	if r.Kind == FailureTotalBelowMinimum {
		return fmt.Sprintf("total score %d is below the minimum %d", r.Score, r.Required)
	}
	return fmt.Sprintf("section %s scored %d, below its minimum %d", r.SectionType, r.Score, r.Required)
}

type Verdict struct {
	IsPassed       bool            `json:"is_passed"`
	SectionsPassed []string        `json:"sections_passed"`
	FailureReasons []FailureReason `json:"failure_reasons"`
	// TotalApplied is true only when the scores cover every section of the
	// level. Callers that need the level total must pass every section; the
	// attempt and offline paths do so for full mode.
	TotalApplied bool `json:"total_applied"`
}

// Result bundles everything one scoring run produces.
type Result struct {
	Level         string
	ConfigVersion string
	Sections      []SectionScore
	TotalScore    int
	Verdict       Verdict
}

// Evaluate is the single scoring path shared by live attempts and offline
// results: Score, Aggregate, EvaluatePassFail.
func Evaluate(cfg *Config, level string, inputs []SectionInput) (*Result, error) {
	sections, err := Score(cfg, level, inputs)
	if err != nil {
		return nil, err
	}
	total := Aggregate(sections)
	verdict, err := EvaluatePassFail(cfg, level, sections, total)
	if err != nil {
		return nil, err
	}
	return &Result{
		Level:         level,
		ConfigVersion: cfg.Version,
		Sections:      sections,
		TotalScore:    total,
		Verdict:       verdict,
	}, nil
}

// Score computes one SectionScore per input, ordered by the level's section
// order regardless of input order.
func Score(cfg *Config, level string, inputs []SectionInput) ([]SectionScore, error) {
	lvl, err := cfg.Level(level)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, ErrNoSections
	}

	byType := make(map[string]SectionInput, len(inputs))
	for _, in := range inputs {
		if _, err := lvl.Section(in.SectionType); err != nil {
			return nil, err
		}
		if _, dup := byType[in.SectionType]; dup {
			return nil, fmt.Errorf("%w: section %s given twice", ErrDuplicateInput, in.SectionType)
		}
		byType[in.SectionType] = in
	}

	scores := make([]SectionScore, 0, len(inputs))
	for i := range lvl.Sections {
		sec := &lvl.Sections[i]
		in, ok := byType[sec.Type]
		if !ok {
			continue
		}
		score, err := scoreSection(lvl.Level, sec, in)
		if err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	return scores, nil
}

func scoreSection(level string, sec *SectionConfig, in SectionInput) (SectionScore, error) {
	byNumber := make(map[int]MondaiInput, len(in.Mondai))
	for _, m := range in.Mondai {
		if _, ok := sec.FindMondai(m.Number); !ok {
			return SectionScore{}, fmt.Errorf("%w: mondai %d in level %s section %s",
				ErrUnknownSubsection, m.Number, level, sec.Type)
		}
		if _, dup := byNumber[m.Number]; dup {
			return SectionScore{}, fmt.Errorf("%w: mondai %d in section %s given twice",
				ErrDuplicateInput, m.Number, sec.Type)
		}
		if m.Correct < 0 || m.Total < 0 || m.Correct > m.Total {
			return SectionScore{}, fmt.Errorf("%w: mondai %d in section %s: %d/%d",
				ErrInvalidCounts, m.Number, sec.Type, m.Correct, m.Total)
		}
		byNumber[m.Number] = m
	}

	out := SectionScore{
		SectionType: sec.Type,
		ScaleMax:    sec.ScaleMax,
		PassMark:    sec.PassMark,
		Mondai:      make([]MondaiScore, 0, len(in.Mondai)),
	}
	// Accumulate in configured order so both entry paths sum identically.
	for _, mc := range sec.Mondai {
		m, ok := byNumber[mc.Number]
		if !ok {
			continue
		}
		ms := MondaiScore{
			Number:   mc.Number,
			Correct:  m.Correct,
			Total:    m.Total,
			Weight:   mc.Weight,
			Weighted: float64(m.Correct) * mc.Weight,
			Max:      float64(m.Total) * mc.Weight,
		}
		out.Mondai = append(out.Mondai, ms)
		out.CorrectCount += m.Correct
		out.QuestionCount += m.Total
		out.RawScore += ms.Weighted
		out.RawMaxScore += ms.Max
	}

	if out.RawMaxScore <= 0 {
		return SectionScore{}, fmt.Errorf("%w: level %s section %s has zero maximum raw score",
			ErrInvalidSectionConfig, level, sec.Type)
	}

	out.WeightedScore = out.RawScore / out.RawMaxScore * float64(sec.ScaleMax)
	out.NormalizedScore = int(math.Round(out.WeightedScore))
	out.ReferenceGrade = referenceGrade(out.NormalizedScore, sec)
	out.IsPassed = out.NormalizedScore >= sec.PassMark
	return out, nil
}

// referenceGrade buckets with inclusive lower bounds: a score equal to a cut
// point belongs to the higher band.
func referenceGrade(normalized int, sec *SectionConfig) Grade {
	switch {
	case normalized >= sec.GradeCutA:
		return GradeA
	case normalized >= sec.GradeCutB:
		return GradeB
	default:
		return GradeC
	}
}

// Aggregate sums normalized scores; raw scales differ between sections.
func Aggregate(scores []SectionScore) int {
	total := 0
	for _, s := range scores {
		total += s.NormalizedScore
	}
	return total
}

// EvaluatePassFail applies the conjunctive rule: every section must clear its
// own minimum and the total must clear the level minimum. A high total never
// compensates for a failed section.
func EvaluatePassFail(cfg *Config, level string, scores []SectionScore, total int) (Verdict, error) {
	lvl, err := cfg.Level(level)
	if err != nil {
		return Verdict{}, err
	}
	if len(scores) == 0 {
		return Verdict{}, ErrNoSections
	}

	v := Verdict{
		IsPassed:       true,
		SectionsPassed: []string{},
		FailureReasons: []FailureReason{},
		TotalApplied:   len(scores) == len(lvl.Sections),
	}
	for _, s := range scores {
		sec, err := lvl.Section(s.SectionType)
		if err != nil {
			return Verdict{}, err
		}
		if s.NormalizedScore >= sec.PassMark {
			v.SectionsPassed = append(v.SectionsPassed, s.SectionType)
			continue
		}
		v.IsPassed = false
		v.FailureReasons = append(v.FailureReasons, FailureReason{
			Kind:        FailureSectionBelowMinimum,
			SectionType: s.SectionType,
			Score:       s.NormalizedScore,
			Required:    sec.PassMark,
		})
	}
	if v.TotalApplied && total < lvl.TotalPassMark {
		v.IsPassed = false
		v.FailureReasons = append(v.FailureReasons, FailureReason{
			Kind:     FailureTotalBelowMinimum,
			Score:    total,
			Required: lvl.TotalPassMark,
		})
	}
	return v, nil
}
