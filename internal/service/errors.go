package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/lshigami/nihongo-test/internal/snapshot"
)

// Access errors. Callers facing end users must not tell these two apart.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// State-violation errors: expected outcomes the caller recovers from.
var (
	ErrAttemptClosed    = errors.New("attempt is already completed")
	ErrSectionLocked    = errors.New("section is already submitted")
	ErrAlreadySubmitted = errors.New("section was already submitted")
)

// Configuration errors, surfaced as-is.
var (
	ErrInsufficientQuestions = snapshot.ErrInsufficientQuestions
	ErrInvalidSectionConfig  = scoring.ErrInvalidSectionConfig
)

// Request errors.
var (
	ErrQuestionNotInAttempt = errors.New("question is not part of this attempt")
	ErrSectionNotInAttempt  = errors.New("section is not part of this attempt")
	ErrInvalidTimeSpent     = errors.New("time spent must not be negative")
	ErrInvalidAnswer        = errors.New("selected answer must not be negative")
	ErrInvalidMode          = errors.New("invalid attempt mode")
	ErrAttemptNotCompleted  = errors.New("attempt is not completed yet")
)

// ValidationError describes one rejected offline entry. Index is -1 for
// problems that are not tied to a single entry.
type ValidationError struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("entries[%d].%s: %s", e.Index, e.Field, e.Message)
}

// ValidationErrors collects every problem found in one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(v.Messages(), "; ")
}

func (v ValidationErrors) Messages() []string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return msgs
}
