package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/model"
	"github.com/lshigami/nihongo-test/internal/scoring"
)

var ErrNotFound = errors.New("record not found")

// Completion is the outcome a CompletionFunc decides for an attempt.
type Completion struct {
	TotalScore     int
	IsPassed       bool
	FailureReasons []scoring.FailureReason
	CompletedAt    time.Time
	Scores         []model.SectionScore
}

// CompletionFunc runs while the attempt is held exclusively and still
// in_progress. Returning nil leaves the attempt untouched.
type CompletionFunc func(attempt *model.TestAttempt, submissions []model.SectionSubmission, answers []model.UserAnswer) (*Completion, error)

type TestAttemptRepository interface {
	Create(ctx context.Context, attempt *model.TestAttempt) error
	// FindByID loads the attempt with its submissions and section scores.
	FindByID(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]model.TestAttempt, error)
	// UpsertAnswer writes the answer only if the attempt is in_progress and the
	// answer's section has no submission, as one conditional statement.
	UpsertAnswer(ctx context.Context, answer *model.UserAnswer) (bool, error)
	// CreateSubmission inserts the submission unless one already exists for the
	// (attempt, section) pair. false means it already existed.
	CreateSubmission(ctx context.Context, sub *model.SectionSubmission) (bool, error)
	FindAnswers(ctx context.Context, attemptID uuid.UUID) ([]model.UserAnswer, error)
	// Complete performs the in_progress -> completed transition. false means
	// the attempt was not in_progress or fn declined.
	Complete(ctx context.Context, attemptID uuid.UUID, fn CompletionFunc) (bool, error)
}

type OfflineResultRepository interface {
	Create(ctx context.Context, result *model.OfflineTestResult) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.OfflineTestResult, error)
	FindAllByOwner(ctx context.Context, ownerID string) ([]model.OfflineTestResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type QuestionRepository interface {
	FetchPool(ctx context.Context, level, section string, mondai int) ([]model.SnapshotQuestion, error)
}
