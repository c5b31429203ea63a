package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

func (r *testAttemptRepository) Create(ctx context.Context, attempt *model.TestAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *testAttemptRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	db := r.db.WithContext(ctx)
	if err := db.First(&attempt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := db.Where("test_attempt_id = ?", id).Order("submitted_at ASC, id ASC").Find(&attempt.Submissions).Error; err != nil {
		return nil, fmt.Errorf("load submissions: %w", err)
	}
	if err := db.Where("result_id = ? AND result_kind = ?", id, model.ResultKindAttempt).Order("position ASC").Find(&attempt.SectionScores).Error; err != nil {
		return nil, fmt.Errorf("load section scores: %w", err)
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("started_at DESC").Find(&attempts).Error
	return attempts, err
}

// upsertAnswerSQL inserts or overwrites an answer in one statement, guarded by
// the attempt being open and the section being unlocked. FOR SHARE on the
// attempt row conflicts with the FOR UPDATE taken in Complete: an answer that
// gets the row first is committed before completion reads the answers, and
// one that arrives later sees status completed and writes nothing.
const upsertAnswerSQL = `
INSERT INTO user_answers (test_attempt_id, question_id, section_type, selected_answer, answered_at)
SELECT CAST(? AS uuid), CAST(? AS bigint), CAST(? AS text), CAST(? AS bigint), CAST(? AS timestamptz)
WHERE EXISTS (
	SELECT 1 FROM test_attempts WHERE id = ? AND status = ? FOR SHARE
)
AND NOT EXISTS (
	SELECT 1 FROM section_submissions WHERE test_attempt_id = ? AND section_type = ?
)
ON CONFLICT (test_attempt_id, question_id)
DO UPDATE SET selected_answer = EXCLUDED.selected_answer, answered_at = EXCLUDED.answered_at`

func (r *testAttemptRepository) UpsertAnswer(ctx context.Context, answer *model.UserAnswer) (bool, error) {
	res := r.db.WithContext(ctx).Exec(upsertAnswerSQL,
		answer.TestAttemptID, answer.QuestionID, answer.SectionType, answer.SelectedAnswer, answer.AnsweredAt,
		answer.TestAttemptID, model.AttemptInProgress,
		answer.TestAttemptID, answer.SectionType,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *testAttemptRepository) CreateSubmission(ctx context.Context, sub *model.SectionSubmission) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "test_attempt_id"}, {Name: "section_type"}},
			DoNothing: true,
		}).
		Create(sub)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *testAttemptRepository) FindAnswers(ctx context.Context, attemptID uuid.UUID) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	err := r.db.WithContext(ctx).Where("test_attempt_id = ?", attemptID).Order("id ASC").Find(&answers).Error
	return answers, err
}

func (r *testAttemptRepository) Complete(ctx context.Context, attemptID uuid.UUID, fn CompletionFunc) (bool, error) {
	completed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var attempt model.TestAttempt
		// Pairs with FOR SHARE in upsertAnswerSQL.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND status = ?", attemptID, model.AttemptInProgress).
			First(&attempt).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		var submissions []model.SectionSubmission
		if err := tx.Where("test_attempt_id = ?", attemptID).Find(&submissions).Error; err != nil {
			return fmt.Errorf("load submissions: %w", err)
		}
		var answers []model.UserAnswer
		if err := tx.Where("test_attempt_id = ?", attemptID).Order("id ASC").Find(&answers).Error; err != nil {
			return fmt.Errorf("load answers: %w", err)
		}

		c, err := fn(&attempt, submissions, answers)
		if err != nil || c == nil {
			return err
		}

		res := tx.Model(&model.TestAttempt{}).
			Where("id = ? AND status = ?", attemptID, model.AttemptInProgress).
			Updates(map[string]interface{}{
				"status":          model.AttemptCompleted,
				"completed_at":    c.CompletedAt,
				"total_score":     c.TotalScore,
				"is_passed":       c.IsPassed,
				"failure_reasons": datatypes.NewJSONType(c.FailureReasons),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		if len(c.Scores) > 0 {
			if err := tx.Create(&c.Scores).Error; err != nil {
				return fmt.Errorf("insert section scores: %w", err)
			}
		}
		completed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}
