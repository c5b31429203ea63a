package repository

import (
	"context"

	"github.com/lshigami/nihongo-test/internal/model"
	"gorm.io/gorm"
)

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FetchPool returns active questions for one subsection in bank order.
func (r *questionRepository) FetchPool(ctx context.Context, level, section string, mondai int) ([]model.SnapshotQuestion, error) {
	var pool []model.SnapshotQuestion
	err := r.db.WithContext(ctx).
		Model(&model.Question{}).
		Select("id AS question_id, correct_answer").
		Where("level = ? AND section_type = ? AND mondai_number = ? AND active = ?", level, section, mondai, true).
		Order("order_in_mondai ASC, id ASC").
		Scan(&pool).Error
	return pool, err
}
