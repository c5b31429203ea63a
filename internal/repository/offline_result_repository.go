package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lshigami/nihongo-test/internal/model"
	"gorm.io/gorm"
)

type offlineResultRepository struct {
	db *gorm.DB
}

func NewOfflineResultRepository(db *gorm.DB) OfflineResultRepository {
	return &offlineResultRepository{db: db}
}

// Create stores the result and its section scores together.
func (r *offlineResultRepository) Create(ctx context.Context, result *model.OfflineTestResult) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(result).Error; err != nil {
			return fmt.Errorf("insert offline result: %w", err)
		}
		if len(result.SectionScores) == 0 {
			return nil
		}
		if err := tx.Create(&result.SectionScores).Error; err != nil {
			return fmt.Errorf("insert section scores: %w", err)
		}
		return nil
	})
}

func (r *offlineResultRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OfflineTestResult, error) {
	var result model.OfflineTestResult
	db := r.db.WithContext(ctx)
	if err := db.First(&result, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := db.Where("result_id = ? AND result_kind = ?", id, model.ResultKindOffline).Order("position ASC").Find(&result.SectionScores).Error; err != nil {
		return nil, fmt.Errorf("load section scores: %w", err)
	}
	return &result, nil
}

func (r *offlineResultRepository) FindAllByOwner(ctx context.Context, ownerID string) ([]model.OfflineTestResult, error) {
	var results []model.OfflineTestResult
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&results).Error
	return results, err
}

func (r *offlineResultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("result_id = ? AND result_kind = ?", id, model.ResultKindOffline).Delete(&model.SectionScore{}).Error; err != nil {
			return fmt.Errorf("delete section scores: %w", err)
		}
		res := tx.Delete(&model.OfflineTestResult{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
