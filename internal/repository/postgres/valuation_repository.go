package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"myHousePrice/domain"
)

type ValuationRepository struct {
	DB *gorm.DB
}

func NewValuationRepository(db *gorm.DB) *ValuationRepository {
	return &ValuationRepository{DB: db}
}

func (r *ValuationRepository) Save(ctx context.Context, record *domain.ValuationRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to save valuation record: %w", err)
	}

	return nil
}

func (r *ValuationRepository) FindRecent(ctx context.Context, limit int) ([]domain.ValuationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var records []domain.ValuationRecord
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query valuation_records: %w", err)
	}

	return records, nil
}
