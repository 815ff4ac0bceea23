package repository

import (
	"context"

	"lpg-delivery-api/models"

	"gorm.io/gorm"
)

type Feedback struct{ db *gorm.DB }

func NewFeedback(db *gorm.DB) *Feedback { return &Feedback{db: db} }

// Create inserts f. A second entry for the same order yields ErrDuplicate.
func (r *Feedback) Create(ctx context.Context, f *models.Feedback) error {
	return duplicate(r.db.WithContext(ctx).Create(f).Error)
}

func (r *Feedback) ExistsForOrder(ctx context.Context, orderID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Feedback{}).Where("order_id = ?", orderID).Count(&n).Error
	return n > 0, err
}
