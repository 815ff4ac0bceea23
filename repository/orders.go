package repository

import (
	"context"
	"time"

	"lpg-delivery-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Orders struct{ db *gorm.DB }

func NewOrders(db *gorm.DB) *Orders { return &Orders{db: db} }

func (r *Orders) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(o).Error
}

// Save writes every column of o. Associations are left untouched.
func (r *Orders) Save(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(o).Error
}

func (r *Orders) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	if err := r.db.WithContext(ctx).Preload("User").First(&o, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

// FindOwned returns the order only when userID owns it.
func (r *Orders) FindOwned(ctx context.Context, id, userID uint) (*models.Order, error) {
	var o models.Order
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&o).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *Orders) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var out []models.Order
	err := r.db.WithContext(ctx).Preload("User").
		Where("user_id = ?", userID).
		Order("id").
		Find(&out).Error
	return out, err
}

// ListByUsernameAndPhone returns the orders of the user matching both filters.
func (r *Orders) ListByUsernameAndPhone(ctx context.Context, username, phone string) ([]models.Order, error) {
	var out []models.Order
	err := r.db.WithContext(ctx).Preload("User").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("users.username = ? AND users.phone_number = ?", username, phone).
		Order("orders.id").
		Find(&out).Error
	return out, err
}

// ListPlacedBetween returns orders with from <= order_date < to, ordered
// by owner then id.
func (r *Orders) ListPlacedBetween(ctx context.Context, from, to time.Time) ([]models.Order, error) {
	var out []models.Order
	err := r.db.WithContext(ctx).Preload("User").
		Where("order_date >= ? AND order_date < ?", from, to).
		Order("user_id").Order("id").
		Find(&out).Error
	return out, err
}

// ListByIDsWithStatus loads the given orders that are still in status.
func (r *Orders) ListByIDsWithStatus(ctx context.Context, ids []uint, status models.OrderStatus) ([]models.Order, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Order
	err := r.db.WithContext(ctx).Preload("User").
		Where("id IN ? AND status = ?", ids, status).
		Order("user_id").Order("id").
		Find(&out).Error
	return out, err
}

// Delete removes the order together with its delivery, payment and
// feedback rows.
func (r *Orders) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	for _, dep := range []interface{}{&models.Delivery{}, &models.Payment{}, &models.Feedback{}} {
		if err := db.Where("order_id = ?", id).Delete(dep).Error; err != nil {
			return err
		}
	}
	res := db.Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
