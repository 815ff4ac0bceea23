package repository

import (
	"context"

	"lpg-delivery-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Deliveries struct{ db *gorm.DB }

func NewDeliveries(db *gorm.DB) *Deliveries { return &Deliveries{db: db} }

// Create inserts d. A second delivery for the same order yields ErrDuplicate.
func (r *Deliveries) Create(ctx context.Context, d *models.Delivery) error {
	return duplicate(r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error)
}

func (r *Deliveries) Save(ctx context.Context, d *models.Delivery) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(d).Error
}

func (r *Deliveries) ExistsForOrder(ctx context.Context, orderID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Delivery{}).Where("order_id = ?", orderID).Count(&n).Error
	return n > 0, err
}

func (r *Deliveries) FindByOrder(ctx context.Context, orderID uint) (*models.Delivery, error) {
	var d models.Delivery
	err := r.db.WithContext(ctx).Preload("DeliveryPerson").Where("order_id = ?", orderID).First(&d).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &d, nil
}

// OrderIDsAssignedTo lists the orders assigned to personID whose delivery
// is in status.
func (r *Deliveries) OrderIDsAssignedTo(ctx context.Context, personID uint, status models.DeliveryStatus) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Delivery{}).
		Where("delivery_person_id = ? AND status = ?", personID, status).
		Order("order_id").
		Pluck("order_id", &ids).Error
	return ids, err
}
