package repository

import (
	"context"

	"lpg-delivery-api/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cylinders struct{ db *gorm.DB }

func NewCylinders(db *gorm.DB) *Cylinders { return &Cylinders{db: db} }

func (r *Cylinders) FindByID(ctx context.Context, id uint) (*models.Cylinder, error) {
	var c models.Cylinder
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// FindByTypeAndWeight looks up the stock row for one (type, weight) pair.
func (r *Cylinders) FindByTypeAndWeight(ctx context.Context, t models.CylinderType, weight float64) (*models.Cylinder, error) {
	var c models.Cylinder
	err := r.db.WithContext(ctx).
		Where("type = ? AND weight = ?", t, weight).
		First(&c).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *Cylinders) ListByType(ctx context.Context, t models.CylinderType) ([]models.Cylinder, error) {
	var out []models.Cylinder
	err := r.db.WithContext(ctx).Where("type = ?", t).Order("id").Find(&out).Error
	return out, err
}

func (r *Cylinders) Create(ctx context.Context, c *models.Cylinder) error {
	return duplicate(r.db.WithContext(ctx).Create(c).Error)
}

// Restock adds qty units to the row and overwrites its unit price.
func (r *Cylinders) Restock(ctx context.Context, id uint, qty int, price decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&models.Cylinder{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity + ?", qty),
			"price":          price,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reserve takes qty units out of stock. The decrement only applies when
// enough stock remains, so stock never goes negative regardless of
// isolation level; a lost race yields ErrInsufficientStock.
func (r *Cylinders) Reserve(ctx context.Context, id uint, qty int) error {
	res := r.db.WithContext(ctx).Model(&models.Cylinder{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

// Release puts qty units back into stock.
func (r *Cylinders) Release(ctx context.Context, id uint, qty int) error {
	res := r.db.WithContext(ctx).Model(&models.Cylinder{}).
		Where("id = ?", id).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
