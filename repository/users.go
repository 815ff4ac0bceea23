package repository

import (
	"context"

	"lpg-delivery-api/models"

	"gorm.io/gorm"
)

type Users struct{ db *gorm.DB }

func NewUsers(db *gorm.DB) *Users { return &Users{db: db} }

// Create inserts u. A taken username yields ErrDuplicate.
func (r *Users) Create(ctx context.Context, u *models.User) error {
	return duplicate(r.db.WithContext(ctx).Omit("Orders").Create(u).Error)
}

func (r *Users) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *Users) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// ExistsByUsername reports whether the username is taken.
func (r *Users) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&n).Error
	return n > 0, err
}
