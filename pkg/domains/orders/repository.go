package orders

import (
	"context"

	"github.com/qastore/pkg/entities"
	"github.com/qastore/pkg/utils"
	"gorm.io/gorm"
)

type Repository interface {
	FindByUser(ctx context.Context, userID uint) ([]entities.Order, error)
	FindByUserPaged(ctx context.Context, userID uint, page int) ([]entities.Order, int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) FindByUser(ctx context.Context, userID uint) ([]entities.Order, error) {
	var orders []entities.Order
	err := r.db.WithContext(ctx).Preload("Items").Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *repository) FindByUserPaged(ctx context.Context, userID uint, page int) ([]entities.Order, int, error) {
	var orders []entities.Order
	totalPages, err := utils.Pagination(&orders, page, r.db, ctx, "user_id = ?", userID)
	if err != nil {
		return nil, 0, err
	}
	for i := range orders {
		if err := r.db.WithContext(ctx).Where("order_id = ?", orders[i].ID).Find(&orders[i].Items).Error; err != nil {
			return nil, 0, err
		}
	}
	return orders, totalPages, nil
}
