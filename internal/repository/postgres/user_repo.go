package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/remib/phonestore/internal/domain"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteCascade deletes children before parents: order lines first, then
// orders, then the user row. Any failure rolls the whole transaction back.
func (r *userRepository) DeleteCascade(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderIDs := tx.Model(&domain.Order{}).Select("id").Where("user_id = ?", userID)

		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&domain.OrderLine{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&domain.Order{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&domain.User{}, "id = ?", userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}
