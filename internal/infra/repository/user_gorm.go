package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UserGormRepository struct {
	*TxRunner
}

func NewUserGormRepository(tx *TxRunner) *UserGormRepository {
	return &UserGormRepository{TxRunner: tx}
}

// AddPoints is a single conditional UPDATE, so concurrent awards never lose
// increments and the balance never goes negative.
func (r *UserGormRepository) AddPoints(
	ctx context.Context,
	userID uint,
	delta int,
) (int, error) {

	db := r.conn(ctx)

	res := db.Model(&models.User{}).
		Where("id = ? AND loyalty_points + ? >= 0", userID, delta).
		UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}

	points, err := r.GetPoints(ctx, userID)
	if err != nil {
		return 0, err
	}

	if res.RowsAffected == 0 {
		return points, httperr.ErrValidation("negative_points")
	}
	return points, nil
}

func (r *UserGormRepository) GetPoints(
	ctx context.Context,
	userID uint,
) (int, error) {

	var u models.User
	if err := r.conn(ctx).
		Select("id", "loyalty_points").
		First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, httperr.ErrNotFound("user_not_found")
		}
		return 0, err
	}
	return u.LoyaltyPoints, nil
}

func (r *UserGormRepository) ListClients(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.conn(ctx).
		Where("role = ?", string(auth.RoleClient)).
		Order("name ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

var _ loyalty.Repository = (*UserGormRepository)(nil)
