package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ScheduleGormRepository struct {
	*TxRunner
}

func NewScheduleGormRepository(tx *TxRunner) *ScheduleGormRepository {
	return &ScheduleGormRepository{TxRunner: tx}
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWorkingHours(
	ctx context.Context,
	weekday int,
) (*models.WorkingHours, error) {

	var wh models.WorkingHours
	if err := r.conn(ctx).
		Where("weekday = ?", weekday).
		First(&wh).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &wh, nil
}

func (r *ScheduleGormRepository) ListWorkingHours(
	ctx context.Context,
) ([]models.WorkingHours, error) {

	var hours []models.WorkingHours
	if err := r.conn(ctx).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *ScheduleGormRepository) UpsertWorkingHours(
	ctx context.Context,
	wh *models.WorkingHours,
) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "weekday"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"open_time", "close_time", "lunch_start", "lunch_end", "is_open", "updated_at",
			}),
		}).
		Create(wh).Error
}

// --------------------------------------------------
// Blocked dates
// --------------------------------------------------

func (r *ScheduleGormRepository) IsDateBlocked(
	ctx context.Context,
	day string,
) (bool, error) {

	var count int64
	if err := r.conn(ctx).
		Model(&models.BlockedDate{}).
		Where("day = ?", day).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ScheduleGormRepository) ListBlockedDates(
	ctx context.Context,
) ([]models.BlockedDate, error) {

	var days []models.BlockedDate
	if err := r.conn(ctx).
		Order("day ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (r *ScheduleGormRepository) CreateBlockedDate(
	ctx context.Context,
	bd *models.BlockedDate,
) error {
	if err := r.conn(ctx).Create(bd).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrConflict("date_already_blocked")
		}
		return err
	}
	return nil
}

func (r *ScheduleGormRepository) DeleteBlockedDate(
	ctx context.Context,
	id uint,
) error {
	res := r.conn(ctx).Delete(&models.BlockedDate{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("blocked_date_not_found")
	}
	return nil
}

var _ schedule.Repository = (*ScheduleGormRepository)(nil)
