package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	*TxRunner
}

func NewAppointmentGormRepository(tx *TxRunner) *AppointmentGormRepository {
	return &AppointmentGormRepository{TxRunner: tx}
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {
	return findService(r.conn(ctx), id)
}

func findService(db *gorm.DB, id uint) (*models.Service, error) {
	var s models.Service
	if err := db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service_not_found")
		}
		return nil, err
	}
	return &s, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) HasConflict(
	ctx context.Context,
	start time.Time,
	end time.Time,
	excludeID uint,
) (bool, error) {

	var ids []uint
	if err := r.conn(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"status <> ? AND date < ? AND end_time > ? AND id <> ?",
			string(domain.StatusCancelled),
			end,
			start,
			excludeID,
		).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return false, err
	}

	return len(ids) > 0, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.conn(ctx).Omit(clause.Associations).Create(ap).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	return findAppointment(ctx, r.conn(ctx), id)
}

func findAppointment(ctx context.Context, db *gorm.DB, id uint) (*models.Appointment, error) {
	q := db.Preload("Service").Preload("Payment")
	if inTx(ctx) {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var ap models.Appointment
	if err := q.First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.conn(ctx).Omit(clause.Associations).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	db := r.conn(ctx)

	if err := db.Where("appointment_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
		return err
	}

	res := db.Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Listing / availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.conn(ctx).
		Select("id", "date", "end_time", "status").
		Where(
			"status <> ? AND date < ? AND end_time > ?",
			string(domain.StatusCancelled), to, from,
		).
		Order("date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.conn(ctx).
		Preload("Service").
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListBetween(
	ctx context.Context,
	from time.Time,
	to time.Time,
	includeCancelled bool,
) ([]models.Appointment, error) {

	q := r.conn(ctx).
		Preload("User").
		Preload("Service").
		Preload("Payment").
		Where("date >= ? AND date < ?", from, to)

	if !includeCancelled {
		q = q.Where("status <> ?", string(domain.StatusCancelled))
	}

	var apps []models.Appointment
	if err := q.Order("date ASC").Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
