package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type PaymentGormRepository struct {
	*TxRunner
}

func NewPaymentGormRepository(tx *TxRunner) *PaymentGormRepository {
	return &PaymentGormRepository{TxRunner: tx}
}

func (r *PaymentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	return findAppointment(ctx, r.conn(ctx), id)
}

func (r *PaymentGormRepository) GetPaymentByAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Payment, error) {

	q := r.conn(ctx).Where("appointment_id = ?", appointmentID)
	if inTx(ctx) {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var p models.Payment
	if err := q.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.conn(ctx).Create(p).Error
}

func (r *PaymentGormRepository) UpdatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.conn(ctx).Save(p).Error
}

// --------------------------------------------------
// Settings
// --------------------------------------------------

func (r *PaymentGormRepository) GetSettings(
	ctx context.Context,
	keys []string,
) (map[string]string, error) {

	var rows []models.Setting
	if err := r.conn(ctx).
		Where("key IN ?", keys).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out, nil
}

func (r *PaymentGormRepository) UpsertSettings(
	ctx context.Context,
	values map[string]string,
) error {
	if len(values) == 0 {
		return nil
	}

	rows := make([]models.Setting, 0, len(values))
	for k, v := range values {
		rows = append(rows, models.Setting{Key: k, Value: v})
	}

	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rows).Error
}

var _ payment.Repository = (*PaymentGormRepository)(nil)
