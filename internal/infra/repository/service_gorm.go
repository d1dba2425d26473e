package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceGormRepository struct {
	*TxRunner
}

func NewServiceGormRepository(tx *TxRunner) *ServiceGormRepository {
	return &ServiceGormRepository{TxRunner: tx}
}

func (r *ServiceGormRepository) ListServices(
	ctx context.Context,
	activeOnly bool,
) ([]models.Service, error) {

	q := r.conn(ctx).Order("price ASC, name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {
	return findService(r.conn(ctx), id)
}

func (r *ServiceGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	if err := r.conn(ctx).Create(s).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrConflict("service_name_taken")
		}
		return err
	}
	return nil
}

func (r *ServiceGormRepository) UpdateService(
	ctx context.Context,
	s *models.Service,
) error {
	if err := r.conn(ctx).Save(s).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrConflict("service_name_taken")
		}
		return err
	}
	return nil
}

// RetimeAppointments relies on the appointments_no_overlap constraint to
// reject end times that now run into another booking.
func (r *ServiceGormRepository) RetimeAppointments(
	ctx context.Context,
	serviceID uint,
	durationMin int,
	from time.Time,
) (int64, error) {

	res := r.conn(ctx).
		Model(&models.Appointment{}).
		Where(
			"service_id = ? AND date >= ? AND status NOT IN ?",
			serviceID,
			from,
			[]string{string(domain.StatusCancelled), string(domain.StatusCompleted)},
		).
		Update("end_time", gorm.Expr("date + make_interval(mins => ?)", durationMin))
	if res.Error != nil {
		if httperr.IsExclusionConflict(res.Error) {
			return 0, httperr.ErrConflict("time_conflict")
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

var _ catalog.Repository = (*ServiceGormRepository)(nil)
