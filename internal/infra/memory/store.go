package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type txKey struct{}

// Store is an in-process implementation of every repository. Transactions
// are fully serialized and roll back on error, and the no-overlap rule is
// enforced on write the same way the Postgres exclusion constraint is.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	data   state
	nextID uint
}

type state struct {
	users        map[uint]models.User
	services     map[uint]models.Service
	appointments map[uint]models.Appointment
	payments     map[uint]models.Payment
	hours        map[int]models.WorkingHours
	blocked      map[uint]models.BlockedDate
	settings     map[string]string
}

func New() *Store {
	return &Store{data: state{
		users:        map[uint]models.User{},
		services:     map[uint]models.Service{},
		appointments: map[uint]models.Appointment{},
		payments:     map[uint]models.Payment{},
		hours:        map[int]models.WorkingHours{},
		blocked:      map[uint]models.BlockedDate{},
		settings:     map[string]string{},
	}}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snap := s.data.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.data = snap
		s.mu.Unlock()
		return err
	}
	return nil
}

func (st state) clone() state {
	return state{
		users:        cloneMap(st.users),
		services:     cloneMap(st.services),
		appointments: cloneMap(st.appointments),
		payments:     cloneMap(st.payments),
		hours:        cloneMap(st.hours),
		blocked:      cloneMap(st.blocked),
		settings:     cloneMap(st.settings),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// AddUser inserts a user and returns its id.
func (s *Store) AddUser(u models.User) uint {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.id()
	if u.Role == "" {
		u.Role = string(auth.RoleClient)
	}
	s.data.users[u.ID] = u
	return u.ID
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (s *Store) GetService(_ context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.data.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service_not_found")
	}
	return &svc, nil
}

func (s *Store) ListServices(_ context.Context, activeOnly bool) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Service{}
	for _, svc := range s.data.services {
		if activeOnly && !svc.Active {
			continue
		}
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Price.Equal(out[j].Price) {
			return out[i].Price.LessThan(out[j].Price)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *Store) CreateService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.serviceNameTaken(svc.Name, 0) {
		return httperr.ErrConflict("service_name_taken")
	}
	svc.ID = s.id()
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	s.data.services[svc.ID] = *svc
	return nil
}

func (s *Store) UpdateService(_ context.Context, svc *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.services[svc.ID]; !ok {
		return httperr.ErrNotFound("service_not_found")
	}
	if s.serviceNameTaken(svc.Name, svc.ID) {
		return httperr.ErrConflict("service_name_taken")
	}
	svc.UpdatedAt = time.Now()
	s.data.services[svc.ID] = *svc
	return nil
}

func (s *Store) serviceNameTaken(name string, except uint) bool {
	for _, other := range s.data.services {
		if other.ID != except && other.Name == name {
			return true
		}
	}
	return false
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *Store) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.overlaps(*ap) {
		return httperr.ErrConflict("time_conflict")
	}
	ap.ID = s.id()
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt
	s.data.appointments[ap.ID] = strip(*ap)
	return nil
}

func (s *Store) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.appointments[ap.ID]; !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	if s.overlaps(*ap) {
		return httperr.ErrConflict("time_conflict")
	}
	ap.UpdatedAt = time.Now()
	s.data.appointments[ap.ID] = strip(*ap)
	return nil
}

func (s *Store) RetimeAppointments(_ context.Context, serviceID uint, durationMin int, from time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, ap := range s.data.appointments {
		st := appointment.Status(ap.Status)
		if ap.ServiceID != serviceID || ap.Date.Before(from) || !st.Blocks() || st == appointment.StatusCompleted {
			continue
		}
		ap.EndTime = appointment.EndOf(ap.Date, durationMin)
		ap.UpdatedAt = time.Now()
		s.data.appointments[id] = ap
		n++
	}

	for _, ap := range s.data.appointments {
		if s.overlaps(ap) {
			return n, httperr.ErrConflict("time_conflict")
		}
	}
	return n, nil
}

func (s *Store) DeleteAppointment(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.appointments[id]; !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	delete(s.data.appointments, id)
	for pid, p := range s.data.payments {
		if p.AppointmentID == id {
			delete(s.data.payments, pid)
		}
	}
	return nil
}

func (s *Store) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.data.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	out := s.hydrate(ap, false)
	return &out, nil
}

func (s *Store) HasConflict(_ context.Context, start, end time.Time, excludeID uint) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return appointment.HasConflict(
		appointment.Interval{Start: start, End: end},
		s.allAppointments(),
		excludeID,
	), nil
}

func (s *Store) ListActiveBetween(_ context.Context, from, to time.Time) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := appointment.Interval{Start: from, End: to}
	out := []models.Appointment{}
	for _, ap := range s.sorted() {
		if appointment.Status(ap.Status).Blocks() && window.Overlaps(appointment.IntervalOf(ap)) {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (s *Store) ListByUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	all := s.sorted()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].UserID == userID {
			out = append(out, s.hydrate(all[i], false))
		}
	}
	return out, nil
}

func (s *Store) ListBetween(_ context.Context, from, to time.Time, includeCancelled bool) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Appointment{}
	for _, ap := range s.sorted() {
		if ap.Date.Before(from) || !ap.Date.Before(to) {
			continue
		}
		if !includeCancelled && !appointment.Status(ap.Status).Blocks() {
			continue
		}
		out = append(out, s.hydrate(ap, true))
	}
	return out, nil
}

func (s *Store) overlaps(ap models.Appointment) bool {
	if !appointment.Status(ap.Status).Blocks() {
		return false
	}
	return appointment.HasConflict(appointment.IntervalOf(ap), s.allAppointments(), ap.ID)
}

func (s *Store) allAppointments() []models.Appointment {
	out := make([]models.Appointment, 0, len(s.data.appointments))
	for _, ap := range s.data.appointments {
		out = append(out, ap)
	}
	return out
}

func (s *Store) sorted() []models.Appointment {
	out := s.allAppointments()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (s *Store) hydrate(ap models.Appointment, withUser bool) models.Appointment {
	if svc, ok := s.data.services[ap.ServiceID]; ok {
		ap.Service = &svc
	}
	for _, p := range s.data.payments {
		if p.AppointmentID == ap.ID {
			p := p
			ap.Payment = &p
			break
		}
	}
	if withUser {
		if u, ok := s.data.users[ap.UserID]; ok {
			ap.User = &u
		}
	}
	return ap
}

func strip(ap models.Appointment) models.Appointment {
	ap.User = nil
	ap.Service = nil
	ap.Payment = nil
	return ap
}

// --------------------------------------------------
// Payments
// --------------------------------------------------

func (s *Store) GetPaymentByAppointment(_ context.Context, appointmentID uint) (*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.data.payments {
		if p.AppointmentID == appointmentID {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) CreatePayment(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.appointments[p.AppointmentID]; !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	for _, other := range s.data.payments {
		if other.AppointmentID == p.AppointmentID || other.PaymentReference == p.PaymentReference {
			return httperr.ErrConflict("payment_exists")
		}
	}
	p.ID = s.id()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.data.payments[p.ID] = *p
	return nil
}

func (s *Store) UpdatePayment(_ context.Context, p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.payments[p.ID]; !ok {
		return httperr.ErrNotFound("payment_not_found")
	}
	p.UpdatedAt = time.Now()
	s.data.payments[p.ID] = *p
	return nil
}

func (s *Store) GetSettings(_ context.Context, keys []string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]string{}
	for _, k := range keys {
		if v, ok := s.data.settings[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (s *Store) UpsertSettings(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		s.data.settings[k] = v
	}
	return nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (s *Store) GetWorkingHours(_ context.Context, weekday int) (*models.WorkingHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wh, ok := s.data.hours[weekday]
	if !ok {
		return nil, nil
	}
	return &wh, nil
}

func (s *Store) ListWorkingHours(_ context.Context) ([]models.WorkingHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.WorkingHours{}
	for d := 0; d <= 6; d++ {
		if wh, ok := s.data.hours[d]; ok {
			out = append(out, wh)
		}
	}
	return out, nil
}

func (s *Store) UpsertWorkingHours(_ context.Context, wh *models.WorkingHours) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.data.hours[wh.Weekday]; ok {
		wh.ID = existing.ID
		wh.CreatedAt = existing.CreatedAt
	} else {
		wh.ID = s.id()
		wh.CreatedAt = time.Now()
	}
	wh.UpdatedAt = time.Now()
	s.data.hours[wh.Weekday] = *wh
	return nil
}

func (s *Store) IsDateBlocked(_ context.Context, day string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, bd := range s.data.blocked {
		if bd.Day == day {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListBlockedDates(_ context.Context) ([]models.BlockedDate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.BlockedDate{}
	for _, bd := range s.data.blocked {
		out = append(out, bd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (s *Store) CreateBlockedDate(_ context.Context, bd *models.BlockedDate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.data.blocked {
		if other.Day == bd.Day {
			return httperr.ErrConflict("date_already_blocked")
		}
	}
	bd.ID = s.id()
	bd.CreatedAt = time.Now()
	s.data.blocked[bd.ID] = *bd
	return nil
}

func (s *Store) DeleteBlockedDate(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.blocked[id]; !ok {
		return httperr.ErrNotFound("blocked_date_not_found")
	}
	delete(s.data.blocked, id)
	return nil
}

// --------------------------------------------------
// Loyalty
// --------------------------------------------------

func (s *Store) AddPoints(_ context.Context, userID uint, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.data.users[userID]
	if !ok {
		return 0, httperr.ErrNotFound("user_not_found")
	}
	if u.LoyaltyPoints+delta < 0 {
		return u.LoyaltyPoints, httperr.ErrValidation("negative_points")
	}
	u.LoyaltyPoints += delta
	s.data.users[userID] = u
	return u.LoyaltyPoints, nil
}

func (s *Store) GetPoints(_ context.Context, userID uint) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.data.users[userID]
	if !ok {
		return 0, httperr.ErrNotFound("user_not_found")
	}
	return u.LoyaltyPoints, nil
}

func (s *Store) ListClients(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.User{}
	for _, u := range s.data.users {
		if u.Role == string(auth.RoleClient) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var (
	_ appointment.Repository = (*Store)(nil)
	_ schedule.Repository    = (*Store)(nil)
	_ payment.Repository     = (*Store)(nil)
	_ loyalty.Repository     = (*Store)(nil)
	_ catalog.Repository     = (*Store)(nil)
)
