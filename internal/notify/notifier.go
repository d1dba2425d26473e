package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const (
	KindBooked      = "booked"
	KindRescheduled = "rescheduled"
	KindConfirmed   = "confirmed"
	KindCancelled   = "cancelled"
	KindCompleted   = "completed"
)

// Notifier tells the client about changes to their appointment. It runs
// after commit and must never fail the operation.
type Notifier interface {
	Notify(ctx context.Context, kind string, ap *models.Appointment)
}

// LogNotifier only writes a structured log line. Delivery channels (email,
// SMS) plug in behind the same interface.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, kind string, ap *models.Appointment) {
	n.log.Info("appointment notification",
		zap.String("kind", kind),
		zap.Uint("appointment_id", ap.ID),
		zap.Uint("user_id", ap.UserID),
		zap.Time("date", ap.Date),
		zap.String("status", ap.Status),
	)
}

type Nop struct{}

func (Nop) Notify(context.Context, string, *models.Appointment) {}
