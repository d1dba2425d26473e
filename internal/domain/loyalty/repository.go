package loyalty

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// AddPoints applies delta atomically. It fails with a validation error
	// when the balance would drop below zero and returns the new balance.
	AddPoints(ctx context.Context, userID uint, delta int) (int, error)
	GetPoints(ctx context.Context, userID uint) (int, error)
	ListClients(ctx context.Context) ([]models.User, error)
}
