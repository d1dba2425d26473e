package main

import (
	"context"
	"flag"
	"log"
	_ "time/tzdata"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var defaultServices = []models.Service{
	{Name: "Haircut", Description: "Classic cut", DurationMin: 30, Price: decimal.RequireFromString("150.00")},
	{Name: "Beard trim", Description: "Shape and line-up", DurationMin: 20, Price: decimal.RequireFromString("80.00")},
	{Name: "Haircut + beard", Description: "Full service", DurationMin: 60, Price: decimal.RequireFromString("210.00")},
	{Name: "Kids cut", Description: "Under 12", DurationMin: 30, Price: decimal.RequireFromString("100.00")},
	{Name: "Hot towel shave", Description: "Straight razor", DurationMin: 45, Price: decimal.RequireFromString("120.00")},
}

func main() {
	clients := flag.Int("clients", 10, "number of demo clients to create")
	adminEmail := flag.String("admin-email", "admin@barber.local", "email of the staff account")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := dbpkg.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("database", zap.Error(err))
	}

	ctx := context.Background()
	tx := infraRepo.NewTxRunner(db, cfg.TxMaxRetries, zl)
	services := infraRepo.NewServiceGormRepository(tx)
	schedule := infraRepo.NewScheduleGormRepository(tx)
	payments := infraRepo.NewPaymentGormRepository(tx)

	// --------------------------------------------------
	// Services (skipped when the name already exists)
	// --------------------------------------------------
	existing, err := services.ListServices(ctx, false)
	if err != nil {
		zl.Fatal("list services", zap.Error(err))
	}
	have := map[string]bool{}
	for _, s := range existing {
		have[s.Name] = true
	}
	for _, s := range defaultServices {
		if have[s.Name] {
			continue
		}
		s.Active = true
		if err := services.CreateService(ctx, &s); err != nil {
			zl.Fatal("create service", zap.String("name", s.Name), zap.Error(err))
		}
	}

	// --------------------------------------------------
	// Working hours: Mon-Sat 09:00-18:00, Sunday closed
	// --------------------------------------------------
	err = schedule.WithinTx(ctx, func(ctx context.Context) error {
		for wd := 0; wd <= 6; wd++ {
			wh := &models.WorkingHours{Weekday: wd}
			if wd != 0 {
				wh.IsOpen = true
				wh.OpenTime = "09:00"
				wh.CloseTime = "18:00"
				wh.LunchStart = "13:00"
				wh.LunchEnd = "14:00"
			}
			if err := schedule.UpsertWorkingHours(ctx, wh); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zl.Fatal("working hours", zap.Error(err))
	}

	// --------------------------------------------------
	// Users
	// --------------------------------------------------
	users := []models.User{{
		Name:  "Shop Admin",
		Email: *adminEmail,
		Role:  string(auth.RoleAdmin),
	}}
	for i := 0; i < *clients; i++ {
		users = append(users, models.User{
			Name:  gofakeit.Name(),
			Email: gofakeit.Email(),
			Phone: gofakeit.Phone(),
			Role:  string(auth.RoleClient),
		})
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&users).Error; err != nil {
		zl.Fatal("users", zap.Error(err))
	}

	// --------------------------------------------------
	// Bank transfer instructions
	// --------------------------------------------------
	if err := payments.UpsertSettings(ctx, map[string]string{
		"bank_name":           "Demo Bank",
		"bank_account_name":   "Barber Shop N.V.",
		"bank_account_number": "0000000000",
		"bank_instructions":   "Use the payment reference as the transfer description.",
	}); err != nil {
		zl.Fatal("bank settings", zap.Error(err))
	}

	zl.Info("seed complete",
		zap.Int("services", len(defaultServices)),
		zap.Int("clients", *clients),
		zap.String("admin", *adminEmail),
	)
}
