package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/clock"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/domain/loyalty"
	"github.com/BruksfildServices01/barber-booking/internal/domain/payment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/events"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucLoyalty "github.com/BruksfildServices01/barber-booking/internal/usecase/loyalty"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
	ucService "github.com/BruksfildServices01/barber-booking/internal/usecase/service"
)

// App is everything the HTTP layer is built from. Optional fields may be
// nil: Locker (no distributed lock), Proofs (proof uploads disabled),
// Metrics and MetricsHandler (no /metrics).
type App struct {
	Config *config.Config
	Log    *zap.Logger
	Clock  clock.Clock

	Appointments appointment.Repository
	Payments     payment.Repository
	Schedule     schedule.Repository
	Catalog      catalog.Repository
	Loyalty      loyalty.Repository
	AuditLogs    handlers.AuditLister

	Audit          *audit.Dispatcher
	Locker         lock.Locker
	Proofs         ucPayment.ProofPresigner
	Notifier       notify.Notifier
	Metrics        *metrics.BookingMetrics
	MetricsHandler http.Handler
}

func RegisterRoutes(r *gin.Engine, app App) {
	cfg := app.Config
	log := app.Log
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.CORSMiddleware(),
		middleware.AccessLog(log),
		middleware.Metrics(app.Metrics),
	)

	// ======================================================
	// EVENTS
	// ======================================================
	bus := events.NewBus()
	ucPayment.NewInitializer(app.Payments, app.Clock).Register(bus)
	ucLoyalty.NewAwarder(app.Loyalty, cfg.LoyaltyPointsPerVisit, log).Register(bus)

	// ======================================================
	// USE CASES
	// ======================================================
	appointmentDeps := ucAppointment.Deps{
		Repo:           app.Appointments,
		Schedule:       app.Schedule,
		Bus:            bus,
		Locker:         app.Locker,
		Clock:          app.Clock,
		Audit:          app.Audit,
		Notifier:       app.Notifier,
		Metrics:        app.Metrics,
		Log:            log,
		Location:       loc,
		GranularityMin: cfg.SlotGranularityMinutes,
	}

	catalogUC := ucService.NewCatalog(app.Catalog, app.Clock, app.Audit)
	scheduleUC := ucSchedule.NewService(app.Schedule, app.Audit, loc)
	loyaltyUC := ucLoyalty.NewService(app.Loyalty, app.Audit)
	bankUC := ucPayment.NewBankSettings(app.Payments, app.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		catalogUC,
		ucAppointment.NewGetAvailability(appointmentDeps),
		bankUC,
		loc,
		log,
	)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentDeps, loc, log)
	paymentHandler := handlers.NewPaymentHandler(
		ucPayment.NewGetPayment(app.Payments),
		ucPayment.NewUpdatePayment(app.Payments, app.Clock, app.Audit, app.Metrics),
		ucPayment.NewRequestProofUpload(app.Payments, app.Proofs, app.Clock),
		log,
	)
	meHandler := handlers.NewMeHandler(loyaltyUC, log)
	clientHandler := handlers.NewClientHandler(loyaltyUC, log)
	serviceHandler := handlers.NewServiceHandler(catalogUC, log)
	workingHoursHandler := handlers.NewWorkingHoursHandler(scheduleUC, log)
	settingsHandler := handlers.NewSettingsHandler(bankUC, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(app.AuditLogs, loc, log)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if app.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(app.MetricsHandler))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/availability", publicHandler.Availability)
		api.GET("/settings/bank", publicHandler.BankSettings)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListMine)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Cancel)

			secured.GET("/payments/:id", paymentHandler.Get)
			secured.PATCH("/payments/:id", paymentHandler.Update)
			secured.POST("/payments/:id/proof-upload", paymentHandler.ProofUpload)

			secured.GET("/me/loyalty", meHandler.GetLoyalty)
		}

		// ------------------------------
		// STAFF
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireStaff())
		{
			admin.GET("/appointments", appointmentHandler.ListByDate)
			admin.GET("/appointments/month", appointmentHandler.ListByMonth)
			admin.PATCH("/appointments/:id", appointmentHandler.Update)
			admin.DELETE("/appointments/:id", appointmentHandler.Delete)

			admin.GET("/working-hours", workingHoursHandler.Get)
			admin.PUT("/working-hours", workingHoursHandler.Update)

			admin.GET("/blocked-dates", workingHoursHandler.ListBlocked)
			admin.POST("/blocked-dates", workingHoursHandler.Block)
			admin.DELETE("/blocked-dates/:id", workingHoursHandler.Unblock)

			admin.GET("/services", serviceHandler.List)
			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)

			admin.GET("/clients", clientHandler.List)
			admin.GET("/clients/:id/loyalty", clientHandler.Loyalty)
			admin.PATCH("/clients/:id/loyalty", clientHandler.AdjustLoyalty)

			admin.PUT("/settings/bank", settingsHandler.UpdateBank)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
