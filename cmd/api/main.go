package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/donaciones-api/internal/application/alerts"
	"github.com/jhoicas/donaciones-api/internal/application/inventory"
	"github.com/jhoicas/donaciones-api/internal/application/usecase"
	"github.com/jhoicas/donaciones-api/internal/domain/quantity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
	"github.com/jhoicas/donaciones-api/internal/infrastructure/memory"
	"github.com/jhoicas/donaciones-api/internal/infrastructure/postgres"
	"github.com/jhoicas/donaciones-api/internal/infrastructure/scheduler"
	httpRouter "github.com/jhoicas/donaciones-api/internal/interfaces/http"
	"github.com/jhoicas/donaciones-api/pkg/config"
	"github.com/jhoicas/donaciones-api/pkg/logger"
)

// storage repositorios y transacciones del driver configurado.
type storage struct {
	txRunner      inventory.TxRunner
	products      repository.ProductRepository
	movements     repository.StockMovementRepository
	notifications repository.NotificationRepository
	close         func()
}

func openStorage(ctx context.Context, cfg config.DBConfig, log zerolog.Logger) (*storage, error) {
	if cfg.Driver == config.DriverMemory {
		store := memory.NewStore()
		return &storage{
			txRunner:      memory.NewTxRunner(store),
			products:      store.Products(),
			movements:     store.Movements(),
			notifications: store.Notifications(),
			close:         func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	return &storage{
		txRunner:      postgres.NewTxRunner(pool).WithLockTimeout(cfg.LockTimeout),
		products:      postgres.NewProductRepository(pool),
		movements:     postgres.NewStockMovementRepository(pool),
		notifications: postgres.NewNotificationRepository(pool),
		close:         pool.Close,
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	st, err := openStorage(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer st.close()

	registerMovementUC := inventory.NewRegisterMovementUseCase(st.txRunner, log.Component("inventory"))
	totalsUC := inventory.NewTotalsUseCase(st.products, quantity.NewFormatter(cfg.App.Locale))
	productUC := usecase.NewProductUseCase(st.txRunner, st.products, st.movements)
	alertUC := alerts.NewAlertUseCase(st.notifications, st.products, log.Component("alerts"), cfg.Alerts.ExpiringDays)

	loc, err := cfg.Alerts.TimeLocation()
	if err != nil {
		log.Fatal().Err(err).Str("location", cfg.Alerts.Location).Msg("zona horaria de alertas")
	}
	expiry := scheduler.NewExpiryScheduler(scheduler.Config{
		Spec:       cfg.Alerts.Schedule,
		RunOnStart: cfg.Alerts.RunOnStart,
		Location:   loc,
		Timeout:    5 * time.Minute,
	}, alertUC, log.Component("scheduler"))
	if err := expiry.Start(ctx); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.Alerts.Schedule).Msg("programar revisión de vencimientos")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en http://localhost:<port>/docs, solo si el json fue generado.
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Donaciones API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger no disponible")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		Totals:           totalsUC,
		AlertUC:          alertUC,
		Auth:             httpRouter.AuthConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer},
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := expiry.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("detener revisión de vencimientos")
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
