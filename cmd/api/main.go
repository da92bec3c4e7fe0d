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
	"github.com/serviagenda/agenda-api/internal/application/auth"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/infrastructure/cache"
	"github.com/serviagenda/agenda-api/internal/infrastructure/postgres"
	httpRouter "github.com/serviagenda/agenda-api/internal/interfaces/http"
	"github.com/serviagenda/agenda-api/pkg/config"
	"github.com/serviagenda/agenda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Redis opcional: sin REDIS_ADDR el cache y el rate limit degradan a no-op
	rdb := cache.NewClient(ctx, cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("cache Redis habilitado")
	}
	store := cache.NewStore(rdb, cfg.Cache.TTL)

	userRepo := postgres.NewUserRepository(pool)
	sedeRepo := postgres.NewSedeRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)
	serviceEntryRepo := postgres.NewServiceEntryRepository(pool)
	quoteEntryRepo := postgres.NewQuoteEntryRepository(pool)
	pendingItemRepo := postgres.NewPendingItemRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	quoteAssignmentRepo := postgres.NewQuoteAssignmentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.Expiration,
		Issuer:   cfg.JWT.Issuer,
	})
	sedeUC := usecase.NewSedeUseCase(sedeRepo)
	resourceUC := usecase.NewResourceUseCase(resourceRepo, txRunner)
	serviceEntryUC := usecase.NewServiceEntryUseCase(serviceEntryRepo)
	quoteEntryUC := usecase.NewQuoteEntryUseCase(quoteEntryRepo)
	pendingItemUC := usecase.NewPendingItemUseCase(pendingItemRepo)
	assignmentUC := usecase.NewAssignmentUseCase(assignmentRepo)
	quoteAssignmentUC := usecase.NewQuoteAssignmentUseCase(quoteAssignmentRepo)
	calendarUC := usecase.NewCalendarUseCase(
		serviceEntryRepo, quoteEntryRepo, resourceRepo,
		assignmentRepo, quoteAssignmentRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Agenda API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:            authUC,
		SedeUC:            sedeUC,
		ResourceUC:        resourceUC,
		ServiceEntryUC:    serviceEntryUC,
		QuoteEntryUC:      quoteEntryUC,
		PendingItemUC:     pendingItemUC,
		AssignmentUC:      assignmentUC,
		QuoteAssignmentUC: quoteAssignmentUC,
		CalendarUC:        calendarUC,
		Cache:             store,
		Redis:             rdb,
		JWTSecret:         cfg.JWT.Secret,
		ServiceName:       cfg.App.Name,
		LoginRate:         cfg.Login,
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

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
