package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/chaintrace-api/internal/application/usecase"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
	"github.com/tu-usuario/chaintrace-api/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/chaintrace-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/chaintrace-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/chaintrace-api/internal/interfaces/http"
	"github.com/tu-usuario/chaintrace-api/pkg/config"
	"github.com/tu-usuario/chaintrace-api/pkg/logger"
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
		Str("store", cfg.Store.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		userRepo    repository.UserRepository
		productRepo repository.ProductRepository
		eventRepo   repository.EventRepository
		partnerRepo repository.PartnerRepository
	)

	switch cfg.Store.Backend {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("preparar esquema")
		}
		userRepo = postgres.NewUserRepository(pool)
		productRepo = postgres.NewProductRepository(pool)
		eventRepo = postgres.NewEventRepository(pool)
		partnerRepo = postgres.NewPartnerRepository(pool)
	default:
		log.Warn().Msg("backend memory: los datos no sobreviven reinicios")
		store := memory.NewStore()
		userRepo = store.Users()
		productRepo = store.Products()
		eventRepo = store.Events()
		partnerRepo = store.Partners()
	}

	// Un solo mutex para todas las operaciones de negocio: cada operación ve el
	// estado resultante de la anterior, sin intercalado entre casos de uso.
	var mu sync.Mutex

	userUC := usecase.NewUserUseCase(&mu, userRepo)
	productUC := usecase.NewProductUseCase(&mu, userRepo, productRepo, eventRepo)
	eventUC := usecase.NewEventUseCase(&mu, userRepo, productRepo, eventRepo)
	partnerUC := usecase.NewPartnerUseCase(&mu, userRepo, partnerRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(&mu, userRepo, productRepo, eventRepo, partnerRepo)
	reportUC := usecase.NewReportUseCase(&mu, productRepo, eventRepo, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ChainTrace API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:      userUC,
		ProductUC:   productUC,
		EventUC:     eventUC,
		PartnerUC:   partnerUC,
		AnalyticsUC: analyticsUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
		JWTIssuer:   cfg.JWT.Issuer,
		JWTExpMin:   cfg.JWT.Expiration,
		DevAuth:     cfg.App.Env == "development",
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
