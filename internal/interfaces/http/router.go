package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/chaintrace-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	EventUC     *usecase.EventUseCase
	PartnerUC   *usecase.PartnerUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	ReportUC    *usecase.ReportUseCase
	JWTSecret   string
	JWTIssuer   string
	JWTExpMin   int
	// DevAuth monta el emisor de tokens de desarrollo. Nunca en producción.
	DevAuth bool
}

// Router registra las rutas de la API. Las lecturas de trazabilidad son
// públicas; toda escritura exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth de desarrollo (público, sólo si DevAuth)
	if deps.DevAuth {
		authHandler := NewAuthHandler(deps.JWTSecret, deps.JWTIssuer, deps.JWTExpMin)
		api.Post("/auth/dev-token", authHandler.DevToken)
	}

	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC)
	eventHandler := NewEventHandler(deps.EventUC)
	partnerHandler := NewPartnerHandler(deps.PartnerUC)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	userHandler := NewUserHandler(deps.UserUC)

	// Lecturas públicas: cualquiera puede consultar la trazabilidad
	api.Get("/products", productHandler.Search)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/products/:id/events", eventHandler.ListByProduct)
	api.Get("/products/:id/report", productHandler.Report)
	api.Get("/partners", partnerHandler.List)
	api.Get("/analytics", analyticsHandler.Analytics)
	api.Get("/status", analyticsHandler.Status)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/users", userHandler.Register)
	protected.Get("/users/me", userHandler.Me)
	protected.Put("/users/:id/verification", userHandler.UpdateVerification)
	protected.Post("/products", productHandler.Register)
	protected.Post("/events", eventHandler.Add)
	protected.Post("/partners", partnerHandler.Register)
}
