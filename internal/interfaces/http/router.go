package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/serviagenda/agenda-api/internal/application/auth"
	"github.com/serviagenda/agenda-api/internal/application/usecase"
	"github.com/serviagenda/agenda-api/internal/infrastructure/cache"
	"github.com/serviagenda/agenda-api/pkg/config"
)

// Etiquetas de cache por recurso. Las mutaciones invalidan su etiqueta y
// las de los recursos que denormalizan sus datos.
const (
	tagSedes            = "sedes"
	tagResources        = "resources"
	tagServiceEntries   = "service-entries"
	tagQuoteEntries     = "quote-entries"
	tagPendingItems     = "pending-items"
	tagAssignments      = "assignments"
	tagQuoteAssignments = "quote-assignments"
	tagCalendar         = "calendar"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC            *auth.AuthUseCase
	SedeUC            *usecase.SedeUseCase
	ResourceUC        *usecase.ResourceUseCase
	ServiceEntryUC    *usecase.ServiceEntryUseCase
	QuoteEntryUC      *usecase.QuoteEntryUseCase
	PendingItemUC     *usecase.PendingItemUseCase
	AssignmentUC      *usecase.AssignmentUseCase
	QuoteAssignmentUC *usecase.QuoteAssignmentUseCase
	CalendarUC        *usecase.CalendarUseCase
	Cache             *cache.Store
	Redis             *redis.Client
	JWTSecret         string
	ServiceName       string
	LoginRate         config.LoginRateConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Auth (público; login con rate limit por IP)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", LoginRateLimit(deps.Redis, deps.LoginRate), authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	inv := func(h fiber.Handler, tags ...string) fiber.Handler {
		return invalidating(deps.Cache, h, tags...)
	}

	// Sedes
	sedes := protected.Group("/sedes", CacheMiddleware(deps.Cache, tagSedes))
	sedeHandler := NewSedeHandler(deps.SedeUC)
	sedes.Get("/", sedeHandler.List)
	sedes.Get("/:id", sedeHandler.GetByID)
	sedes.Post("/", inv(sedeHandler.Create, tagSedes))
	sedes.Put("/:id", inv(sedeHandler.Update, tagSedes, tagServiceEntries, tagCalendar))
	sedes.Delete("/:id", inv(sedeHandler.Delete, tagSedes, tagServiceEntries, tagCalendar))

	// Resources
	resources := protected.Group("/resources", CacheMiddleware(deps.Cache, tagResources))
	resourceHandler := NewResourceHandler(deps.ResourceUC)
	resources.Get("/", resourceHandler.List)
	resources.Get("/:id", resourceHandler.GetByID)
	resources.Post("/", inv(resourceHandler.Create, tagResources, tagCalendar))
	resources.Put("/:id", inv(resourceHandler.Update, tagResources, tagCalendar))
	resources.Delete("/:id", inv(resourceHandler.Delete, tagResources, tagAssignments, tagCalendar))

	// Service entries
	entries := protected.Group("/service-entries", CacheMiddleware(deps.Cache, tagServiceEntries))
	entryHandler := NewServiceEntryHandler(deps.ServiceEntryUC)
	entries.Get("/", entryHandler.List)
	entries.Get("/:id", entryHandler.GetByID)
	entries.Post("/", inv(entryHandler.Create, tagServiceEntries, tagCalendar))
	entries.Put("/:id", inv(entryHandler.Update, tagServiceEntries, tagCalendar))
	entries.Post("/:id/close", inv(entryHandler.Close, tagServiceEntries, tagCalendar))
	entries.Post("/:id/reopen", inv(entryHandler.Reopen, tagServiceEntries, tagCalendar))
	entries.Delete("/:id", inv(entryHandler.Delete, tagServiceEntries, tagAssignments, tagCalendar))

	// Quote entries
	quotes := protected.Group("/quote-entries", CacheMiddleware(deps.Cache, tagQuoteEntries))
	quoteHandler := NewQuoteEntryHandler(deps.QuoteEntryUC)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Post("/", inv(quoteHandler.Create, tagQuoteEntries, tagCalendar))
	quotes.Put("/:id", inv(quoteHandler.Update, tagQuoteEntries, tagCalendar))
	quotes.Post("/:id/close", inv(quoteHandler.Close, tagQuoteEntries, tagCalendar))
	quotes.Post("/:id/reopen", inv(quoteHandler.Reopen, tagQuoteEntries, tagCalendar))
	quotes.Delete("/:id", inv(quoteHandler.Delete, tagQuoteEntries, tagQuoteAssignments, tagCalendar))

	// Pending items
	pending := protected.Group("/pending-items", CacheMiddleware(deps.Cache, tagPendingItems))
	pendingHandler := NewPendingItemHandler(deps.PendingItemUC)
	pending.Get("/", pendingHandler.List)
	pending.Get("/:id", pendingHandler.GetByID)
	pending.Post("/", inv(pendingHandler.Create, tagPendingItems))
	pending.Put("/:id", inv(pendingHandler.Update, tagPendingItems))
	pending.Delete("/:id", inv(pendingHandler.Delete, tagPendingItems))

	// Assignments
	assignments := protected.Group("/assignments", CacheMiddleware(deps.Cache, tagAssignments))
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Get("/", assignmentHandler.List)
	assignments.Post("/", inv(assignmentHandler.Create, tagAssignments, tagCalendar))
	assignments.Delete("/:id", inv(assignmentHandler.Delete, tagAssignments, tagCalendar))

	// Quote assignments
	quoteAssignments := protected.Group("/quote-assignments", CacheMiddleware(deps.Cache, tagQuoteAssignments))
	quoteAssignmentHandler := NewQuoteAssignmentHandler(deps.QuoteAssignmentUC)
	quoteAssignments.Get("/", quoteAssignmentHandler.List)
	quoteAssignments.Post("/", inv(quoteAssignmentHandler.Upsert, tagQuoteAssignments, tagCalendar))
	quoteAssignments.Put("/:id", inv(quoteAssignmentHandler.UpdateStatus, tagQuoteAssignments, tagCalendar))
	quoteAssignments.Delete("/:id", inv(quoteAssignmentHandler.Delete, tagQuoteAssignments, tagCalendar))

	// Calendar boards (solo lectura)
	board := protected.Group("/calendar", CacheMiddleware(deps.Cache, tagCalendar))
	calendarHandler := NewCalendarHandler(deps.CalendarUC)
	board.Get("/services", calendarHandler.ServiceBoard)
	board.Get("/quotes", calendarHandler.QuoteBoard)
}

// invalidating invalida las etiquetas de cache cuando la mutación respondió 2xx.
func invalidating(store *cache.Store, h fiber.Handler, tags ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := h(c); err != nil {
			return err
		}
		if sc := c.Response().StatusCode(); sc >= 200 && sc < 300 {
			store.Invalidate(c.Context(), tags...)
		}
		return nil
	}
}
