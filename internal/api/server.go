// Package api exposes the Runway resource gateway over HTTP. Each route
// maps a verb and path onto one key-value operation: list-by-prefix,
// create-with-generated-id, update-by-id, or delete-by-id.
package api

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/runwayhq/backend/internal/logging"
	"github.com/runwayhq/backend/internal/storage"
)

// PathPrefix is the route prefix the dashboard clients are built
// against.
const PathPrefix = "/make-server-97648284"

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
}

// Server exposes the Fiber application. It is stateless: every request
// is independent and concurrency safety is delegated to the store's
// single-key atomicity.
type Server struct {
	app *fiber.App
	cfg Config

	colleagues  *storage.ColleagueRepo
	activities  *storage.ActivityRepo
	assets      *storage.AssetRepo
	liabilities *storage.LiabilityRepo
	finance     *storage.FinanceRepo
	projects    *storage.ProjectRepo
	customers   *storage.CustomerRepo
	investors   *storage.InvestorRepo
}

// NewServer wires repositories, handlers, and middleware around the
// given store.
func NewServer(cfg Config, store storage.Store) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Format: "${time} | ${status} | ${latency} | ${method} ${path}\n"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:  "Content-Type,Authorization",
		ExposeHeaders: "Content-Length",
		MaxAge:        600,
	}))

	srv := &Server{
		app: app,
		cfg: cfg,

		colleagues:  storage.NewColleagueRepo(store),
		activities:  storage.NewActivityRepo(store),
		assets:      storage.NewAssetRepo(store),
		liabilities: storage.NewLiabilityRepo(store),
		finance:     storage.NewFinanceRepo(store),
		projects:    storage.NewProjectRepo(store),
		customers:   storage.NewCustomerRepo(store),
		investors:   storage.NewInvestorRepo(store),
	}
	srv.registerRoutes()
	return srv
}

// App returns the underlying Fiber application, used by tests to drive
// requests without a listener.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	logging.Info("runway backend listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) registerRoutes() {
	api := s.app.Group(PathPrefix)

	api.Get("/health", s.handleHealth)

	api.Get("/colleagues", s.handleListColleagues)
	api.Post("/colleagues", s.handleCreateColleague)

	api.Get("/activities", s.handleListActivities)
	api.Post("/activities", s.handleCreateActivity)
	api.Get("/notifications/:userId", s.handleListNotifications)
	api.Post("/notifications/:userId/mark-seen", s.handleMarkNotificationsSeen)

	api.Get("/cash", s.handleGetCash)
	api.Put("/cash", s.handlePutCash)
	api.Get("/other-expenses", s.handleGetOtherExpenses)
	api.Put("/other-expenses", s.handlePutOtherExpenses)

	api.Get("/assets", s.handleListAssets)
	api.Post("/assets", s.handleCreateAsset)
	api.Put("/assets/:id", s.handleUpdateAsset)
	api.Delete("/assets/:id", s.handleDeleteAsset)

	api.Get("/liabilities", s.handleListLiabilities)
	api.Post("/liabilities", s.handleCreateLiability)
	api.Put("/liabilities/:id", s.handleUpdateLiability)
	api.Delete("/liabilities/:id", s.handleDeleteLiability)

	api.Get("/projects", s.handleListProjects)
	api.Post("/projects", s.handleCreateProject)
	api.Put("/projects/:id", s.handleUpdateProject)
	api.Delete("/projects/:id", s.handleDeleteProject)

	api.Get("/customers", s.handleListCustomers)
	api.Post("/customers", s.handleCreateCustomer)
	api.Put("/customers/:id", s.handleUpdateCustomer)
	api.Delete("/customers/:id", s.handleDeleteCustomer)

	api.Get("/investors", s.handleListInvestors)
	api.Post("/investors", s.handleCreateInvestor)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
