// Package main provides the Launchpad API server implementation.
package main

import (
	"log/slog"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/launchpadhq/launchpad/pkg/aicopy"
	"github.com/launchpadhq/launchpad/pkg/catalog"
	"github.com/launchpadhq/launchpad/pkg/persistence"
	"github.com/launchpadhq/launchpad/pkg/registry"
	"github.com/launchpadhq/launchpad/pkg/services"
	"github.com/launchpadhq/launchpad/pkg/web"
)

type API struct {
	logger      *slog.Logger
	persistence persistence.Persistence
	registry    *registry.Registry
	catalog     *catalog.Catalog
	aiClient    *aicopy.Client
	validate    *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	persistence persistence.Persistence,
	aiClient *aicopy.Client,
) *API {
	return &API{
		logger:      logger,
		persistence: persistence,
		registry:    registry.NewRegistry(logger),
		catalog:     catalog.NewCatalog(),
		aiClient:    aiClient,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	graphService := services.NewGraph(a.persistence, a.registry, a.catalog, a.aiClient)
	leadFormService := services.NewLeadForm(a.persistence, a.aiClient)

	handlers := web.NewAPIHandlers(graphService, leadFormService, a.validate, a.registry)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("Launchpad API")
	})

	app.Get("/node-kinds", handlers.GetNodeKinds)
	app.Get("/templates", handlers.GetTemplates)

	g := app.Group("/graphs")
	g.Get("/", handlers.GetGraphs)
	g.Post("/", handlers.CreateGraph)
	g.Get("/:id", handlers.GetGraph)
	g.Patch("/:id", handlers.UpdateGraph)
	g.Delete("/:id", handlers.DeleteGraph)
	g.Get("/:id/validate", handlers.ValidateGraph)
	g.Post("/:id/templates/:templateId", handlers.ApplyTemplate)

	// Node endpoints:
	g.Post("/:id/nodes", handlers.CreateNode)
	g.Patch("/:id/nodes/:nodeId", handlers.UpdateNode)
	g.Delete("/:id/nodes/:nodeId", handlers.DeleteNode)
	g.Post("/:id/nodes/:nodeId/duplicate", handlers.DuplicateNode)
	g.Post("/:id/nodes/:nodeId/generate-copy", handlers.GenerateCopy)

	// Edge endpoints:
	g.Post("/:id/edges", handlers.CreateEdge)
	g.Delete("/:id/edges/:edgeId", handlers.DeleteEdge)

	f := app.Group("/lead-forms")
	f.Get("/", handlers.GetLeadForms)
	f.Post("/", handlers.CreateLeadForm)
	f.Get("/:id", handlers.GetLeadForm)
	f.Delete("/:id", handlers.DeleteLeadForm)
	f.Post("/:id/generate", handlers.GenerateQuestions)

	// Question endpoints:
	f.Post("/:id/questions", handlers.CreateQuestion)
	f.Patch("/:id/questions/:questionId", handlers.UpdateQuestion)
	f.Delete("/:id/questions/:questionId", handlers.DeleteQuestion)
	f.Put("/:id/questions/:questionId/options", handlers.SetQuestionOptions)
	f.Put("/:id/questions/:questionId/conditional", handlers.SetQuestionConditional)
	f.Delete("/:id/questions/:questionId/conditional", handlers.ClearQuestionConditional)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}
