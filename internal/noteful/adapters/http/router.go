// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"noteful/internal/noteful/adapters/http/handlers"
	"noteful/internal/noteful/adapters/http/middleware"
	"noteful/internal/noteful/app/dto"
	"noteful/internal/noteful/config"
	"noteful/internal/noteful/ports/api"
)

// Services - прикладные сервисы, которые обслуживает HTTP сервер.
type Services struct {
	Notes   api.NoteService
	Folders api.FolderService
	Tags    api.TagService
	Health  api.HealthChecker
}

// NewApp создает fiber.App с таймаутами из конфигурации и настроенными маршрутами.
func NewApp(cfg *config.HTTPConfig, services Services) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	SetupRouter(app, services)
	return app
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, services Services) {
	notesHandler := handlers.NewNoteHandler(services.Notes)
	foldersHandler := handlers.NewFolderHandler(services.Folders)
	tagsHandler := handlers.NewTagHandler(services.Tags)
	healthHandler := handlers.NewHealthHandler(services.Health)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/healthz", healthHandler.Check)

	apiGroup := app.Group("/api")

	notesRoutes := apiGroup.Group("/notes")
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/:id", notesHandler.GetNote)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Put("/:id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:id", notesHandler.DeleteNote)

	foldersRoutes := apiGroup.Group("/folders")
	foldersRoutes.Get("/", foldersHandler.ListFolders)
	foldersRoutes.Get("/:id", foldersHandler.GetFolder)
	foldersRoutes.Post("/", foldersHandler.CreateFolder)
	foldersRoutes.Put("/:id", foldersHandler.UpdateFolder)
	foldersRoutes.Delete("/:id", foldersHandler.DeleteFolder)

	tagsRoutes := apiGroup.Group("/tags")
	tagsRoutes.Get("/", tagsHandler.ListTags)
	tagsRoutes.Get("/:id", tagsHandler.GetTag)
	tagsRoutes.Post("/", tagsHandler.CreateTag)
	tagsRoutes.Put("/:id", tagsHandler.UpdateTag)
	tagsRoutes.Delete("/:id", tagsHandler.DeleteTag)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Status:  fiber.StatusNotFound,
			Message: handlers.MsgNotFound,
		})
	})
}
