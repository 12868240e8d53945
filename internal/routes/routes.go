package routes

import (
	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"

	"jstream-server/config"
	_ "jstream-server/docs"
	"jstream-server/internal/controllers"
	"jstream-server/internal/middleware"
	"jstream-server/internal/services"
)

type Deps struct {
	Config    config.Config
	Logger    *log.Logger
	Playlists services.PlaylistStore
	Users     services.UserStore
}

// NewApp wires middleware and every route onto a fresh fiber app.
func NewApp(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "JStream API",
		ErrorHandler:          middleware.ErrorHandler(d.Logger),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(d.Logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Config.AllowOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/", controllers.Index)

	svc := services.NewPlaylistService(d.Playlists, d.Users)
	h := controllers.NewPlaylistHandler(svc, d.Config.RequestTimeout)
	SetupRoutesPlaylist(app, h)

	return app
}

func SetupRoutesPlaylist(app *fiber.App, h *controllers.PlaylistHandler) {
	playlists := app.Group("/playlists")

	playlists.Get("/", h.List)
	playlists.Post("/", h.Create)
	playlists.Get("/:playlistId", h.Get)
	playlists.Delete("/:playlistId", h.Delete)
	playlists.Get("/:playlistId/songs", h.Songs)
	playlists.Post("/:playlistId/like", h.Like)
	playlists.Get("/:playlistId/comments", h.ListComments)
	playlists.Post("/:playlistId/comments", h.AddComment)
}
