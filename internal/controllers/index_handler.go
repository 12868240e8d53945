package controllers

import (
	"github.com/gofiber/fiber/v2"

	"jstream-server/dto"
)

var endpoints = map[string]string{
	"/playlists":                        "Get all playlists (GET), Create a playlist (POST)",
	"/playlists/<playlist_id>":          "Get playlist details (GET), Delete a playlist (DELETE)",
	"/playlists/<playlist_id>/songs":    "Get songs from a playlist (GET)",
	"/playlists/<playlist_id>/comments": "Get comments (GET), Add comment (POST)",
	"/playlists/<playlist_id>/like":     "Like a playlist (POST)",
	"/docs/index.html":                  "API documentation (GET)",
}

// Index godoc
// @Summary      API index
// @Tags         meta
// @Produce      json
// @Success      200  {object}  dto.IndexResp
// @Router       / [get]
func Index(c *fiber.Ctx) error {
	return c.JSON(dto.IndexResp{
		Message:   "Welcome to JStream API!",
		Endpoints: endpoints,
	})
}
