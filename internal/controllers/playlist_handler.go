package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"jstream-server/dto"
	"jstream-server/internal/apperr"
	"jstream-server/internal/services"
)

const MsgInvalidBody = "Invalid request body"

type PlaylistHandler struct {
	Svc     *services.PlaylistService
	Timeout time.Duration
}

func NewPlaylistHandler(svc *services.PlaylistService, timeout time.Duration) *PlaylistHandler {
	return &PlaylistHandler{Svc: svc, Timeout: timeout}
}

// parseBody treats an empty body as an empty object.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperr.Validation(MsgInvalidBody)
	}
	return nil
}

// GET /playlists

// @Summary      List playlists
// @Description  All playlists, newest first, with song and comment counts
// @Tags         playlists
// @Produce      json
// @Success      200  {array}   dto.PlaylistSummary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /playlists [get]
func (h *PlaylistHandler) List(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	items, err := h.Svc.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// POST /playlists

// @Summary      Create a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreatePlaylistReq  true  "Playlist name and optional creator"
// @Success      200   {object}  dto.CreatePlaylistResp
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /playlists [post]
func (h *PlaylistHandler) Create(c *fiber.Ctx) error {
	var body dto.CreatePlaylistReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	resp, err := h.Svc.Create(ctx, body)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GET /playlists/:playlistId

// @Summary      Get a playlist
// @Tags         playlists
// @Produce      json
// @Param        playlistId  path      string  true  "Playlist ID (hex ObjectID)"
// @Success      200         {object}  dto.PlaylistResp
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /playlists/{playlistId} [get]
func (h *PlaylistHandler) Get(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	p, err := h.Svc.Get(ctx, c.Params("playlistId"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

// DELETE /playlists/:playlistId

// @Summary      Delete a playlist
// @Tags         playlists
// @Produce      json
// @Param        playlistId  path      string  true  "Playlist ID (hex ObjectID)"
// @Success      200         {object}  dto.MessageResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /playlists/{playlistId} [delete]
func (h *PlaylistHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	resp, err := h.Svc.Delete(ctx, c.Params("playlistId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GET /playlists/:playlistId/songs

// @Summary      List songs of a playlist
// @Tags         playlists
// @Produce      json
// @Param        playlistId  path      string  true  "Playlist ID (hex ObjectID)"
// @Success      200         {array}   models.Song
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /playlists/{playlistId}/songs [get]
func (h *PlaylistHandler) Songs(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	songs, err := h.Svc.Songs(ctx, c.Params("playlistId"))
	if err != nil {
		return err
	}
	return c.JSON(songs)
}

// POST /playlists/:playlistId/like

// @Summary      Like a playlist
// @Description  Adds one like and returns the new total
// @Tags         likes
// @Produce      json
// @Param        playlistId  path      string  true  "Playlist ID (hex ObjectID)"
// @Success      200         {object}  dto.LikeResp
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /playlists/{playlistId}/like [post]
func (h *PlaylistHandler) Like(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	resp, err := h.Svc.Like(ctx, c.Params("playlistId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
