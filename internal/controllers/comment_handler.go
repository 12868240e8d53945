package controllers

import (
	"github.com/gofiber/fiber/v2"

	"jstream-server/dto"
)

// GET /playlists/:playlistId/comments

// @Summary      List comments of a playlist
// @Tags         comments
// @Produce      json
// @Param        playlistId  path      string  true  "Playlist ID (hex ObjectID)"
// @Success      200         {array}   models.Comment
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /playlists/{playlistId}/comments [get]
func (h *PlaylistHandler) ListComments(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	comments, err := h.Svc.Comments(ctx, c.Params("playlistId"))
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

// POST /playlists/:playlistId/comments

// @Summary      Add a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        playlistId  path      string                true  "Playlist ID (hex ObjectID)"
// @Param        body        body      dto.CreateCommentReq  true  "Comment content and optional username"
// @Success      200         {object}  dto.CreateCommentResp
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      404         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /playlists/{playlistId}/comments [post]
func (h *PlaylistHandler) AddComment(c *fiber.Ctx) error {
	var body dto.CreateCommentReq
	if err := parseBody(c, &body); err != nil {
		return err
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	resp, err := h.Svc.AddComment(ctx, c.Params("playlistId"), body)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
