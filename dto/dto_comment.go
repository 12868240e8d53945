package dto

import "jstream-server/internal/models"

type CreateCommentReq struct {
	Content  string  `json:"content"`
	Username *string `json:"username,omitempty"`
}

type CreateCommentResp struct {
	Message string         `json:"message"`
	Comment models.Comment `json:"comment"`
}
