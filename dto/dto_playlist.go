package dto

import (
	"time"

	"jstream-server/internal/models"
)

type CreatePlaylistReq struct {
	Name        string  `json:"name"`
	CreatorName *string `json:"creator_name,omitempty"`
	UserID      *string `json:"user_id,omitempty"`
}

type CreatePlaylistResp struct {
	Message    string `json:"message"`
	PlaylistID string `json:"playlist_id"`
}

// PlaylistSummary is one row of GET /playlists.
type PlaylistSummary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	CreatorName  string    `json:"creator_name"`
	SongCount    int       `json:"song_count"`
	Likes        int       `json:"likes"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlaylistResp is the full document with _id exposed as id.
type PlaylistResp struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id,omitempty"`
	Name        string           `json:"name"`
	CreatorName string           `json:"creator_name"`
	Songs       []models.Song    `json:"songs"`
	Comments    []models.Comment `json:"comments"`
	Likes       int              `json:"likes"`
	CreatedAt   time.Time        `json:"created_at"`
}

type LikeResp struct {
	Message string `json:"message"`
	Likes   int    `json:"likes"`
}
