package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"jstream-server/dto"
	"jstream-server/internal/apperr"
	"jstream-server/internal/models"
	u "jstream-server/utils"
)

const (
	MsgPlaylistNotFound = "Playlist not found"
	MsgNameRequired     = "Playlist name is required"
	MsgContentRequired  = "Comment content is required"
	MsgInvalidUserID    = "Invalid user_id"
	MsgPlaylistCreated  = "Playlist created successfully"
	MsgPlaylistLiked    = "Playlist liked successfully"
	MsgPlaylistDeleted  = "Playlist deleted successfully"
	MsgCommentAdded     = "Comment added successfully"
)

// PlaylistStore is the playlists collection as seen by the service.
type PlaylistStore interface {
	ListNewestFirst(ctx context.Context) ([]models.Playlist, error)
	Insert(ctx context.Context, p *models.Playlist) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Playlist, error)
	FindComments(ctx context.Context, id bson.ObjectID) ([]models.Comment, error)
	IncLikes(ctx context.Context, id bson.ObjectID) (int, error)
	PushComment(ctx context.Context, id bson.ObjectID, c models.Comment) error
	Delete(ctx context.Context, id bson.ObjectID) error
}

type UserStore interface {
	FindNames(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]string, error)
}

type PlaylistService struct {
	Playlists PlaylistStore
	Users     UserStore
	Now       func() time.Time
}

func NewPlaylistService(playlists PlaylistStore, users UserStore) *PlaylistService {
	return &PlaylistService{Playlists: playlists, Users: users, Now: time.Now}
}

// now is UTC at millisecond precision so what we return matches what Mongo stores.
func (s *PlaylistService) now() time.Time {
	clock := s.Now
	if clock == nil {
		clock = time.Now
	}
	return clock().UTC().Truncate(time.Millisecond)
}

func parsePlaylistID(hex string) (bson.ObjectID, error) {
	id, err := u.Oid(hex)
	if err != nil {
		return bson.ObjectID{}, apperr.NotFound(MsgPlaylistNotFound)
	}
	return id, nil
}

// storeErr maps a collection error to the request taxonomy.
func storeErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(MsgPlaylistNotFound)
	}
	return apperr.Fault(err)
}

func orDefault(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}

func (s *PlaylistService) List(ctx context.Context) ([]dto.PlaylistSummary, error) {
	playlists, err := s.Playlists.ListNewestFirst(ctx)
	if err != nil {
		return nil, apperr.Fault(err)
	}

	var ids []bson.ObjectID
	seen := make(map[bson.ObjectID]bool)
	for _, p := range playlists {
		if id, ok := p.UserID(); ok && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	names := map[bson.ObjectID]string{}
	if len(ids) > 0 {
		names, err = s.Users.FindNames(ctx, ids)
		if err != nil {
			return nil, apperr.Fault(err)
		}
	}

	result := make([]dto.PlaylistSummary, 0, len(playlists))
	for _, p := range playlists {
		result = append(result, dto.PlaylistSummary{
			ID:           p.ID.Hex(),
			Name:         p.Name,
			CreatorName:  creatorName(p, names),
			SongCount:    len(p.Songs),
			Likes:        p.Likes,
			CommentCount: len(p.Comments),
			CreatedAt:    p.CreatedAt,
		})
	}
	return result, nil
}

// creatorName prefers the referenced user's name. A dangling or absent reference
// falls back to the stored creator_name.
func creatorName(p models.Playlist, names map[bson.ObjectID]string) string {
	if id, ok := p.UserID(); ok {
		if name, found := names[id]; found && name != "" {
			return name
		}
	}
	if p.CreatorName != "" {
		return p.CreatorName
	}
	return models.AnonymousName
}

func (s *PlaylistService) Create(ctx context.Context, req dto.CreatePlaylistReq) (dto.CreatePlaylistResp, error) {
	var resp dto.CreatePlaylistResp

	name := req.Name
	if name == "" {
		return resp, apperr.Validation(MsgNameRequired)
	}

	p := &models.Playlist{
		Name:        name,
		CreatorName: orDefault(req.CreatorName, models.AnonymousName),
		Songs:       []models.Song{},
		Comments:    []models.Comment{},
		Likes:       0,
		CreatedAt:   s.now(),
	}

	if req.UserID != nil && *req.UserID != "" {
		uid, err := u.Oid(*req.UserID)
		if err != nil {
			return resp, apperr.Validation(MsgInvalidUserID)
		}
		p.UserRef = uid
	}

	id, err := s.Playlists.Insert(ctx, p)
	if err != nil {
		return resp, apperr.Fault(err)
	}

	resp = dto.CreatePlaylistResp{Message: MsgPlaylistCreated, PlaylistID: id.Hex()}
	return resp, nil
}

func (s *PlaylistService) Get(ctx context.Context, playlistID string) (dto.PlaylistResp, error) {
	var resp dto.PlaylistResp

	id, err := parsePlaylistID(playlistID)
	if err != nil {
		return resp, err
	}

	p, err := s.Playlists.FindByID(ctx, id)
	if err != nil {
		return resp, storeErr(err)
	}

	resp = dto.PlaylistResp{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		CreatorName: p.CreatorName,
		Songs:       nonNilSongs(p.Songs),
		Comments:    nonNilComments(p.Comments),
		Likes:       p.Likes,
		CreatedAt:   p.CreatedAt,
	}
	if uid, ok := p.UserID(); ok {
		resp.UserID = uid.Hex()
	}
	return resp, nil
}

func (s *PlaylistService) Songs(ctx context.Context, playlistID string) ([]models.Song, error) {
	id, err := parsePlaylistID(playlistID)
	if err != nil {
		return nil, err
	}

	p, err := s.Playlists.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return nonNilSongs(p.Songs), nil
}

func (s *PlaylistService) Like(ctx context.Context, playlistID string) (dto.LikeResp, error) {
	var resp dto.LikeResp

	id, err := parsePlaylistID(playlistID)
	if err != nil {
		return resp, err
	}

	likes, err := s.Playlists.IncLikes(ctx, id)
	if err != nil {
		return resp, storeErr(err)
	}

	resp = dto.LikeResp{Message: MsgPlaylistLiked, Likes: likes}
	return resp, nil
}

func (s *PlaylistService) Comments(ctx context.Context, playlistID string) ([]models.Comment, error) {
	id, err := parsePlaylistID(playlistID)
	if err != nil {
		return nil, err
	}

	comments, err := s.Playlists.FindComments(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return nonNilComments(comments), nil
}

func (s *PlaylistService) AddComment(ctx context.Context, playlistID string, req dto.CreateCommentReq) (dto.CreateCommentResp, error) {
	var resp dto.CreateCommentResp

	content := req.Content
	if content == "" {
		return resp, apperr.Validation(MsgContentRequired)
	}

	id, err := parsePlaylistID(playlistID)
	if err != nil {
		return resp, err
	}

	comment := models.Comment{
		ID:        u.NewHexID(),
		Username:  orDefault(req.Username, models.AnonymousName),
		Content:   content,
		CreatedAt: s.now(),
	}

	if err := s.Playlists.PushComment(ctx, id, comment); err != nil {
		return resp, storeErr(err)
	}

	resp = dto.CreateCommentResp{Message: MsgCommentAdded, Comment: comment}
	return resp, nil
}

func (s *PlaylistService) Delete(ctx context.Context, playlistID string) (dto.MessageResponse, error) {
	var resp dto.MessageResponse

	id, err := parsePlaylistID(playlistID)
	if err != nil {
		return resp, err
	}

	if err := s.Playlists.Delete(ctx, id); err != nil {
		return resp, storeErr(err)
	}

	resp = dto.MessageResponse{Message: MsgPlaylistDeleted}
	return resp, nil
}

func nonNilSongs(s []models.Song) []models.Song {
	if s == nil {
		return []models.Song{}
	}
	return s
}

func nonNilComments(c []models.Comment) []models.Comment {
	if c == nil {
		return []models.Comment{}
	}
	return c
}
