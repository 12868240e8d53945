package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"jstream-server/internal/models"
)

const (
	CollectionPlaylists = "playlists"
	CollectionUsers     = "users"
)

type PlaylistRepository struct {
	ColPlaylists *mongo.Collection
}

func NewPlaylistRepository(db *mongo.Database) *PlaylistRepository {
	return &PlaylistRepository{ColPlaylists: db.Collection(CollectionPlaylists)}
}

// ListNewestFirst returns every playlist sorted by created_at descending.
func (r *PlaylistRepository) ListNewestFirst(ctx context.Context) ([]models.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := r.ColPlaylists.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var all []models.Playlist
	if err := cur.All(ctx, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *PlaylistRepository) Insert(ctx context.Context, p *models.Playlist) (bson.ObjectID, error) {
	res, err := r.ColPlaylists.InsertOne(ctx, p)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// FindByID returns mongo.ErrNoDocuments when the playlist does not exist.
func (r *PlaylistRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Playlist, error) {
	var p models.Playlist
	if err := r.ColPlaylists.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FindComments reads only the comments field.
func (r *PlaylistRepository) FindComments(ctx context.Context, id bson.ObjectID) ([]models.Comment, error) {
	opts := options.FindOne().SetProjection(bson.M{"comments": 1})

	var p models.Playlist
	if err := r.ColPlaylists.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// IncLikes atomically adds one like and returns the new count.
func (r *PlaylistRepository) IncLikes(ctx context.Context, id bson.ObjectID) (int, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"likes": 1})

	var p models.Playlist
	err := r.ColPlaylists.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"likes": 1}},
		opts,
	).Decode(&p)
	if err != nil {
		return 0, err
	}
	return p.Likes, nil
}

// PushComment appends c to the playlist's comments. mongo.ErrNoDocuments when nothing matched.
func (r *PlaylistRepository) PushComment(ctx context.Context, id bson.ObjectID, c models.Comment) error {
	res, err := r.ColPlaylists.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": c}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.ColPlaylists.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
