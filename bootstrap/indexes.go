package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"jstream-server/internal/repository"
)

// EnsurePlaylistIndexes backs the newest-first listing.
func EnsurePlaylistIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(repository.CollectionPlaylists).Indexes().CreateOne(
		ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	)
	return err
}
