package repository

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"jstream-server/database"
	"jstream-server/internal/models"
)

// testDB connects to MONGO_TEST_URI and hands out a throwaway database.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := database.ConnectMongo(ctx, uri)
	require.NoError(t, err)

	db := client.Database("jstream_test_" + bson.NewObjectID().Hex())
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = database.DisconnectMongo(context.Background(), client)
	})
	return db
}

func TestPlaylistRepository_Lifecycle(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewPlaylistRepository(db)

	now := time.Now().UTC().Truncate(time.Millisecond)
	id, err := repo.Insert(ctx, &models.Playlist{
		Name:        "Road Trip",
		CreatorName: models.AnonymousName,
		Songs:       []models.Song{},
		Comments:    []models.Comment{},
		CreatedAt:   now,
	})
	require.NoError(t, err)
	require.False(t, id.IsZero())

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Road Trip", got.Name)
	assert.Empty(t, got.Songs)
	assert.True(t, now.Equal(got.CreatedAt))
	_, hasUser := got.UserID()
	assert.False(t, hasUser)

	for i := 1; i <= 3; i++ {
		likes, err := repo.IncLikes(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, i, likes)
	}

	c := models.Comment{ID: bson.NewObjectID().Hex(), Username: "dj", Content: "nice", CreatedAt: now}
	require.NoError(t, repo.PushComment(ctx, id, c))
	comments, err := repo.FindComments(ctx, id)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, c.ID, comments[0].ID)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.FindByID(ctx, id)
	assert.True(t, errors.Is(err, mongo.ErrNoDocuments))
}

func TestPlaylistRepository_MissingDocument(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewPlaylistRepository(db)
	missing := bson.NewObjectID()

	_, err := repo.IncLikes(ctx, missing)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
	assert.ErrorIs(t, repo.PushComment(ctx, missing, models.Comment{ID: "x"}), mongo.ErrNoDocuments)
	assert.ErrorIs(t, repo.Delete(ctx, missing), mongo.ErrNoDocuments)
	_, err = repo.FindComments(ctx, missing)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestPlaylistRepository_ListNewestFirst(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewPlaylistRepository(db)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"a", "b", "c"} {
		_, err := repo.Insert(ctx, &models.Playlist{Name: name, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}

	all, err := repo.ListNewestFirst(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Name)
	assert.Equal(t, "a", all[2].Name)
}

func TestUserRepository_FindNames(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)

	known := bson.NewObjectID()
	_, err := users.ColUsers.InsertOne(ctx, models.User{ID: known, Name: "Riya"})
	require.NoError(t, err)

	names, err := users.FindNames(ctx, []bson.ObjectID{known, bson.NewObjectID()})
	require.NoError(t, err)
	assert.Equal(t, map[bson.ObjectID]string{known: "Riya"}, names)

	empty, err := users.FindNames(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPlaylist_LegacyStringUserID(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewPlaylistRepository(db)

	owner := bson.NewObjectID()
	res, err := repo.ColPlaylists.InsertOne(ctx, bson.M{"name": "legacy", "user_id": owner.Hex(), "created_at": time.Now()})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, res.InsertedID.(bson.ObjectID))
	require.NoError(t, err)
	uid, ok := got.UserID()
	assert.True(t, ok)
	assert.Equal(t, owner, uid)
}
