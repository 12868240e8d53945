package routes

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"jstream-server/internal/models"
)

// memStore mimics the playlists and users collections closely enough for handler tests.
type memStore struct {
	mu        sync.Mutex
	seq       int
	order     map[bson.ObjectID]int
	playlists map[bson.ObjectID]models.Playlist
	users     map[bson.ObjectID]string
	fail      error
}

func newMemStore() *memStore {
	return &memStore{
		order:     map[bson.ObjectID]int{},
		playlists: map[bson.ObjectID]models.Playlist{},
		users:     map[bson.ObjectID]string{},
	}
}

func (m *memStore) put(p models.Playlist) bson.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	m.seq++
	m.order[p.ID] = m.seq
	m.playlists[p.ID] = p
	return p.ID
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.playlists)
}

func clonePlaylist(p models.Playlist) models.Playlist {
	if p.Songs != nil {
		p.Songs = append([]models.Song{}, p.Songs...)
	}
	if p.Comments != nil {
		p.Comments = append([]models.Comment{}, p.Comments...)
	}
	return p
}

func (m *memStore) ListNewestFirst(ctx context.Context) ([]models.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	var out []models.Playlist
	for _, p := range m.playlists {
		out = append(out, clonePlaylist(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return m.order[out[i].ID] > m.order[out[j].ID]
	})
	return out, nil
}

func (m *memStore) Insert(ctx context.Context, p *models.Playlist) (bson.ObjectID, error) {
	if m.fail != nil {
		return bson.ObjectID{}, m.fail
	}
	return m.put(clonePlaylist(*p)), nil
}

func (m *memStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, m.fail
	}
	p, ok := m.playlists[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := clonePlaylist(p)
	return &cp, nil
}

func (m *memStore) FindComments(ctx context.Context, id bson.ObjectID) ([]models.Comment, error) {
	p, err := m.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

func (m *memStore) IncLikes(ctx context.Context, id bson.ObjectID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return 0, m.fail
	}
	p, ok := m.playlists[id]
	if !ok {
		return 0, mongo.ErrNoDocuments
	}
	p.Likes++
	m.playlists[id] = p
	return p.Likes, nil
}

func (m *memStore) PushComment(ctx context.Context, id bson.ObjectID, c models.Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	p, ok := m.playlists[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.Comments = append(p.Comments, c)
	m.playlists[id] = p
	return nil
}

func (m *memStore) Delete(ctx context.Context, id bson.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	if _, ok := m.playlists[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.playlists, id)
	return nil
}

func (m *memStore) FindNames(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[bson.ObjectID]string{}
	for _, id := range ids {
		if name, ok := m.users[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}
