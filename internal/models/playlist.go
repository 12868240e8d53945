package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const AnonymousName = "Anonymous"

type Playlist struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	UserRef     any           `bson:"user_id,omitempty"` // bson.ObjectID or its hex string, see UserID
	Name        string        `bson:"name"`
	CreatorName string        `bson:"creator_name"`
	Songs       []Song        `bson:"songs"`
	Comments    []Comment     `bson:"comments"`
	Likes       int           `bson:"likes"`
	CreatedAt   time.Time     `bson:"created_at"`
}


// Comment is embedded in Playlist.comments; ID is generated independently of the playlist _id.
type Comment struct {
	ID        string    `json:"id" bson:"id"`
	Username  string    `json:"username" bson:"username"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// UserID resolves the optional owner reference. Older documents store it as a hex string.
func (p Playlist) UserID() (bson.ObjectID, bool) {
	switch v := p.UserRef.(type) {
	case bson.ObjectID:
		return v, !v.IsZero()
	case *bson.ObjectID:
		if v == nil {
			return bson.ObjectID{}, false
		}
		return *v, !v.IsZero()
	case string:
		oid, err := bson.ObjectIDFromHex(v)
		return oid, err == nil
	}
	return bson.ObjectID{}, false
}
