package models

import "go.mongodb.org/mongo-driver/v2/bson"

// User is owned by an external writer; this service only reads the name.
type User struct {
	ID   bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string        `json:"name" bson:"name"`
}
