package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Tag is a document in the Tag collection, unique by name (upsert
// convention, best effort). Tags are shared across questions and never
// deleted.
type Tag struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
}

// TagCount pairs a tag name with the number of questions referencing it.
type TagCount struct {
	Name string `json:"name"`
	Qcnt int    `json:"qcnt"`
}
