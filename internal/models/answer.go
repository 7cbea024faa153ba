package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Answer is a document in the Answer collection. Answers are immutable once
// created and owned by exactly one question.
type Answer struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Text        string        `bson:"text" json:"text"`
	AnsBy       string        `bson:"ans_by" json:"ans_by"`
	AnsDateTime time.Time     `bson:"ans_date_time" json:"ans_date_time"`
}
