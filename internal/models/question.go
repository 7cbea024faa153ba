package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Question is a document in the Question collection. Tags and answers are
// stored as ObjectID references and populated into Tags/Answers on read.
type Question struct {
	ID          bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string          `bson:"title" json:"title"`
	Text        string          `bson:"text" json:"text"`
	TagIDs      []bson.ObjectID `bson:"tags" json:"-"`
	AnswerIDs   []bson.ObjectID `bson:"answers" json:"-"`
	AskedBy     string          `bson:"asked_by" json:"asked_by"`
	AskDateTime time.Time       `bson:"ask_date_time" json:"ask_date_time"`
	Views       int             `bson:"views" json:"views"`
	UpVotes     []string        `bson:"up_votes" json:"up_votes"`
	DownVotes   []string        `bson:"down_votes" json:"down_votes"`

	Tags    []Tag    `bson:"-" json:"tags"`
	Answers []Answer `bson:"-" json:"answers"`
}

func hexIDs(ids []bson.ObjectID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Hex()
	}
	return out
}

// MarshalJSON emits tags and answers as full documents when populated and
// as id strings otherwise, so list views that skip population still carry
// the references.
func (q Question) MarshalJSON() ([]byte, error) {
	type alias Question
	doc := struct {
		alias
		Tags    interface{} `json:"tags"`
		Answers interface{} `json:"answers"`
	}{alias: alias(q)}

	switch {
	case len(q.Tags) > 0:
		doc.Tags = q.Tags
	case len(q.TagIDs) > 0:
		doc.Tags = hexIDs(q.TagIDs)
	default:
		doc.Tags = []Tag{}
	}

	switch {
	case len(q.Answers) > 0:
		doc.Answers = q.Answers
	case len(q.AnswerIDs) > 0:
		doc.Answers = hexIDs(q.AnswerIDs)
	default:
		doc.Answers = []Answer{}
	}

	return json.Marshal(doc)
}

// Score is derived from the vote sets, never stored.
func (q *Question) Score() int {
	return len(q.UpVotes) - len(q.DownVotes)
}

// LatestAnswerTime returns the most recent answer time among the populated
// answers. The second return is false when the question has no answers.
func (q *Question) LatestAnswerTime() (time.Time, bool) {
	var latest time.Time
	found := false
	for _, a := range q.Answers {
		if !found || a.AnsDateTime.After(latest) {
			latest = a.AnsDateTime
			found = true
		}
	}
	return latest, found
}
