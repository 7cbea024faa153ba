package models

import (
	"encoding/json"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func decodeQuestion(t *testing.T, q Question) map[string]interface{} {
	t.Helper()
	b, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return doc
}

func TestQuestionJSONUnpopulatedAnswersKeepReferences(t *testing.T) {
	a1, a2 := bson.NewObjectID(), bson.NewObjectID()
	q := Question{
		Title:       "Programmatically navigate using React router",
		AnswerIDs:   []bson.ObjectID{a1, a2},
		AskDateTime: time.Now(),
	}

	doc := decodeQuestion(t, q)
	answers, ok := doc["answers"].([]interface{})
	if !ok {
		t.Fatalf("answers is %T, want array", doc["answers"])
	}
	if len(answers) != 2 {
		t.Fatalf("got %d answer references, want 2", len(answers))
	}
	if answers[0] != a1.Hex() || answers[1] != a2.Hex() {
		t.Errorf("got %v, want [%s %s]", answers, a1.Hex(), a2.Hex())
	}
}

func TestQuestionJSONPopulatedAnswersAreDocuments(t *testing.T) {
	a := bson.NewObjectID()
	q := Question{
		AnswerIDs: []bson.ObjectID{a},
		Answers:   []Answer{{ID: a, Text: "an answer", AnsBy: "hamkalo", AnsDateTime: time.Now()}},
	}

	doc := decodeQuestion(t, q)
	answers := doc["answers"].([]interface{})
	if len(answers) != 1 {
		t.Fatalf("got %d answers, want 1", len(answers))
	}
	first, ok := answers[0].(map[string]interface{})
	if !ok {
		t.Fatalf("populated answer is %T, want object", answers[0])
	}
	if first["text"] != "an answer" || first["ans_by"] != "hamkalo" {
		t.Errorf("got %v", first)
	}
}

func TestQuestionJSONTagsFallBackToReferences(t *testing.T) {
	t1 := bson.NewObjectID()

	doc := decodeQuestion(t, Question{TagIDs: []bson.ObjectID{t1}})
	tags := doc["tags"].([]interface{})
	if len(tags) != 1 || tags[0] != t1.Hex() {
		t.Fatalf("got %v, want [%s]", tags, t1.Hex())
	}

	doc = decodeQuestion(t, Question{
		TagIDs: []bson.ObjectID{t1},
		Tags:   []Tag{{ID: t1, Name: "react"}},
	})
	tags = doc["tags"].([]interface{})
	first, ok := tags[0].(map[string]interface{})
	if !ok {
		t.Fatalf("populated tag is %T, want object", tags[0])
	}
	if first["name"] != "react" {
		t.Errorf("got %v", first)
	}
}

func TestQuestionJSONEmptyReferencesAreEmptyArrays(t *testing.T) {
	doc := decodeQuestion(t, Question{Title: "no answers yet"})
	if answers, ok := doc["answers"].([]interface{}); !ok || len(answers) != 0 {
		t.Errorf("answers: got %v, want empty array", doc["answers"])
	}
	if tags, ok := doc["tags"].([]interface{}); !ok || len(tags) != 0 {
		t.Errorf("tags: got %v, want empty array", doc["tags"])
	}
}
