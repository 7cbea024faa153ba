// Seeds the database with sample questions, answers, and tags for local
// development. Existing documents are left in place; tags are upserted by
// name.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/example/qa-board/internal/config"
	"github.com/example/qa-board/internal/db"
	"github.com/example/qa-board/internal/models"
	"github.com/example/qa-board/internal/repository"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		logrus.Fatalf("bad timestamp %q: %v", s, err)
	}
	return t
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	database, err := db.Connect(cfg)
	if err != nil {
		logrus.Fatalf("db connect: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tagRepo := repository.NewTagRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	questionRepo := repository.NewQuestionRepository(database, tagRepo, answerRepo)

	tagDefs := []models.Tag{
		{Name: "react", Description: "React UI development library"},
		{Name: "javascript", Description: "JavaScript language and web development"},
		{Name: "android-studio", Description: "Official IDE for Android development"},
		{Name: "shared-preferences", Description: "Android key-value storage API"},
		{Name: "storage", Description: "Persisting and serving application data"},
		{Name: "website", Description: "Building and running web applications"},
	}
	tags := make(map[string]models.Tag, len(tagDefs))
	for _, t := range tagDefs {
		saved, err := tagRepo.Upsert(ctx, t)
		if err != nil {
			logrus.Fatalf("seed tag %q: %v", t.Name, err)
		}
		tags[t.Name] = saved
	}

	type answerDef struct {
		text, by, at string
	}
	answerDefs := []answerDef{
		{"React Router is mostly a wrapper around the history library, which handles interaction with the browser's window.history for you.", "hamkalo", "2023-11-20T03:24:42Z"},
		{"On my end, I like to have a single history object that I can carry even outside components.", "azad", "2023-11-23T08:24:00Z"},
		{"Consider using apply() instead; commit writes its data to persistent storage immediately, whereas apply handles it in the background.", "abaya", "2023-11-18T09:24:00Z"},
		{"YourPreference yourPreference = YourPreference.getInstance(context); yourPreference.saveData(YOUR_KEY, YOUR_VALUE);", "alia", "2023-11-12T03:30:00Z"},
		{"I just found all the above examples too confusing, so I wrote my own.", "sana", "2023-11-01T15:24:19Z"},
		{"Storing content as BLOBs in databases.", "abhi3241", "2023-02-19T18:20:59Z"},
		{"Using GridFS to chunk and store content.", "mackson3332", "2023-02-22T17:19:00Z"},
		{"Store data in a SQLite database.", "ihba001", "2023-03-22T21:17:53Z"},
	}
	answers := make([]models.Answer, 0, len(answerDefs))
	for _, a := range answerDefs {
		saved, err := answerRepo.Create(ctx, models.Answer{Text: a.text, AnsBy: a.by, AnsDateTime: mustTime(a.at)})
		if err != nil {
			logrus.Fatalf("seed answer: %v", err)
		}
		answers = append(answers, saved)
	}

	tagIDs := func(names ...string) []bson.ObjectID {
		ids := make([]bson.ObjectID, 0, len(names))
		for _, n := range names {
			ids = append(ids, tags[n].ID)
		}
		return ids
	}
	answerIDs := func(idx ...int) []bson.ObjectID {
		ids := make([]bson.ObjectID, 0, len(idx))
		for _, i := range idx {
			ids = append(ids, answers[i].ID)
		}
		return ids
	}

	questions := []models.Question{
		{
			Title:       "Programmatically navigate using React router",
			Text:        "The alert shows the proper index for the li clicked, but the animation isn't happening. I'm trying to pass the index value of the clicked list item for the calculation.",
			TagIDs:      tagIDs("react", "javascript"),
			AnswerIDs:   answerIDs(0, 1),
			AskedBy:     "Joji John",
			AskDateTime: mustTime("2022-01-20T03:00:00Z"),
			Views:       10,
		},
		{
			Title:       "Android studio save string shared preference, start activity and load the saved string",
			Text:        "I am using bottom navigation view with custom navigation, hiding and showing fragments depending on the selected icon. Whenever a config change happens the app crashes.",
			TagIDs:      tagIDs("android-studio", "shared-preferences", "javascript"),
			AnswerIDs:   answerIDs(2, 3, 4),
			AskedBy:     "saltyPeter",
			AskDateTime: mustTime("2023-01-10T11:24:30Z"),
			Views:       121,
		},
		{
			Title:       "Object storage for a web application",
			Text:        "I am working on a website where roughly 40 million documents and images should be served to its users. I need suggestions on the most suitable storage method.",
			TagIDs:      tagIDs("storage", "website"),
			AnswerIDs:   answerIDs(5, 6),
			AskedBy:     "monkeyABC",
			AskDateTime: mustTime("2023-02-18T01:02:15Z"),
			Views:       200,
		},
		{
			Title:       "Quick question about storage on android",
			Text:        "I would like to know the best way to store an array on an android phone so that the data remains after the activity ends.",
			TagIDs:      tagIDs("android-studio", "shared-preferences", "storage"),
			AnswerIDs:   answerIDs(7),
			AskedBy:     "elephantCDE",
			AskDateTime: mustTime("2023-03-10T14:28:01Z"),
			Views:       103,
		},
	}
	for _, q := range questions {
		if _, err := questionRepo.Create(ctx, q); err != nil {
			logrus.Fatalf("seed question %q: %v", q.Title, err)
		}
	}

	logrus.Info("database populated")
}
