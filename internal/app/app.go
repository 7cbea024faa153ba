package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/example/qa-board/internal/cache"
	"github.com/example/qa-board/internal/config"
	"github.com/example/qa-board/internal/db"
	"github.com/example/qa-board/internal/metrics"
	"github.com/example/qa-board/internal/repository"
	"github.com/example/qa-board/internal/service"
	"github.com/example/qa-board/internal/transport/http"
)

type Application struct {
	Config *config.Config
	DB     *db.Database
	Cache  *cache.RedisClient
	Router http.Router
}

func Initialize() (*Application, error) {
	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	database, err := db.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	tagRepo := repository.NewTagRepository(database)
	answerRepo := repository.NewAnswerRepository(database)
	questionRepo := repository.NewQuestionRepository(database, tagRepo, answerRepo)

	svcs := http.Services{
		Questions: service.NewQuestionService(questionRepo, tagRepo, redisClient),
		Answers:   service.NewAnswerService(answerRepo, questionRepo),
		Tags:      service.NewTagService(tagRepo, redisClient),
	}

	r := http.NewRouter(cfg, svcs, metrics.New())

	return &Application{
		Config: cfg,
		DB:     database,
		Cache:  redisClient,
		Router: r,
	}, nil
}

func (a *Application) Close() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			logrus.WithError(err).Error("db close")
		}
	}
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
}
