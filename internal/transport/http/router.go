package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/qa-board/internal/config"
	"github.com/example/qa-board/internal/metrics"
	"github.com/example/qa-board/internal/service"
	"github.com/example/qa-board/internal/transport/http/handlers"
)

type Router = *gin.Engine

type Services struct {
	Questions *service.QuestionService
	Answers   *service.AnswerService
	Tags      *service.TagService
}

func NewRouter(cfg *config.Config, svcs Services, m *metrics.Metrics) Router {
	if mode := gin.Mode(); mode == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(), observe(m), cors(cfg.ClientOrigin))

	qh := handlers.NewQuestionHandler(svcs.Questions)
	ah := handlers.NewAnswerHandler(svcs.Answers)
	th := handlers.NewTagHandler(svcs.Tags)

	question := r.Group("/question")
	{
		question.GET("/getQuestion", qh.GetQuestions)
		question.GET("/getQuestionById/:qid", qh.GetQuestionByID)
		question.POST("/addQuestion", qh.AddQuestion)
		question.POST("/upvoteQuestion", qh.UpvoteQuestion)
		question.POST("/downvoteQuestion", qh.DownvoteQuestion)
	}
	r.POST("/answer/addAnswer", ah.AddAnswer)
	r.GET("/tag/getTagsWithQuestionNumber", th.GetTagsWithQuestionNumber)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
