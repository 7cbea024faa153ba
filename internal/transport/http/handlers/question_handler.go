package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/qa-board/internal/models"
	"github.com/example/qa-board/internal/repository"
	"github.com/example/qa-board/internal/service"
)

type QuestionHandler struct {
	service *service.QuestionService
}

func NewQuestionHandler(svc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: svc}
}

type tagReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type newQuestionReq struct {
	Title       string    `json:"title" binding:"required"`
	Text        string    `json:"text" binding:"required"`
	Tags        []tagReq  `json:"tags" binding:"required"`
	AskedBy     string    `json:"asked_by" binding:"required"`
	AskDateTime time.Time `json:"ask_date_time" binding:"required"`
}

type voteReq struct {
	QID      string `json:"qid" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// GetQuestions lists questions by order and search filter. The list load
// fails closed, so a storage outage surfaces as zero results.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions := h.service.List(c.Request.Context(), c.Query("order"), c.Query("search"))
	c.JSON(http.StatusOK, questions)
}

// GetQuestionByID returns a question with answers populated, counting the
// fetch as one view. A well-formed but absent id maps to 500, matching the
// shipped API contract.
func (h *QuestionHandler) GetQuestionByID(c *gin.Context) {
	q, err := h.service.GetByID(c.Request.Context(), c.Param("qid"))
	if errors.Is(err, repository.ErrInvalidID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when fetching question by id"})
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	var req newQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question body"})
		return
	}

	in := service.NewQuestion{
		Title:       req.Title,
		Text:        req.Text,
		AskedBy:     req.AskedBy,
		AskDateTime: req.AskDateTime,
	}
	for _, t := range req.Tags {
		in.Tags = append(in.Tags, models.Tag{Name: t.Name, Description: t.Description})
	}

	created, err := h.service.Create(c.Request.Context(), in)
	if service.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when saving question"})
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *QuestionHandler) UpvoteQuestion(c *gin.Context) {
	h.vote(c, models.Upvote)
}

func (h *QuestionHandler) DownvoteQuestion(c *gin.Context) {
	h.vote(c, models.Downvote)
}

func (h *QuestionHandler) vote(c *gin.Context, kind models.VoteKind) {
	var req voteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	result, err := h.service.Vote(c.Request.Context(), req.QID, req.Username, kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when adding " + string(kind) + " to question"})
		return
	}
	c.JSON(http.StatusOK, result)
}
