package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/example/qa-board/internal/models"
	"github.com/example/qa-board/internal/service"
)

type AnswerHandler struct {
	service *service.AnswerService
}

func NewAnswerHandler(svc *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: svc}
}

type answerReq struct {
	Text        string    `json:"text"`
	AnsBy       string    `json:"ans_by"`
	AnsDateTime time.Time `json:"ans_date_time"`
}

type addAnswerReq struct {
	QID string     `json:"qid" binding:"required"`
	Ans *answerReq `json:"ans" binding:"required"`
}

func (h *AnswerHandler) AddAnswer(c *gin.Context) {
	var req addAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	answer := models.Answer{
		Text:        req.Ans.Text,
		AnsBy:       req.Ans.AnsBy,
		AnsDateTime: req.Ans.AnsDateTime,
	}
	saved, err := h.service.Add(c.Request.Context(), req.QID, answer)
	if service.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when adding answer"})
		return
	}
	c.JSON(http.StatusOK, saved)
}
