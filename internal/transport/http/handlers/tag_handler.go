package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/qa-board/internal/service"
)

type TagHandler struct {
	service *service.TagService
}

func NewTagHandler(svc *service.TagService) *TagHandler {
	return &TagHandler{service: svc}
}

// GetTagsWithQuestionNumber returns every tag with its question count. An
// empty tag collection is reported as an error, matching the shipped
// contract.
func (h *TagHandler) GetTagsWithQuestionNumber(c *gin.Context) {
	counts, err := h.service.CountsByTag(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when fetching tag count map"})
		return
	}
	c.JSON(http.StatusOK, counts)
}
