package httpHandler

import (
	"net/http"

	"imagemaker-server/usecases"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	useCase *usecases.FeedbackUseCase
}

func NewFeedbackHandler(useCase *usecases.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{useCase: useCase}
}

type submitFeedbackRequest struct {
	UserID   string  `json:"userId" binding:"required"`
	Category *string `json:"category"`
	Feedback string  `json:"feedback" binding:"required"`
}

type reportContentRequest struct {
	UserID            string  `json:"user_id" binding:"required"`
	ImageID           string  `json:"image_id" binding:"required"`
	Reason            string  `json:"reason" binding:"required"`
	AdditionalDetails *string `json:"additional_details"`
}

// SubmitFeedback handles POST /feedback/submit
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.useCase.SubmitFeedback(req.UserID, req.Category, req.Feedback)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReportContent handles POST /report/content
func (h *FeedbackHandler) ReportContent(c *gin.Context) {
	var req reportContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.useCase.ReportContent(req.UserID, req.ImageID, req.Reason, req.AdditionalDetails)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
