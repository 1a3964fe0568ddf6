package httpHandler

import (
	"errors"
	"net/http"

	"imagemaker-server/usecases"

	"github.com/gin-gonic/gin"
)

type StyleHandler struct {
	useCase *usecases.StyleUseCase
}

func NewStyleHandler(useCase *usecases.StyleUseCase) *StyleHandler {
	return &StyleHandler{useCase: useCase}
}

type createStyleRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// CreateStyle handles POST /styles
func (h *StyleHandler) CreateStyle(c *gin.Context) {
	var req createStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.useCase.CreateStyle(req.Name, req.Description)
	if err != nil {
		if errors.Is(err, usecases.ErrStyleExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListStyles handles GET /styles
func (h *StyleHandler) ListStyles(c *gin.Context) {
	resp, err := h.useCase.ListStyles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteStyle handles DELETE /styles/:id
func (h *StyleHandler) DeleteStyle(c *gin.Context) {
	id := c.Param("id")

	resp := h.useCase.DeleteStyle(id)
	c.JSON(http.StatusOK, resp)
}
