package httpHandler

import (
	"net/http"

	"imagemaker-server/usecases"

	"github.com/gin-gonic/gin"
)

type ImageHandler struct {
	useCase *usecases.ImageUseCase
}

func NewImageHandler(useCase *usecases.ImageUseCase) *ImageHandler {
	return &ImageHandler{useCase: useCase}
}

type generateImageRequest struct {
	UserID          string  `json:"user_id" binding:"required"`
	TextDescription string  `json:"text_description" binding:"required"`
	Style           *string `json:"style"`
	Language        *string `json:"language"`
}

// GenerateImage handles POST /generate-image
func (h *ImageHandler) GenerateImage(c *gin.Context) {
	h.generate(c, false)
}

// GenerateImageExternal handles POST /api/generate-image, the variant for
// external callers.
func (h *ImageHandler) GenerateImageExternal(c *gin.Context) {
	h.generate(c, true)
}

func (h *ImageHandler) generate(c *gin.Context, external bool) {
	var req generateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.useCase.GenerateImage(usecases.GenerateImageInput{
		UserID:          req.UserID,
		TextDescription: req.TextDescription,
		Style:           req.Style,
		Language:        req.Language,
	}, external)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
