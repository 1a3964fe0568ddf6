package httpHandler

import (
	"errors"
	"net/http"

	"imagemaker-server/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

type createUserRequest struct {
	Email     string  `json:"email" binding:"required"`
	Password  string  `json:"password" binding:"required"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	FirstName   *string                      `json:"first_name"`
	LastName    *string                      `json:"last_name"`
	Email       *string                      `json:"email"`
	Preferences usecases.ProfilePreferences `json:"preferences"`
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp := h.useCase.CreateUser(req.Email, req.Password, req.FirstName, req.LastName)
	c.JSON(http.StatusOK, resp)
}

// Login handles POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.useCase.LoginUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecases.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateProfile handles PUT /user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp := h.useCase.UpdateUserProfile(req.FirstName, req.LastName, req.Email, req.Preferences)
	c.JSON(http.StatusOK, resp)
}
