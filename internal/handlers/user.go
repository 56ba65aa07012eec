package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/linguadex-backend/internal/requestdata"
	"github.com/yungbote/linguadex-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing request data"})
		return
	}
	user, err := uh.userService.GetUser(c.Request.Context(), rd.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uh *UserHandler) UpdateSettings(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing request data"})
		return
	}
	var req struct {
		NativeLanguage *string `json:"native_language"`
		TargetLanguage *string `json:"target_language"`
		CurrentLevel   *string `json:"current_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	user, err := uh.userService.UpdateSettings(c.Request.Context(), rd.UserID, services.UserSettingsUpdate{
		NativeLanguage: req.NativeLanguage,
		TargetLanguage: req.TargetLanguage,
		CurrentLevel:   req.CurrentLevel,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}
