package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/linguadex-backend/internal/requestdata"
	"github.com/yungbote/linguadex-backend/internal/services"
)

type ActivityHandler struct {
	activityService services.ActivityService
	userService     services.UserService
}

func NewActivityHandler(activityService services.ActivityService, userService services.UserService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService, userService: userService}
}

func (ah *ActivityHandler) Types(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": ah.activityService.Types()})
}

// Practice generates one activity for the caller. The service guarantees a
// renderable result for any valid type, so only a missing/unknown type can
// produce an error status here.
func (ah *ActivityHandler) Practice(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing request data"})
		return
	}
	activityType := c.Query("type")
	if activityType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity type is required"})
		return
	}
	topic := c.Query("topic")

	user, uErr := ah.userService.GetUser(c.Request.Context(), rd.UserID)
	if uErr != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	result, err := ah.activityService.Generate(c.Request.Context(), user, activityType, topic)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
