package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/linguadex-backend/internal/requestdata"
	"github.com/yungbote/linguadex-backend/internal/services"
)

type VocabularyHandler struct {
	vocabularyService services.VocabularyService
	userService       services.UserService
}

func NewVocabularyHandler(vocabularyService services.VocabularyService, userService services.UserService) *VocabularyHandler {
	return &VocabularyHandler{vocabularyService: vocabularyService, userService: userService}
}

func (vh *VocabularyHandler) List(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing request data"})
		return
	}
	entries, err := vh.vocabularyService.ListUserVocabulary(c.Request.Context(), rd.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocabulary": entries})
}

func (vh *VocabularyHandler) Add(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing request data"})
		return
	}
	var req struct {
		Word        string  `json:"word"`
		Translation string  `json:"translation"`
		Proficiency float64 `json:"proficiency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a word is required"})
		return
	}
	user, uErr := vh.userService.GetUser(c.Request.Context(), rd.UserID)
	if uErr != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	created, err := vh.vocabularyService.AddWordToUser(c.Request.Context(), rd.UserID, req.Word, user.TargetLanguage, req.Translation, req.Proficiency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

func (vh *VocabularyHandler) UpdateProficiency(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing request data"})
		return
	}
	vocabularyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vocabulary id"})
		return
	}
	var req struct {
		Proficiency float64 `json:"proficiency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := vh.vocabularyService.UpdateProficiency(c.Request.Context(), rd.UserID, vocabularyID, req.Proficiency); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (vh *VocabularyHandler) Suggest(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing request data"})
		return
	}
	user, uErr := vh.userService.GetUser(c.Request.Context(), rd.UserID)
	if uErr != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	count := 5
	if v := c.Query("count"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			count = parsed
		}
	}
	suggestions, err := vh.vocabularyService.SuggestVocabulary(c.Request.Context(), user, c.Query("topic"), count)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vocabulary": suggestions})
}
