package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/linguadex-backend/internal/services"
)

type TranslateHandler struct {
	translationService services.TranslationService
}

func NewTranslateHandler(translationService services.TranslationService) *TranslateHandler {
	return &TranslateHandler{translationService: translationService}
}

func (th *TranslateHandler) Translate(c *gin.Context) {
	var req struct {
		Text       string `json:"text"`
		SourceLang string `json:"source_lang"`
		TargetLang string `json:"target_lang"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	translation, err := th.translationService.Translate(c.Request.Context(), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"translation": translation})
}
