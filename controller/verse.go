package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WorkZen2025/workzen-app/logic"
)

// VerseController handles HTTP requests
type VerseController struct{}

func NewVerseController() *VerseController {
	return &VerseController{}
}

// GetDailyVerse handles GET /verse
func (c *VerseController) GetDailyVerse(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, logic.DailyVerse())
}
