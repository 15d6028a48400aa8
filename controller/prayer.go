package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WorkZen2025/workzen-app/logic"
)

// PrayerController handles HTTP requests
type PrayerController struct {
	prayerLogic *logic.PrayerLogic
}

func NewPrayerController(logic *logic.PrayerLogic) *PrayerController {
	return &PrayerController{prayerLogic: logic}
}

// SubmitPrayerRequest handles POST /prayers
func (c *PrayerController) SubmitPrayerRequest(ctx *gin.Context) {
	type Request struct {
		RequestText string `json:"request_text" binding:"required"`
		Category    string `json:"category"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := extractUserID(ctx)
	if err != nil {
		return
	}

	prayer, err := c.prayerLogic.SubmitPrayerRequest(userID, req.RequestText, req.Category)
	if err != nil {
		switch err {
		case logic.ErrEmptyRequest, logic.ErrInvalidCategory:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, prayer)
}

// ListPrayerRequests handles GET /prayers
func (c *PrayerController) ListPrayerRequests(ctx *gin.Context) {
	userID, err := extractUserID(ctx)
	if err != nil {
		return
	}

	prayers, err := c.prayerLogic.ListPrayerRequests(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, prayers)
}

// AnswerPrayerRequest handles POST /prayers/:id/answer
func (c *PrayerController) AnswerPrayerRequest(ctx *gin.Context) {
	type Request struct {
		Testimony string `json:"testimony" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer request ID"})
		return
	}

	prayer, err := c.prayerLogic.AnswerPrayerRequest(id, req.Testimony)
	if err != nil {
		switch err {
		case logic.ErrNotFound:
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case logic.ErrAlreadyAnswered:
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case logic.ErrEmptyTestimony:
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, prayer)
}
