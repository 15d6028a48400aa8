package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/WorkZen2025/workzen-app/logic"
)

// CheckinController handles HTTP requests
type CheckinController struct {
	checkinLogic *logic.CheckinLogic
}

func NewCheckinController(logic *logic.CheckinLogic) *CheckinController {
	return &CheckinController{checkinLogic: logic}
}

// SubmitCheckin handles POST /checkins
func (c *CheckinController) SubmitCheckin(ctx *gin.Context) {
	type Request struct {
		Date           string `json:"date"` // optional, YYYY-MM-DD
		MorningStress  int    `json:"morning_stress" binding:"required"`
		EveningStress  int    `json:"evening_stress" binding:"required"`
		WorkloadRating int    `json:"workload_rating" binding:"required"`
		EnergyLevel    int    `json:"energy_level" binding:"required"`
		Notes          string `json:"notes"`
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

	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = &parsed
	}

	checkin, err := c.checkinLogic.SubmitCheckin(userID, date,
		req.MorningStress, req.EveningStress, req.WorkloadRating, req.EnergyLevel, req.Notes)
	if err != nil {
		if errors.Is(err, logic.ErrInvalidRating) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, checkin)
}

// GetCheckins handles GET /checkins
func (c *CheckinController) GetCheckins(ctx *gin.Context) {
	userID, err := extractUserID(ctx)
	if err != nil {
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
	}

	checkins, err := c.checkinLogic.GetRecentCheckins(userID, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, checkins)
}

// GetSummary handles GET /checkins/summary
func (c *CheckinController) GetSummary(ctx *gin.Context) {
	userID, err := extractUserID(ctx)
	if err != nil {
		return
	}

	summary, err := c.checkinLogic.Summary(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}
