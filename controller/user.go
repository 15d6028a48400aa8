package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WorkZen2025/workzen-app/logic"
)

// UserController handles HTTP requests
type UserController struct {
	userLogic *logic.UserLogic
}

func NewUserController(logic *logic.UserLogic) *UserController {
	return &UserController{userLogic: logic}
}

// Login handles POST /auth/login
func (c *UserController) Login(ctx *gin.Context) {
	type Request struct {
		Username string `json:"username" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, session, token, expireAt, err := c.userLogic.Login(req.Username)
	if err != nil {
		if err == logic.ErrEmptyUsername {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":      user,
		"token":     token,
		"expire_at": expireAt,
		"welcome":   session.Transcript[0].Content,
	})
}

// Logout handles POST /auth/logout
func (c *UserController) Logout(ctx *gin.Context) {
	sessionID, err := extractSessionID(ctx)
	if err != nil {
		return
	}

	c.userLogic.Logout(sessionID)
	ctx.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GetUser handles GET /user
func (c *UserController) GetUser(ctx *gin.Context) {
	userID, err := extractUserID(ctx)
	if err != nil {
		return
	}

	user, err := c.userLogic.GetUser(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
