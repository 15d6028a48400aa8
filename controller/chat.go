package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WorkZen2025/workzen-app/logic"
)

// ChatController handles HTTP requests
type ChatController struct {
	chatLogic *logic.ChatLogic
	userLogic *logic.UserLogic
}

func NewChatController(chatLogic *logic.ChatLogic, userLogic *logic.UserLogic) *ChatController {
	return &ChatController{chatLogic: chatLogic, userLogic: userLogic}
}

// SendMessage handles POST /chat
func (c *ChatController) SendMessage(ctx *gin.Context) {
	type Request struct {
		Message string `json:"message" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID, err := extractSessionID(ctx)
	if err != nil {
		return
	}
	session, err := c.userLogic.GetSession(sessionID)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "session expired, log in again"})
		return
	}

	response, err := c.chatLogic.HandleMessage(ctx.Request.Context(), session, req.Message)
	if err != nil {
		// The response was produced but the turn could not be saved.
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":    err.Error(),
			"response": response,
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"response": response})
}

// GetConversations handles GET /conversations
func (c *ChatController) GetConversations(ctx *gin.Context) {
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

	turns, err := c.chatLogic.GetRecentConversations(userID, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, turns)
}
