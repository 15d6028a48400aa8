package controller

import (
	"errors"
	"net/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func extractClaims(c *gin.Context) (jwt.MapClaims, error) {
	userClaims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return nil, errors.New("user not found in context")
	}

	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user claims"})
		return nil, errors.New("invalid user claims")
	}

	return claims, nil
}

func extractUserID(c *gin.Context) (uint64, error) {
	claims, err := extractClaims(c)
	if err != nil {
		return 0, err
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID < 1 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_id not found in token"})
		return 0, errors.New("user_id not found in token")
	}

	return uint64(userID), nil
}

func extractSessionID(c *gin.Context) (uuid.UUID, error) {
	claims, err := extractClaims(c)
	if err != nil {
		return uuid.Nil, err
	}

	raw, ok := claims["session_id"].(string)
	if !ok || raw == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session_id not found in token"})
		return uuid.Nil, errors.New("session_id not found in token")
	}

	sessionID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid session ID"})
		return uuid.Nil, err
	}

	return sessionID, nil
}
