package logic

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"github.com/WorkZen2025/workzen-app/config"
	"github.com/WorkZen2025/workzen-app/dao"
	"github.com/WorkZen2025/workzen-app/models"
)

// UserLogic handles login, logout and identity lookup
type UserLogic struct {
	userDAO  *dao.UserDAO
	sessions *SessionManager
}

func NewUserLogic(userDAO *dao.UserDAO, sessions *SessionManager) *UserLogic {
	return &UserLogic{
		userDAO:  userDAO,
		sessions: sessions,
	}
}

// GetUser retrieves user info
func (l *UserLogic) GetUser(userID uint64) (*models.User, error) {
	return l.userDAO.GetUserByID(userID)
}

func (l *UserLogic) generateJWT(userID uint64, sessionID uuid.UUID) (string, time.Time, error) {
	expireAt := time.Now().Add(time.Duration(config.GlobalConfig.Auth.ExpHour) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    userID,
		"session_id": sessionID.String(),
		"exp":        expireAt.Unix(),
	})
	tokenString, err := token.SignedString([]byte(config.GlobalConfig.Auth.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expireAt, nil
}

// Login resolves or creates the identity behind a display name, opens a
// session and issues a token bound to it.
func (l *UserLogic) Login(username string) (*models.User, *Session, string, time.Time, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil, "", time.Time{}, ErrEmptyUsername
	}

	user, err := l.userDAO.GetOrCreateUser(username)
	if err != nil {
		return nil, nil, "", time.Time{}, err
	}

	session := l.sessions.Create(user.ID, user.Username)

	token, expireAt, err := l.generateJWT(user.ID, session.ID)
	if err != nil {
		l.sessions.Delete(session.ID)
		return nil, nil, "", time.Time{}, err
	}

	return user, session, token, expireAt, nil
}

// Logout destroys the session behind a token's session ID
func (l *UserLogic) Logout(sessionID uuid.UUID) {
	l.sessions.Delete(sessionID)
}

// GetSession retrieves a live session by ID
func (l *UserLogic) GetSession(sessionID uuid.UUID) (*Session, error) {
	session, ok := l.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
