package logic

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/WorkZen2025/workzen-app/dao"
	"github.com/WorkZen2025/workzen-app/models"
)

// ChatLogic sequences a chat turn: transcript append, context construction,
// responder call, then persistence of the finished pair.
type ChatLogic struct {
	convoDAO   *dao.ConversationDAO
	checkinDAO *dao.CheckinDAO
	responder  *ResponderLogic
	now        func() time.Time
}

func NewChatLogic(convoDAO *dao.ConversationDAO, checkinDAO *dao.CheckinDAO, responder *ResponderLogic) *ChatLogic {
	return &ChatLogic{
		convoDAO:   convoDAO,
		checkinDAO: checkinDAO,
		responder:  responder,
		now:        time.Now,
	}
}

// HandleMessage produces the assistant response for one user message and
// persists the turn. The response text is always returned; a non-nil error
// means the turn could not be persisted, which callers must surface rather
// than swallow.
func (l *ChatLogic) HandleMessage(ctx context.Context, session *Session, message string) (string, error) {
	session.append("user", message)

	hour := l.now().Hour()
	chatCtx := ChatContext{Hour: &hour}
	if stress, ok := l.recentStressLevel(session.UserID); ok {
		chatCtx.RecentStressLevel = &stress
	}

	response := l.responder.Respond(ctx, message, chatCtx)
	session.append("assistant", response)

	if _, err := l.convoDAO.SaveConversationTurn(session.UserID, message, response); err != nil {
		return response, err
	}
	return response, nil
}

// recentStressLevel derives the prompt's stress annotation from the user's
// most recent stored check-in: the rounded mean of morning and evening
// stress. Absent check-ins mean no annotation.
func (l *ChatLogic) recentStressLevel(userID uint64) (int, bool) {
	checkins, err := l.checkinDAO.GetRecentCheckins(userID, 1)
	if err != nil || len(checkins) == 0 {
		return 0, false
	}
	latest := checkins[0]
	mean := float64(latest.MorningStress+latest.EveningStress) / 2
	return int(math.Round(mean)), true
}

// GetRecentConversations retrieves persisted transcript rows, most recent first
func (l *ChatLogic) GetRecentConversations(userID uint64, limit int) ([]models.Conversation, error) {
	return l.convoDAO.GetRecentConversations(userID, limit)
}

// WelcomeMessage is the greeting seeded into every new session transcript
func WelcomeMessage(username string) string {
	return fmt.Sprintf(`👋 Welcome to WorkZen, %s! I'm here to provide biblical encouragement and practical support for your workplace challenges.

Feel free to share:
• What's stressing you at work today
• Difficult situations you're facing
• Prayer requests for your workplace
• Questions about faith and work

How can I support you today?`, username)
}
