package dao

import (
	"gorm.io/gorm"

	"github.com/WorkZen2025/workzen-app/models"
)

// ConversationDAO handles conversation-related database operations
type ConversationDAO struct {
	db *gorm.DB
}

func NewConversationDAO(db *gorm.DB) *ConversationDAO {
	return &ConversationDAO{db: db}
}

// SaveConversationTurn appends a (message, response) pair to the transcript.
// The timestamp is server-assigned by gorm on insert.
func (d *ConversationDAO) SaveConversationTurn(userID uint64, message, response string) (*models.Conversation, error) {
	turn := &models.Conversation{
		UserID:   userID,
		Message:  message,
		Response: response,
	}
	if err := d.db.Create(turn).Error; err != nil {
		return nil, err
	}
	return turn, nil
}

// GetRecentConversations retrieves up to limit transcript rows, most recent first
func (d *ConversationDAO) GetRecentConversations(userID uint64, limit int) ([]models.Conversation, error) {
	var turns []models.Conversation
	q := d.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&turns).Error; err != nil {
		return nil, err
	}
	return turns, nil
}
