package logic

import (
	"strings"

	"gorm.io/gorm"

	"github.com/WorkZen2025/workzen-app/dao"
	"github.com/WorkZen2025/workzen-app/models"
)

// PrayerLogic handles prayer request business logic
type PrayerLogic struct {
	prayerDAO *dao.PrayerDAO
}

func NewPrayerLogic(prayerDAO *dao.PrayerDAO) *PrayerLogic {
	return &PrayerLogic{prayerDAO: prayerDAO}
}

// SubmitPrayerRequest persists a new, unanswered request. Empty text is
// rejected before anything touches the store; an unset category defaults
// to "work".
func (l *PrayerLogic) SubmitPrayerRequest(userID uint64, text, category string) (*models.PrayerRequest, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyRequest
	}

	if category == "" {
		category = models.CategoryWork
	}
	if !validCategory(category) {
		return nil, ErrInvalidCategory
	}

	return l.prayerDAO.SavePrayerRequest(userID, text, category)
}

// ListPrayerRequests retrieves a user's requests, most recent first
func (l *PrayerLogic) ListPrayerRequests(userID uint64) ([]models.PrayerRequest, error) {
	return l.prayerDAO.ListPrayerRequests(userID)
}

// AnswerPrayerRequest transitions a request from unanswered to answered
// with the given testimony. The transition is one-way: answering an
// already-answered request fails with ErrAlreadyAnswered, and a missing
// ID fails with ErrNotFound.
func (l *PrayerLogic) AnswerPrayerRequest(id uint64, testimony string) (*models.PrayerRequest, error) {
	testimony = strings.TrimSpace(testimony)
	if testimony == "" {
		return nil, ErrEmptyTestimony
	}

	prayer, err := l.prayerDAO.GetPrayerRequest(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if prayer.IsAnswered {
		return nil, ErrAlreadyAnswered
	}

	answered, err := l.prayerDAO.MarkPrayerAnswered(id, testimony)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return answered, nil
}

func validCategory(category string) bool {
	for _, c := range models.PrayerCategories {
		if c == category {
			return true
		}
	}
	return false
}
