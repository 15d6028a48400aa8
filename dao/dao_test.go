package dao

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/WorkZen2025/workzen-app/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.StressCheckin{},
		&models.Conversation{},
		&models.PrayerRequest{},
	))
	return db
}

func TestGetOrCreateUser(t *testing.T) {
	db := openTestDB(t)
	userDAO := NewUserDAO(db)

	first, err := userDAO.GetOrCreateUser("Alice")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := userDAO.GetOrCreateUser("Alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "repeated login must not create a second row")

	other, err := userDAO.GetOrCreateUser("Bob")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestUserUniqueIndex(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&models.User{Username: "Alice"}).Error)
	err := db.Create(&models.User{Username: "Alice"}).Error
	assert.Error(t, err, "the unique index is the duplicate-identity guard")
}

func TestCheckinRoundTrip(t *testing.T) {
	db := openTestDB(t)
	userDAO := NewUserDAO(db)
	checkinDAO := NewCheckinDAO(db)

	user, err := userDAO.GetOrCreateUser("Alice")
	require.NoError(t, err)

	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	saved, err := checkinDAO.SaveCheckin(user.ID, date, 6, 3, 8, 4, "long standup, peaceful evening")
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	checkins, err := checkinDAO.GetRecentCheckins(user.ID, 30)
	require.NoError(t, err)
	require.Len(t, checkins, 1)

	got := checkins[0]
	assert.True(t, got.Date.Equal(date))
	assert.Equal(t, 6, got.MorningStress)
	assert.Equal(t, 3, got.EveningStress)
	assert.Equal(t, 8, got.WorkloadRating)
	assert.Equal(t, 4, got.EnergyLevel)
	assert.Equal(t, "long standup, peaceful evening", got.Notes)
}

func TestGetRecentCheckinsOrderAndLimit(t *testing.T) {
	db := openTestDB(t)
	userDAO := NewUserDAO(db)
	checkinDAO := NewCheckinDAO(db)

	user, err := userDAO.GetOrCreateUser("Alice")
	require.NoError(t, err)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 35; i++ {
		_, err := checkinDAO.SaveCheckin(user.ID, base.AddDate(0, 0, i), 5, 5, 5, 5, "")
		require.NoError(t, err)
	}

	checkins, err := checkinDAO.GetRecentCheckins(user.ID, 0)
	require.NoError(t, err)
	assert.Len(t, checkins, DefaultCheckinLimit)
	assert.True(t, checkins[0].Date.After(checkins[1].Date), "most recent first")

	// Same-day submissions are permitted and all persist
	dup, err := checkinDAO.SaveCheckin(user.ID, base.AddDate(0, 0, 34), 9, 9, 9, 9, "second submission")
	require.NoError(t, err)
	checkins, err = checkinDAO.GetRecentCheckins(user.ID, 2)
	require.NoError(t, err)
	require.Len(t, checkins, 2)
	assert.Equal(t, dup.ID, checkins[0].ID)
}

func TestConversationTurns(t *testing.T) {
	db := openTestDB(t)
	userDAO := NewUserDAO(db)
	convoDAO := NewConversationDAO(db)

	user, err := userDAO.GetOrCreateUser("Alice")
	require.NoError(t, err)

	_, err = convoDAO.SaveConversationTurn(user.ID, "first question", "first answer")
	require.NoError(t, err)
	_, err = convoDAO.SaveConversationTurn(user.ID, "second question", "second answer")
	require.NoError(t, err)

	turns, err := convoDAO.GetRecentConversations(user.ID, 0)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "second question", turns[0].Message)
	assert.Equal(t, "second answer", turns[0].Response)
	assert.False(t, turns[0].CreatedAt.IsZero(), "timestamp is server-assigned")
}

func TestPrayerRequestLifecycle(t *testing.T) {
	db := openTestDB(t)
	userDAO := NewUserDAO(db)
	prayerDAO := NewPrayerDAO(db)

	user, err := userDAO.GetOrCreateUser("Alice")
	require.NoError(t, err)

	prayer, err := prayerDAO.SavePrayerRequest(user.ID, "interview on Friday", models.CategoryWork)
	require.NoError(t, err)
	assert.False(t, prayer.IsAnswered)
	assert.Nil(t, prayer.AnsweredAt)

	answered, err := prayerDAO.MarkPrayerAnswered(prayer.ID, "Got the job!")
	require.NoError(t, err)
	assert.True(t, answered.IsAnswered)
	assert.Equal(t, "Got the job!", answered.AnsweredText)
	require.NotNil(t, answered.AnsweredAt)
}

func TestMarkPrayerAnsweredMissingID(t *testing.T) {
	db := openTestDB(t)
	prayerDAO := NewPrayerDAO(db)

	_, err := prayerDAO.MarkPrayerAnswered(12345, "never happened")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListPrayerRequestsOrder(t *testing.T) {
	db := openTestDB(t)
	userDAO := NewUserDAO(db)
	prayerDAO := NewPrayerDAO(db)

	user, err := userDAO.GetOrCreateUser("Alice")
	require.NoError(t, err)

	older, err := prayerDAO.SavePrayerRequest(user.ID, "older request", models.CategoryFamily)
	require.NoError(t, err)
	newer, err := prayerDAO.SavePrayerRequest(user.ID, "newer request", models.CategoryHealth)
	require.NoError(t, err)

	prayers, err := prayerDAO.ListPrayerRequests(user.ID)
	require.NoError(t, err)
	require.Len(t, prayers, 2)
	assert.Equal(t, newer.ID, prayers[0].ID)
	assert.Equal(t, older.ID, prayers[1].ID)
}
