package logic

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/WorkZen2025/workzen-app/dao"
	"github.com/WorkZen2025/workzen-app/models"
)

type testStore struct {
	db         *gorm.DB
	userDAO    *dao.UserDAO
	checkinDAO *dao.CheckinDAO
	convoDAO   *dao.ConversationDAO
	prayerDAO  *dao.PrayerDAO
}

func newTestStore(t *testing.T) *testStore {
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
	return &testStore{
		db:         db,
		userDAO:    dao.NewUserDAO(db),
		checkinDAO: dao.NewCheckinDAO(db),
		convoDAO:   dao.NewConversationDAO(db),
		prayerDAO:  dao.NewPrayerDAO(db),
	}
}

func (s *testStore) user(t *testing.T, name string) *models.User {
	t.Helper()
	user, err := s.userDAO.GetOrCreateUser(name)
	require.NoError(t, err)
	return user
}
