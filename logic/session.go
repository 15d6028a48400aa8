package logic

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TranscriptEntry is one message of an in-memory session transcript.
type TranscriptEntry struct {
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Session holds the per-login state: the resolved identity and the
// in-memory transcript. Created at login, destroyed at logout.
type Session struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uint64            `json:"user_id"`
	Username   string            `json:"username"`
	Transcript []TranscriptEntry `json:"transcript"`
	CreatedAt  time.Time         `json:"created_at"`
}

func (s *Session) append(role, content string) {
	s.Transcript = append(s.Transcript, TranscriptEntry{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
}

// SessionManager is the registry of live sessions.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[uuid.UUID]*Session)}
}

// Create opens a session for a user and seeds it with the welcome message
func (m *SessionManager) Create(userID uint64, username string) *Session {
	session := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  username,
		CreatedAt: time.Now(),
	}
	session.append("assistant", WelcomeMessage(username))

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return session
}

// Get retrieves a live session by ID
func (m *SessionManager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	return session, ok
}

// Delete destroys a session. Deleting an unknown ID is a no-op.
func (m *SessionManager) Delete(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
