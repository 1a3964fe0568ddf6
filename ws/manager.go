package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Conn is the subset of *websocket.Conn the hub needs.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Event is the payload broadcast to a user's subscribers after a
// generation completes.
type Event struct {
	Event       string `json:"event"`
	UserID      string `json:"user_id"`
	ImageID     string `json:"image_id"`
	ImageURL    string `json:"image_url"`
	GeneratedAt string `json:"generated_at"`
}

// Manager keeps track of active event subscriptions per user.
type Manager struct {
	mu          sync.RWMutex
	subscribers map[string]map[Conn]struct{} // userID -> conns
}

func NewManager() *Manager {
	return &Manager{subscribers: make(map[string]map[Conn]struct{})}
}

// Subscribe registers a connection for a user's events.
func (m *Manager) Subscribe(userID string, conn Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.subscribers[userID] == nil {
		m.subscribers[userID] = make(map[Conn]struct{})
	}
	m.subscribers[userID][conn] = struct{}{}
}

// Unsubscribe removes a connection and closes it.
func (m *Manager) Unsubscribe(userID string, conn Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conns, ok := m.subscribers[userID]; ok {
		if _, ok := conns[conn]; ok {
			_ = conn.Close()
			delete(conns, conn)
		}
		if len(conns) == 0 {
			delete(m.subscribers, userID)
		}
	}
}

// PublishImageGenerated broadcasts a generation event to the user's
// subscribers. Connections that fail to take the write are dropped;
// delivery is best-effort and never blocks the request that produced it.
func (m *Manager) PublishImageGenerated(userID, imageID, imageURL, generatedAt string) {
	payload, err := json.Marshal(Event{
		Event:       "image_generated",
		UserID:      userID,
		ImageID:     imageID,
		ImageURL:    imageURL,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		log.Printf("failed to encode event for user %s: %v", userID, err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	conns := m.subscribers[userID]
	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			_ = conn.Close()
			delete(conns, conn)
		}
	}
	if len(conns) == 0 {
		delete(m.subscribers, userID)
	}
}

// SubscriberCount returns how many connections a user currently has.
func (m *Manager) SubscriberCount(userID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subscribers[userID])
}
