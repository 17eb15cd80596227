package ws

import (
	"encoding/json"
	"sync"

	"k9hope_backend/internal/logger"
)

// Manager tracks connected clients by user id and fans events out to
// them. It implements services.NotificationPublisher.
type Manager struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes connect and disconnect events. Start it once in its own
// goroutine.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.add(client)
		case client := <-m.unregister:
			m.remove(client)
		}
	}
}

func (m *Manager) add(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clients[client.userID] == nil {
		m.clients[client.userID] = make(map[*Client]struct{})
	}
	m.clients[client.userID][client] = struct{}{}
	logger.Debug("ws client connected", "user_id", client.userID)
}

func (m *Manager) remove(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if conns, ok := m.clients[client.userID]; ok {
		if _, ok := conns[client]; ok {
			delete(conns, client)
			close(client.send)
			if len(conns) == 0 {
				delete(m.clients, client.userID)
			}
		}
	}
	logger.Debug("ws client disconnected", "user_id", client.userID)
}

// PublishToUser serialises the payload and queues it on every open
// connection for the user. Slow clients are dropped rather than
// blocking the publisher.
func (m *Manager) PublishToUser(userID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.WithError(err).Error("ws publish: marshal failed")
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for client := range m.clients[userID] {
		select {
		case client.send <- data:
		default:
			go func(c *Client) { m.unregister <- c }(client)
		}
	}
}
