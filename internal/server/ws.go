package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/anupamd/mudra/internal/dispatch"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// GestureFeed broadcasts emitted gesture commands to WebSocket clients.
// The pipeline publishes into the feed through the dispatcher's OnEmit
// hook, so clients only see debounced emissions, never raw frames.
type GestureFeed struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool
}

// NewGestureFeed creates an empty feed.
func NewGestureFeed() *GestureFeed {
	return &GestureFeed{
		clients: make(map[*websocket.Conn]bool),
	}
}

type feedMessage struct {
	Combined  string `json:"combined"`
	Command   string `json:"command"`
	Timestamp int64  `json:"timestamp"`
}

// Publish sends an emission to every connected client. Safe to call with
// no clients connected.
func (f *GestureFeed) Publish(e dispatch.Emission) {
	msg, err := json.Marshal(feedMessage{
		Combined:  e.Combined,
		Command:   e.Command,
		Timestamp: e.At.UnixMilli(),
	})
	if err != nil {
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()
	for conn := range f.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("websocket write error: %v", err)
		}
	}
}

// ClientCount returns the number of connected clients.
func (f *GestureFeed) ClientCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.clients)
}

// ServeHTTP upgrades the request to a WebSocket connection and keeps it
// registered until the client disconnects.
func (f *GestureFeed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.clients, conn)
		f.mu.Unlock()
	}()

	// Drain incoming messages until the client goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
