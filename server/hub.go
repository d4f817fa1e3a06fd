package server

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

const broadcastTimeout = 3 * time.Second

// Hub tracks connected websocket clients and fans layouts out to them
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) snapshot() []*websocket.Conn {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	return conns
}

// Broadcast sends message to every client, dropping the ones that fail.
// Writes happen outside the lock so a slow client does not block Add or Remove.
func (h *Hub) Broadcast(message []byte) {
	for _, conn := range h.snapshot() {
		ctx, cancel := context.WithTimeout(context.Background(), broadcastTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			h.Remove(conn)
		}
	}
}

// CloseAll disconnects every client
func (h *Hub) CloseAll() {
	conns := h.snapshot()
	for _, conn := range conns {
		h.Remove(conn)
	}

	for _, conn := range conns {
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}
