package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

type message struct {
	userID uuid.UUID
	data   []byte
}

// Hub routes notifications to the websocket connections of a single user.
// A user may hold several connections at once.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	outbound   chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		outbound:   make(chan message, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves registrations and deliveries until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.stopOnce.Do(func() { close(h.done) })
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
			total := h.countLocked()
			h.mutex.Unlock()
			h.logger.Printf("WS connected | user=%s total_clients=%d", client.userID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.removeLocked(client)
			total := h.countLocked()
			h.mutex.Unlock()
			h.logger.Printf("WS disconnected | user=%s total_clients=%d", client.userID, total)

		case msg := <-h.outbound:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[msg.userID]))
			for c := range h.clients[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.data:
				default:
					h.mutex.Lock()
					h.removeLocked(client)
					h.mutex.Unlock()
				}
			}
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	set, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, set := range h.clients {
		for c := range set {
			h.removeLocked(c)
		}
	}
}

func (h *Hub) countLocked() int {
	total := 0
	for _, set := range h.clients {
		total += len(set)
	}
	return total
}

// Register queues client for the hub. It is a no-op once Run has stopped.
func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.register <- client:
	case <-h.done:
	}
}

// Unregister queues client for removal. After Run has stopped every client
// is already closed, so the request is dropped.
func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// NotifyUser encodes payload as JSON and queues it for every connection of
// userID. Payloads are dropped when the queue is full.
func (h *Hub) NotifyUser(userID uuid.UUID, payload any) {
	if h == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		h.logger.Printf("WS notify encode error | user=%s error=%v", userID, err)
		return
	}
	select {
	case h.outbound <- message{userID: userID, data: b}:
	default:
		h.logger.Printf("WS notify dropped | user=%s reason=buffer_full", userID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.countLocked()
}
