package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"salesdesk-be/internal/dto"
	"salesdesk-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// clusterChannel is the redis pub/sub channel shared by all instances, so a
// notice reaches the client no matter which instance holds its socket.
const clusterChannel = "salesdesk_notices"

type Hub struct {
	// Registered clients map: session token -> list of clients (multi-tab)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance delivery; nil for single instance.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.Token] = append(h.clients[client.Token], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"token": client.Token})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.Token]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.Token] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.Token]) == 0 {
					delete(h.clients, client.Token)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"token": client.Token})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send pushes a notice to every socket registered under a session token.
// Satisfies the service layer's NoticeDelivery interface.
func (h *Hub) Send(token string, notice dto.Notice) {
	data, _ := json.Marshal(notice)

	h.mu.RLock()
	clients, localFound := h.clients[token]
	h.mu.RUnlock()

	if localFound {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				// The unregister handler is the only closer of client.Send.
				h.logger.Warn("Hub", "Client send buffer full, dropping notice", map[string]interface{}{"token": token})
				h.unregister <- client
			}
		}
	}

	// Always publish: the token's socket may live on another instance, or the
	// same user may have tabs on several instances.
	if h.rdb != nil {
		payload := map[string]interface{}{
			"target_token": token,
			"message":      data,
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), clusterChannel, jsonPayload)
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			TargetToken string          `json:"target_token"`
			Message     json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		h.mu.RLock()
		clients, ok := h.clients[payload.TargetToken]
		h.mu.RUnlock()

		if ok {
			for _, client := range clients {
				select {
				case client.Send <- payload.Message:
				default:
					h.unregister <- client
				}
			}
		}
	}
}
