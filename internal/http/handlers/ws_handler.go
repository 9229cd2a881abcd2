package handlers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/admaster/backend/internal/auth"
	"github.com/admaster/backend/internal/events"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WSHub fans realtime updates out to connected clients. Crawl progress
// and campaign creation events arrive over Redis pub/sub and every
// authenticated connection of the affected user gets them.
type WSHub struct {
	verifier    *auth.ClerkVerifier
	subscriber  events.Subscriber
	log         *zap.Logger
	mu          sync.RWMutex
	connections map[string][]*websocket.Conn
}

func NewWSHub(verifier *auth.ClerkVerifier, subscriber events.Subscriber, log *zap.Logger) *WSHub {
	return &WSHub{
		verifier:    verifier,
		subscriber:  subscriber,
		log:         log,
		connections: make(map[string][]*websocket.Conn),
	}
}

func (h *WSHub) Start(ctx context.Context) {
	err := h.subscriber.Subscribe(ctx, events.StreamUpdates, func(event events.Event) {
		h.dispatch(event)
	})
	if err != nil {
		h.log.Error("updates subscription failed, realtime push disabled", zap.Error(err))
	}
}

// dispatch routes an event to its user when the payload names one,
// otherwise to every connection.
func (h *WSHub) dispatch(event events.Event) {
	if userID, ok := event.Payload["user_id"].(string); ok && userID != "" {
		h.SendToUser(userID, event)
		return
	}
	h.broadcast(event)
}

func (h *WSHub) broadcast(event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conns := range h.connections {
		for _, conn := range conns {
			_ = conn.WriteMessage(websocket.TextMessage, data)
		}
	}
}

// SendToUser delivers an event to a single user's connections.
func (h *WSHub) SendToUser(clerkUserID string, event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.connections[clerkUserID] {
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
}

// WSUpgradeMiddleware checks for websocket upgrade
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (h *WSHub) HandleWS(conn *websocket.Conn) {
	tokenStr := conn.Query("token")
	if tokenStr == "" {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"missing token"}`))
		conn.Close()
		return
	}

	claims, err := h.verifier.Verify(context.Background(), tokenStr)
	if err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
		conn.Close()
		return
	}
	clerkUserID := claims.Subject

	h.mu.Lock()
	h.connections[clerkUserID] = append(h.connections[clerkUserID], conn)
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		conns := h.connections[clerkUserID]
		for i, c := range conns {
			if c == conn {
				h.connections[clerkUserID] = append(conns[:i], conns[i+1:]...)
				break
			}
		}
		if len(h.connections[clerkUserID]) == 0 {
			delete(h.connections, clerkUserID)
		}
		h.mu.Unlock()
		conn.Close()
	}()

	// Read loop (keep alive / pings)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
