package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"fightboard/internal/observability"
)

const (
	// MaxWSConnectionsTotal is a total WebSocket connection figure; no handler
	// checks it, so only the per-IP limit below is enforced.
	MaxWSConnectionsTotal = 500

	// MaxWSConnectionsPerIP is the maximum WebSocket connections per IP.
	MaxWSConnectionsPerIP = 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if IsAllowedOrigin(origin) {
			return true
		}
		log.Printf("websocket connection rejected from origin: %s", origin)
		observability.RecordConnectionRejected("origin")
		return false
	},
}

// wsClient tracks a WebSocket connection with its source IP.
type wsClient struct {
	conn *websocket.Conn
	ip   string
}

// WebSocketHub tracks connections relaying a round's event stream to
// connected debug clients, with the same connection-limiting shape as a
// game-state broadcast hub.
type WebSocketHub struct {
	clients   map[*websocket.Conn]*wsClient
	register  chan *wsClient
	wsLimiter *WebSocketRateLimiter
}

// NewWebSocketHub creates a new hub with connection limiting.
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		clients:   make(map[*websocket.Conn]*wsClient),
		register:  make(chan *wsClient),
		wsLimiter: NewWebSocketRateLimiter(MaxWSConnectionsPerIP),
	}
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	return len(h.clients)
}

// handleRoundStream relays a completed round's recorded events to the
// connecting client, paced by the engine's configured cast delay so a
// debug client can watch the round unfold the way it would have live.
// Recorded replay rather than a true live relay: POST /rounds resolves
// synchronously before any client has a chance to subscribe, so "driven by
// on_step" here means replaying what on_step captured, not a concurrent feed.
func (h *routerHandlers) handleRoundStream(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, ok := h.log.Get(id)
	if !ok {
		http.Error(w, "round not found", http.StatusNotFound)
		return
	}

	ip := GetClientIP(r)
	if !h.hub.wsLimiter.Allow(ip) {
		observability.RecordConnectionRejected("ws_limit")
		http.Error(w, "too many connections from your IP", http.StatusTooManyRequests)
		return
	}
	defer h.hub.wsLimiter.Release(ip)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	observability.UpdateWSConnections(h.hub.ClientCount() + 1)
	defer observability.UpdateWSConnections(h.hub.ClientCount())

	pace := time.Duration(h.engineOpts.CastDelayMS) * time.Millisecond
	if pace <= 0 {
		pace = 50 * time.Millisecond
	}

	for _, ev := range rec.Events {
		msg, err := json.Marshal(ev)
		if err != nil {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
		observability.IncrementWSMessages()
		time.Sleep(pace)
	}
}
