package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/conneroisu/italia/internal/logging"
	"github.com/conneroisu/italia/internal/validation"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period.
	pingPeriod = 54 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Messages queued per client before it is dropped as too slow.
	sendBuffer = 256
)

// Message types sent to gallery pages.
const (
	MessageConnected     = "connected"
	MessageReload        = "reload"
	MessageExamplesError = "examples_error"
)

// UpdateMessage is the JSON payload pushed to gallery pages.
type UpdateMessage struct {
	Type string `json:"type"`
	// Target names the changed component, empty for a full reload.
	Target    string    `json:"target,omitempty"`
	Event     string    `json:"event,omitempty"`
	Content   string    `json:"content,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Client is one connected gallery page.
type Client struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// Hub fans messages out to every connected client.
type Hub struct {
	clients      map[*Client]struct{}
	clientsMutex sync.RWMutex
	logger       logging.Logger
}

func newHub(logger logging.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	return len(h.clients)
}

// Broadcast queues msg for every client. Clients whose queue is full are
// disconnected.
func (h *Hub) Broadcast(msg UpdateMessage) {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error(context.Background(), err, "Failed to encode update message", "type", msg.Type)
		return
	}

	var slow []*Client

	h.clientsMutex.RLock()
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.clientsMutex.RUnlock()

	for _, client := range slow {
		h.logger.Warn(context.Background(), nil, "Dropping slow websocket client")
		h.unregister(client)
	}
}

func (h *Hub) register(client *Client) {
	h.clientsMutex.Lock()
	h.clients[client] = struct{}{}
	count := len(h.clients)
	h.clientsMutex.Unlock()

	h.logger.Debug(context.Background(), "Client connected", "clients", count)
}

// unregister closes the client's queue, which ends its write pump.
func (h *Hub) unregister(client *Client) {
	h.clientsMutex.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
		close(client.send)
	}
	count := len(h.clients)
	h.clientsMutex.Unlock()

	if ok {
		h.logger.Debug(context.Background(), "Client disconnected", "clients", count)
	}
}

func (h *Hub) closeAll() {
	h.clientsMutex.Lock()
	defer h.clientsMutex.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if err := s.checkOrigin(r); err != nil {
		s.logger.Warn(r.Context(), err, "Rejected websocket connection", "origin", r.Header.Get("Origin"))
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.originHosts(),
	})
	if err != nil {
		s.logger.Warn(r.Context(), err, "WebSocket upgrade failed")
		return
	}
	conn.SetReadLimit(maxMessageSize)

	client := &Client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		hub:  s.hub,
	}
	s.hub.register(client)

	hello, _ := json.Marshal(UpdateMessage{Type: MessageConnected, Timestamp: time.Now()})
	client.send <- hello

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	go client.writePump(ctx)
	client.readPump(ctx)
}

// allowedOrigins lists the server's own addresses plus server.allowed_origins.
func (s *Server) allowedOrigins() []string {
	port := s.config.Server.Port
	origins := []string{
		s.config.Server.Address(),
		fmt.Sprintf("localhost:%d", port),
		fmt.Sprintf("127.0.0.1:%d", port),
	}
	if addr := s.Addr(); addr != "" {
		origins = append(origins, addr)
	}

	return append(origins, s.config.Server.AllowedOrigins...)
}

// originHosts reduces allowedOrigins to host patterns for websocket.Accept.
func (s *Server) originHosts() []string {
	origins := s.allowedOrigins()
	hosts := make([]string, 0, len(origins))
	for _, origin := range origins {
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			hosts = append(hosts, u.Host)
			continue
		}
		hosts = append(hosts, origin)
	}

	return hosts
}

func (s *Server) checkOrigin(r *http.Request) error {
	return validation.ValidateOrigin(r.Header.Get("Origin"), s.allowedOrigins())
}

// readPump drains the connection until the peer goes away. Pages never send
// anything meaningful, but reading is what processes pongs and close frames.
func (c *Client) readPump(ctx context.Context) {
	defer c.hub.unregister(c)

	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
				c.hub.logger.Debug(ctx, "WebSocket read ended", "error", err.Error())
			}
			return
		}
	}
}

// writePump sends queued messages and periodic pings. It closes the
// connection once the queue is closed.
func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case message, ok := <-c.send:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}
		}
	}
}
