// Package notifications pushes scan progress to browsers over WebSocket.
// Clients subscribe to individual scan IDs; scan-level updates go to
// everyone, stage-level updates only to the subscribers of that scan.
package notifications

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/daireto/phishing-url-detector/internal/metrics"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// Hub manages WebSocket connections and message broadcasting
type Hub struct {
	connections map[*Connection]bool
	mu          sync.RWMutex
	metrics     *metrics.NotificationsMetrics
	log         *slog.Logger
}

// HubOption configures the Hub
type HubOption func(*Hub)

// NewHub creates a new WebSocket hub with optional configurations
func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		connections: make(map[*Connection]bool),
		log:         slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// WithHubMetrics sets the metrics collector for the hub
func WithHubMetrics(m *metrics.NotificationsMetrics) HubOption {
	return func(h *Hub) { h.metrics = m }
}

// WithHubLogger sets the logger for the hub
func WithHubLogger(log *slog.Logger) HubOption {
	return func(h *Hub) { h.log = log }
}

// AddConnection adds a new WebSocket connection to the hub
func (h *Hub) AddConnection(conn *Connection) {
	h.mu.Lock()
	h.connections[conn] = true
	count := len(h.connections)
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.RecordWebSocketConnection(true)
		h.metrics.SetActiveWebSocketConnections(count)
	}

	h.log.Info("New WebSocket connection established", slog.Int("total", count))
}

// RemoveConnection removes a WebSocket connection from the hub
func (h *Hub) RemoveConnection(conn *Connection) {
	h.mu.Lock()
	delete(h.connections, conn)
	count := len(h.connections)
	h.mu.Unlock()

	if h.metrics != nil {
		d := time.Since(conn.start).Seconds()
		h.metrics.RecordWebSocketConnectionDuration(d)
		h.metrics.SetActiveWebSocketConnections(count)
	}

	h.log.Info("WebSocket connection closed", slog.Int("total", count))
}

// BroadcastToScan sends a message to the connections subscribed to a scan.
// An empty scan ID broadcasts to every connection.
func (h *Hub) BroadcastToScan(msg any, scanID string) {
	start := time.Now()

	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("Failed to marshal message", slog.Any("error", err))
		return
	}

	msgType := extractMessageType(msg)

	h.mu.RLock()
	defer h.mu.RUnlock()

	successCount := 0
	totalCount := 0

	for conn := range h.connections {
		if scanID != "" && !conn.HasScan(scanID) {
			continue
		}

		totalCount++
		if err := conn.WriteMessage(data); err != nil {
			h.log.Error("Failed to write to websocket", slog.Any("error", err))
			if h.metrics != nil {
				h.metrics.RecordWebSocketMessage(msgType, false, 0)
			}

			// Remove connection on error
			go func(c *Connection) {
				h.RemoveConnection(c)
				c.Close()
			}(conn)
		} else {
			successCount++
		}
	}

	if totalCount > 0 && h.metrics != nil {
		d := time.Since(start).Seconds()
		h.metrics.RecordWebSocketMessage(msgType, successCount == totalCount, d)
	}
}

// Broadcast sends a message to all connected clients
func (h *Hub) Broadcast(msg any) {
	h.BroadcastToScan(msg, "")
}

// RecordScanSubscription records subscription metrics
func (h *Hub) RecordScanSubscription(action, scanID string) {
	if h.metrics != nil {
		h.metrics.RecordGroupSubscription(action, scanID)
	}
}

// Close shuts down the hub and closes all connections
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.connections {
		conn.Close()
	}

	h.connections = make(map[*Connection]bool)
	h.log.Info("WebSocket hub closed")
}

// extractMessageType pulls the type field out of a message for metrics.
// Bus messages serialize it under the "type" key.
func extractMessageType(msg any) string {
	if m, ok := msg.(map[string]any); ok {
		if t, ok := m["type"].(string); ok {
			return t
		}
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return "unknown"
	}
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil || envelope.Type == "" {
		return "unknown"
	}
	return envelope.Type
}

// Connection represents a WebSocket connection with scan subscriptions
type Connection struct {
	conn  *websocket.Conn
	scans []string
	mu    sync.RWMutex
	hub   *Hub
	log   *slog.Logger
	start time.Time
}

// SubscriptionMessage represents a subscription/unsubscription request
type SubscriptionMessage struct {
	Action string `json:"action"`
	ScanID string `json:"scan_id"`
}

// NewConnection creates a new WebSocket connection wrapper
func NewConnection(conn *websocket.Conn, hub *Hub, log *slog.Logger) *Connection {
	return &Connection{
		conn:  conn,
		scans: make([]string, 0),
		hub:   hub,
		log:   log,
		start: time.Now(),
	}
}

// AddScan subscribes the connection to a scan
func (c *Connection) AddScan(scanID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !slices.Contains(c.scans, scanID) {
		c.scans = append(c.scans, scanID)
	}
}

// RemoveScan unsubscribes the connection from a scan
func (c *Connection) RemoveScan(scanID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, id := range c.scans {
		if id == scanID {
			c.scans = append(c.scans[:i], c.scans[i+1:]...)
			break
		}
	}
}

// HasScan checks if the connection is subscribed to a scan
func (c *Connection) HasScan(scanID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.scans, scanID)
}

// WriteMessage sends a message to the WebSocket connection
func (c *Connection) WriteMessage(msg []byte) error {
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// Close closes the WebSocket connection
func (c *Connection) Close() error {
	return c.conn.Close()
}

// ReadLoop continuously reads messages from the WebSocket connection
func (c *Connection) ReadLoop() {
	defer func() {
		c.hub.RemoveConnection(c)
		c.conn.Close()
	}()

	for {
		msgType, p, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.Error("Unexpected websocket close error", slog.Any("error", err))
			}
			break
		}

		if msgType == websocket.TextMessage {
			c.handleSubscriptionMessage(p)
		}
	}
}

// handleSubscriptionMessage processes subscription/unsubscription requests
func (c *Connection) handleSubscriptionMessage(data []byte) {
	var sub SubscriptionMessage
	if err := json.Unmarshal(data, &sub); err != nil {
		c.log.Error("Failed to unmarshal subscription message", slog.Any("error", err))
		return
	}

	switch sub.Action {
	case "subscribe":
		c.AddScan(sub.ScanID)
		c.hub.RecordScanSubscription("subscribe", sub.ScanID)
		c.log.Info("Added subscription for scan", slog.String("scanId", sub.ScanID))

	case "unsubscribe":
		c.RemoveScan(sub.ScanID)
		c.hub.RecordScanSubscription("unsubscribe", sub.ScanID)
		c.log.Info("Removed subscription for scan", slog.String("scanId", sub.ScanID))
	}
}

// Handler handles WebSocket HTTP requests and upgrades them to WebSocket connections
type Handler struct {
	hub *Hub
	log *slog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, log *slog.Logger) *Handler {
	return &Handler{
		hub: hub,
		log: log,
	}
}

// HandleWebSocket upgrades HTTP requests to WebSocket connections
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("Failed to upgrade websocket connection", slog.Any("error", err))
		return
	}

	wsConn := NewConnection(conn, h.hub, h.log)
	h.hub.AddConnection(wsConn)

	go wsConn.ReadLoop()
}
