package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	EventTaxCalculationCreated   = "tax_calculation.created"
	EventTaxCalculationFinalized = "tax_calculation.finalized"
	EventTaxRateSuperseded       = "tax_rate.superseded"
)

const (
	clientBuffer  = 256
	publishBuffer = 256
	writeWait     = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// /ws carries no credentials and only pushes events
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Event is the JSON frame pushed to dashboard clients. An empty BusinessID
// reaches every client.
type Event struct {
	Type       string    `json:"type"`
	BusinessID string    `json:"business_id,omitempty"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

type message struct {
	businessID string
	data       []byte
}

// Client is a single connected dashboard. A non-empty businessID limits it to
// that business's events.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	businessID string
}

func (c *Client) wants(businessID string) bool {
	return c.businessID == "" || businessID == "" || c.businessID == businessID
}

// Hub fans events out to connected clients. Publish never blocks: when the
// hub or a client falls behind, the event or the client is dropped.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		broadcast:  make(chan message, publishBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run dispatches events until ctx is cancelled, then disconnects every client
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			h.logger.Debug("websocket client connected", zap.String("business_id", client.businessID))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Debug("websocket client disconnected", zap.String("business_id", client.businessID))
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				if !client.wants(msg.businessID) {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					h.drop(client)
					h.logger.Warn("dropping slow websocket client", zap.String("business_id", client.businessID))
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
}

// Publish queues an event for delivery. OccurredAt defaults to now.
func (h *Hub) Publish(event Event) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode websocket event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- message{businessID: event.BusinessID, data: data}:
	default:
		h.logger.Warn("websocket hub saturated, event dropped", zap.String("type", event.Type))
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.conn.Close()
	}()
	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump only watches for the peer going away
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
	}
}

// ServeWs upgrades the request. The optional business_id query parameter
// subscribes the client to a single business.
func (h *Hub) ServeWs(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	client := &Client{
		hub:        h,
		conn:       conn,
		send:       make(chan []byte, clientBuffer),
		businessID: c.Query("business_id"),
	}
	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
