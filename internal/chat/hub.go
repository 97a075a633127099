// Package chat backs the support chat widget. A hub fans user messages out
// to every open widget connection and a canned responder answers a moment
// later, standing in for a human agent.
package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/Afresh-Revolution/Knowrist/internal/logger"
	"github.com/Afresh-Revolution/Knowrist/internal/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64

	// responseDelay is how long the canned agent "types" before replying.
	responseDelay = time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The BFF serves a single local UI; origin checks stay open.
		return true
	},
}

// Message is one chat entry, from the user or from support.
type Message struct {
	ID     string    `json:"id"`
	From   string    `json:"from"` // user | support
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected chat widgets and replays the session transcript to
// new connections.
type Hub struct {
	mu         sync.Mutex
	clients    map[*client]bool
	history    []Message
	broadcast  chan Message
	register   chan *client
	unregister chan *client

	responder *responder
}

func NewHub() *Hub {
	h := &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan Message, 16),
		register:   make(chan *client),
		unregister: make(chan *client),
	}
	h.responder = newResponder(h)
	return h
}

// Run owns the client set. It exits when ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

// Send records a message and fans it out. User messages also wake the
// canned responder.
func (h *Hub) Send(from, text string) Message {
	msg := Message{
		ID:     uuid.NewString(),
		From:   from,
		Text:   text,
		SentAt: time.Now().UTC(),
	}
	metrics.ChatMessagesTotal.WithLabelValues(from).Inc()

	h.mu.Lock()
	h.history = append(h.history, msg)
	h.mu.Unlock()

	h.broadcast <- msg

	if from == "user" {
		h.responder.respondTo(text)
	}
	return msg
}

// History returns the session transcript in order.
func (h *Hub) History() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Message, len(h.history))
	copy(out, h.history)
	return out
}

func (h *Hub) deliver(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Errorf("chat: marshal message: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Slow consumer; drop the connection rather than block the hub.
			delete(h.clients, c)
			close(c.send)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// ServeWS upgrades a widget connection and replays the transcript to it.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Errorf("chat: upgrade failed: %v", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBufferSize)}
	h.register <- c

	// writePump must drain before the replay starts: a transcript longer
	// than the send buffer would otherwise block this goroutine forever.
	go c.writePump()

	for _, msg := range h.History() {
		if data, err := json.Marshal(msg); err == nil {
			c.send <- data
		}
	}

	go c.readPump()
}

type inboundMessage struct {
	Text string `json:"text"`
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil || msg.Text == "" {
			continue
		}
		c.hub.Send("user", msg.Text)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
