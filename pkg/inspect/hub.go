package inspect

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// MessageType is the type of a websocket message.
type MessageType string

const (
	// MessageTree carries the container HTML after a render pass.
	MessageTree MessageType = "tree"

	// MessageError carries a render failure reported by the runtime.
	MessageError MessageType = "error"
)

// Message is sent to websocket clients.
type Message struct {
	Type  MessageType `json:"type"`
	Pass  int         `json:"pass,omitempty"`
	HTML  string      `json:"html,omitempty"`
	Error string      `json:"error,omitempty"`
}

// sendQueue is the number of messages buffered per client. A client
// whose queue is full is disconnected.
const sendQueue = 16

// client is one websocket connection with its own writer goroutine.
type client struct {
	conn      *websocket.Conn
	send      chan []byte
	closeOnce sync.Once
}

// close stops the writer and closes the connection. Safe to call more
// than once.
func (c *client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// hub tracks websocket clients and fans messages out to them. broadcast
// only queues; each client's writer goroutine does the network writes.
type hub struct {
	clients  map[*client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func newHub(logger *slog.Logger, checkOrigin func(*http.Request) bool) *hub {
	return &hub{
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		logger: logger,
	}
}

// serve upgrades the request and keeps the connection registered until the
// client goes away. first, if non-nil, is the first message the client
// receives.
func (h *hub) serve(w http.ResponseWriter, req *http.Request, first *Message) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendQueue)}
	if first != nil {
		if data, err := json.Marshal(first); err == nil {
			c.send <- data
		}
	}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()

	go h.writePump(c)

	// clients only listen; reads detect the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.remove(c)
}

// writePump writes queued messages to the client until its queue is
// closed or a write fails.
func (h *hub) writePump(c *client) {
	for data := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("websocket write failed", "error", err)
			h.remove(c)
			return
		}
	}
}

func (h *hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.close()
}

// broadcast queues msg for every client without blocking. Clients whose
// queue is full are dropped.
func (h *hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Debug("websocket client too slow, disconnecting")
			delete(h.clients, c)
			c.close()
		}
	}
}

func (h *hub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		c.close()
	}
}
