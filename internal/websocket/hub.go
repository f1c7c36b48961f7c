package eventws

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	websocket "github.com/gofiber/contrib/websocket"

	"github.com/kaelif/QuickLink/internal/models"
)

// Hub pushes state events (new match, new message, reset) to connected
// UI shells. The app is single-user, so every connected shell gets every
// event; the device id only scopes connection bookkeeping.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event
}

type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	deviceID string
	send     chan []byte

	mu     sync.Mutex
	closed bool
}

// trySend queues a payload without blocking. Returns false when the
// queue is full or the channel is already closed.
func (c *Client) trySend(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- payload:
		return true
	default:
		return false
	}
}

// closeSend closes the send channel exactly once. The mutex it shares
// with trySend is what keeps the read pump's error writes from racing a
// close on the hub goroutine.
func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// sender is the slice of the match store the read pump needs.
type sender interface {
	SendMessage(matchID, text string) (models.Message, bool)
}

type Event struct {
	Type      string                 `json:"type"`
	MatchID   string                 `json:"match_id,omitempty"`
	Climber   *models.ClimberProfile `json:"climber,omitempty"`
	Message   *models.Message        `json:"message,omitempty"`
	Content   string                 `json:"content,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

const (
	EventMatchAdded   = "match_added"
	EventMessageSent  = "message_sent"
	EventMatchRemoved = "match_removed"
	EventReset        = "reset"
)

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, deviceID string) *Client {
	return &Client{
		hub:      hub,
		conn:     conn,
		deviceID: deviceID,
		send:     make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.clients[client.deviceID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.deviceID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			set, ok := h.clients[client.deviceID]
			if !ok {
				continue
			}
			if _, exists := set[client]; exists {
				delete(set, client)
				client.closeSend()
			}
			if len(set) == 0 {
				delete(h.clients, client.deviceID)
			}
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Broadcast queues an event for every connected shell. Drops the event
// when the queue is full rather than blocking a mutation path.
func (h *Hub) Broadcast(event *Event) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	select {
	case h.broadcast <- event:
	default:
		log.Printf("event hub queue full, dropping %s", event.Type)
	}
}

func (h *Hub) deliver(event *Event) {
	encoded, err := json.Marshal(event)
	if err != nil {
		log.Printf("event hub encode: %v", err)
		return
	}

	for deviceID, set := range h.clients {
		for client := range set {
			if !client.trySend(encoded) {
				delete(set, client)
				client.closeSend()
			}
		}
		if len(set) == 0 {
			delete(h.clients, deviceID)
		}
	}
}

// ReadPump accepts message sends from the shell over the socket and
// feeds them through the match store like the HTTP path does.
func (c *Client) ReadPump(store sender) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming struct {
			Type    string `json:"type"`
			MatchID string `json:"match_id"`
			Text    string `json:"text"`
		}
		if err := json.Unmarshal(payload, &incoming); err != nil {
			writeError(c, "invalid message payload")
			continue
		}
		if incoming.Type != "message" {
			writeError(c, "unsupported message type")
			continue
		}

		msg, ok := store.SendMessage(incoming.MatchID, incoming.Text)
		if !ok {
			writeError(c, "unknown match")
			continue
		}

		c.hub.Broadcast(&Event{
			Type:    EventMessageSent,
			MatchID: msg.MatchID,
			Message: &msg,
		})
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func writeError(client *Client, message string) {
	payload, err := json.Marshal(Event{
		Type:      "error",
		Content:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	if !client.trySend(payload) {
		client.hub.Unregister(client)
	}
}
