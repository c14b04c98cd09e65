package chatws

import (
	"encoding/json"
	"log"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/toruktube/revive-app-sub001/internal/models"
)

// Hub fans committed messages out to every connected trainer client. Only
// the Run goroutine sends on or closes a client's send channel.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event
	direct     chan directFrame
}

type directFrame struct {
	client  *Client
	payload []byte
}

type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

type sender interface {
	SendMessage(conversationID string, content string) (models.Message, error)
}

type Event struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id,omitempty"`
	MessageID      string `json:"message_id,omitempty"`
	Direction      string `json:"direction,omitempty"`
	Content        string `json:"content"`
	UnreadCount    int    `json:"unread_count"`
	Timestamp      string `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 64),
		direct:     make(chan directFrame, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
		case client := <-h.unregister:
			if _, exists := h.clients[client]; exists {
				h.drop(client)
			}
		case event := <-h.broadcast:
			h.deliver(event)
		case frame := <-h.direct:
			if _, exists := h.clients[frame.client]; exists {
				h.push(frame.client, frame.payload)
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// MessageAppended queues a message event for every connected client.
func (h *Hub) MessageAppended(conversation models.ConversationSummary, message models.Message) {
	event := &Event{
		Type:           "message",
		ConversationID: message.ConversationID,
		MessageID:      message.ID,
		Direction:      string(message.Direction),
		Content:        message.Content,
		UnreadCount:    conversation.UnreadCount,
		Timestamp:      formatTimestamp(message.Timestamp),
	}
	select {
	case h.broadcast <- event:
	default:
		log.Printf("chat hub dropped event for conversation %s", message.ConversationID)
	}
}

func (h *Hub) deliver(event *Event) {
	encoded, err := json.Marshal(event)
	if err != nil {
		log.Printf("chat hub encode event: %v", err)
		return
	}

	for client := range h.clients {
		h.push(client, encoded)
	}
}

// push drops a client whose buffer is full rather than blocking the hub.
func (h *Hub) push(client *Client, payload []byte) {
	select {
	case client.send <- payload:
	default:
		h.drop(client)
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.send)
}

// ReadPump forwards inbound "message" frames to the messaging service. The
// service notifies the hub once the message is committed, so nothing is
// broadcast from here.
func (c *Client) ReadPump(service sender) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		c.handle(service, payload)
	}
}

func (c *Client) handle(service sender, payload []byte) {
	var incoming struct {
		Type           string `json:"type"`
		ConversationID string `json:"conversation_id"`
		Content        string `json:"content"`
	}
	if err := json.Unmarshal(payload, &incoming); err != nil {
		writeError(c, "invalid message payload")
		return
	}
	if incoming.Type != "message" {
		writeError(c, "unsupported message type")
		return
	}
	if incoming.ConversationID == "" {
		writeError(c, "invalid conversation id")
		return
	}

	if _, err := service.SendMessage(incoming.ConversationID, incoming.Content); err != nil {
		writeError(c, "failed to send message")
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

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func writeError(client *Client, message string) {
	payload, err := json.Marshal(Event{
		Type:      "error",
		Content:   message,
		Timestamp: formatTimestamp(time.Now()),
	})
	if err != nil {
		return
	}
	client.hub.direct <- directFrame{client: client, payload: payload}
}
