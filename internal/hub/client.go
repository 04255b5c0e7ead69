package hub

import (
	"encoding/json"

	"github.com/adie253/chatroom-backend/internal/domain"

	"github.com/gorilla/websocket"
)

// Client mediates between one WebSocket connection and the Hub. Username is
// the token identity bound at upgrade time.
type Client struct {
	ID       string
	Username string
	Hub      *Hub
	Conn     *websocket.Conn
	Send     chan []byte
}

// readPump forwards incoming events from the WebSocket to the hub loop.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		var event domain.Event
		if err := c.Conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.Hub.logger.Warn("read connection", "user", c.Username, "error", err)
			}
			break
		}
		c.Hub.events <- &ClientRequest{Client: c, Event: event}
	}
}

// writePump drains the Send channel into the WebSocket.
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.Hub.logger.Warn("write connection", "user", c.Username, "error", err)
			return
		}
	}
}

// sendEvent marshals an event and delivers it to this client only.
func (c *Client) sendEvent(eventType string, payload interface{}) {
	message, err := json.Marshal(domain.Event{Type: eventType, Payload: payload})
	if err != nil {
		c.Hub.logger.Error("marshal event", "type", eventType, "error", err)
		return
	}
	c.deliver(message)
}

// deliver queues a message without blocking the hub loop. A client whose
// buffer is full misses the event; delivery is best effort while connected.
func (c *Client) deliver(message []byte) {
	select {
	case c.Send <- message:
	default:
		c.Hub.logger.Warn("dropping event for slow client", "user", c.Username)
	}
}
