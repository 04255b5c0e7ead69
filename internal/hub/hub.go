package hub

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/adie253/chatroom-backend/internal/domain"
	"github.com/adie253/chatroom-backend/internal/presence"
	"github.com/adie253/chatroom-backend/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ClientRequest bundles a client with their incoming event.
type ClientRequest struct {
	Client *Client
	Event  domain.Event
}

// Hub maintains the set of active connections and fans chat events out to
// them. All connection and presence state is touched only from the Run loop.
type Hub struct {
	connections map[*Client]bool
	events      chan *ClientRequest
	register    chan *Client
	unregister  chan *Client
	broadcasts  chan []byte // server-initiated events from the REST surface
	presence    *presence.Tracker
	messageRepo service.IMessageRepository
	logger      *slog.Logger
}

// NewHub creates a Hub around the given message store and presence tracker.
func NewHub(messageRepo service.IMessageRepository, tracker *presence.Tracker, logger *slog.Logger) *Hub {
	return &Hub{
		connections: make(map[*Client]bool),
		events:      make(chan *ClientRequest),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		broadcasts:  make(chan []byte, 16),
		presence:    tracker,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Run processes registration, client events, and server broadcasts on a
// single goroutine until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.connections[client] = true
			h.logger.Info("client connected", "connection", client.ID, "user", client.Username)
		case client := <-h.unregister:
			if _, ok := h.connections[client]; ok {
				// The user's presence entry survives on purpose.
				delete(h.connections, client)
				close(client.Send)
				h.logger.Info("client disconnected", "connection", client.ID, "user", client.Username)
			}
		case request := <-h.events:
			h.handleEvent(request)
		case message := <-h.broadcasts:
			h.broadcastAll(message)
		}
	}
}

// ServeClient registers an authenticated connection and starts its pumps.
func (h *Hub) ServeClient(conn *websocket.Conn, username string) {
	client := &Client{ID: uuid.NewString(), Username: username, Hub: h, Conn: conn, Send: make(chan []byte, 256)}
	h.register <- client
	go client.writePump()
	go client.readPump()
}

// Broadcast delivers a server-initiated event to every connected client.
// Safe to call from any goroutine.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	message, err := json.Marshal(domain.Event{Type: eventType, Payload: payload})
	if err != nil {
		h.logger.Error("marshal broadcast event", "type", eventType, "error", err)
		return
	}
	h.broadcasts <- message
}

func (h *Hub) handleEvent(req *ClientRequest) {
	switch req.Event.Type {
	case domain.EventJoin:
		h.handleJoin(req)
	case domain.EventSetMood:
		h.handleSetMood(req)
	case domain.EventSendReaction:
		h.handleSendReaction(req)
	case domain.EventTyping, domain.EventStopTyping:
		h.handleTyping(req)
	case domain.EventMarkSeen:
		h.handleMarkSeen(req)
	case domain.EventSendMessage:
		h.handleSendMessage(req)
	default:
		h.logger.Warn("unknown event type", "type", req.Event.Type, "user", req.Client.Username)
	}
}

// handleJoin answers with the full mood map. A first-time join also assigns
// the default mood, which everyone needs to see; a rejoin must not reset
// anyone, so only the joining connection gets the snapshot then.
func (h *Hub) handleJoin(req *ClientRequest) {
	snapshot, changed := h.presence.Announce(req.Client.Username)
	if changed {
		h.broadcastEventAll(domain.EventMoodUpdate, snapshot)
		return
	}
	req.Client.sendEvent(domain.EventMoodUpdate, snapshot)
}

func (h *Hub) handleSetMood(req *ClientRequest) {
	var payload domain.SetMoodPayload
	if err := parsePayload(req.Event.Payload, &payload); err != nil {
		h.logger.Warn("invalid setMood payload", "user", req.Client.Username, "error", err)
		return
	}
	// The authenticated connection identity decides whose mood changes.
	snapshot := h.presence.SetMood(req.Client.Username, payload.Mood)
	h.broadcastEventAll(domain.EventMoodUpdate, snapshot)
}

func (h *Hub) handleSendReaction(req *ClientRequest) {
	var payload domain.ReactionPayload
	if err := parsePayload(req.Event.Payload, &payload); err != nil {
		h.logger.Warn("invalid sendReaction payload", "user", req.Client.Username, "error", err)
		return
	}
	// The sender already renders their own reaction; no self-echo.
	payload.Sender = req.Client.Username
	h.broadcastEventOthers(domain.EventReceiveReaction, payload, req.Client)
}

func (h *Hub) handleTyping(req *ClientRequest) {
	payload := domain.TypingPayload{Sender: req.Client.Username}
	h.broadcastEventOthers(req.Event.Type, payload, req.Client)
}

// handleMarkSeen is triggered by the viewer and flips every unseen message
// from the named sender. Errors are logged, never reported to the client.
func (h *Hub) handleMarkSeen(req *ClientRequest) {
	var payload domain.MarkSeenPayload
	if err := parsePayload(req.Event.Payload, &payload); err != nil {
		h.logger.Warn("invalid markSeen payload", "user", req.Client.Username, "error", err)
		return
	}

	changed, err := h.messageRepo.MarkMessagesSeen(context.Background(), payload.Sender)
	if err != nil {
		h.logger.Error("mark messages seen", "sender", payload.Sender, "error", err)
		return
	}
	h.logger.Info("messages marked seen", "viewer", req.Client.Username, "sender", payload.Sender, "count", changed)

	// Everyone, including the sender, reconciles read state from this.
	h.broadcastEventAll(domain.EventMessagesSeen, domain.MarkSeenPayload{
		Viewer: req.Client.Username,
		Sender: payload.Sender,
	})
}

func (h *Hub) handleSendMessage(req *ClientRequest) {
	var payload domain.SendMessagePayload
	if err := parsePayload(req.Event.Payload, &payload); err != nil {
		h.logger.Warn("invalid sendMessage payload", "user", req.Client.Username, "error", err)
		return
	}

	saved, err := h.messageRepo.SaveMessage(context.Background(), req.Client.Username, payload.Content)
	if err != nil {
		h.logger.Error("save message", "sender", req.Client.Username, "error", err)
		return
	}

	// The sender gets the broadcast too, so its view picks up the assigned
	// id and timestamp.
	h.broadcastEventAll(domain.EventReceiveMessage, saved)
}

// --- Fan-out helpers ---

func (h *Hub) broadcastEventAll(eventType string, payload interface{}) {
	message, err := json.Marshal(domain.Event{Type: eventType, Payload: payload})
	if err != nil {
		h.logger.Error("marshal event", "type", eventType, "error", err)
		return
	}
	h.broadcastAll(message)
}

func (h *Hub) broadcastEventOthers(eventType string, payload interface{}, except *Client) {
	message, err := json.Marshal(domain.Event{Type: eventType, Payload: payload})
	if err != nil {
		h.logger.Error("marshal event", "type", eventType, "error", err)
		return
	}
	for client := range h.connections {
		if client == except {
			continue
		}
		client.deliver(message)
	}
}

func (h *Hub) broadcastAll(message []byte) {
	for client := range h.connections {
		client.deliver(message)
	}
}

func parsePayload(payload interface{}, result interface{}) error {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return errors.New("failed to marshal payload")
	}
	return json.Unmarshal(payloadBytes, result)
}
