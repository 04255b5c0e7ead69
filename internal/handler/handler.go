package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adie253/chatroom-backend/internal/config"
	"github.com/adie253/chatroom-backend/internal/domain"
	"github.com/adie253/chatroom-backend/internal/hub"
	"github.com/adie253/chatroom-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins; this is a trusted internal tool.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler serves the REST surface and upgrades realtime connections.
type Handler struct {
	authService service.IAuthService
	messageRepo service.IMessageRepository
	hub         *hub.Hub
	logger      *slog.Logger
}

// New creates a new Handler.
func New(authService service.IAuthService, messageRepo service.IMessageRepository, h *hub.Hub, logger *slog.Logger) *Handler {
	return &Handler{
		authService: authService,
		messageRepo: messageRepo,
		hub:         h,
		logger:      logger,
	}
}

// Router builds the HTTP routing table.
func Router(cfg *config.Config, h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/api/login", h.Login).Methods(http.MethodPost, http.MethodOptions)

	messages := r.PathPrefix("/api/messages").Subrouter()
	messages.Use(h.Authenticate)
	messages.HandleFunc("", h.ListMessages).Methods(http.MethodGet, http.MethodOptions)
	messages.HandleFunc("", h.CreateMessage).Methods(http.MethodPost)
	messages.HandleFunc("", h.ClearMessages).Methods(http.MethodDelete)

	r.HandleFunc("/ws", h.HandleConnection).Methods(http.MethodGet)

	if cfg.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login handles POST /api/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	token, user, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		h.logger.Error("login", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: user.Username})
}

// ListMessages handles GET /api/messages. An optional ?limit= caps the
// number of returned rows; omitted means full history.
func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid limit"})
			return
		}
		limit = parsed
	}

	messages, err := h.messageRepo.ListMessages(r.Context(), limit)
	if err != nil {
		h.logger.Error("list messages", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, messages)
}

type createMessageRequest struct {
	Content string `json:"content"`
}

// CreateMessage handles POST /api/messages. The sender is always the token
// identity, never a request field.
func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
		return
	}

	saved, err := h.messageRepo.SaveMessage(r.Context(), claims.Username, req.Content)
	if err != nil {
		h.logger.Error("save message", "sender", claims.Username, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.hub.Broadcast(domain.EventReceiveMessage, saved)
	writeJSON(w, http.StatusOK, saved)
}

// ClearMessages handles DELETE /api/messages.
func (h *Handler) ClearMessages(w http.ResponseWriter, r *http.Request) {
	if err := h.messageRepo.ClearMessages(r.Context()); err != nil {
		h.logger.Error("clear messages", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.hub.Broadcast(domain.EventMessagesCleared, nil)
	w.WriteHeader(http.StatusOK)
}

// HandleConnection handles GET /ws?token=... — the session token is
// verified before the upgrade, and its username is bound to the connection.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	claims, err := h.authService.VerifyToken(r.URL.Query().Get("token"))
	if err != nil {
		if errors.Is(err, service.ErrMissingToken) {
			http.Error(w, "Token is required", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Invalid token", http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", "error", err)
		return
	}

	h.hub.ServeClient(conn, claims.Username)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
