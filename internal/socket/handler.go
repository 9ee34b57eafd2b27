// internal/socket/handler.go
package socket

import (
	"net/http"
	"strings"

	"github.com/Marga-Ghale/portfolio-api/internal/logger"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The token is the gate; CORS is open for the whole API
		return true
	},
}

// Handler handles WebSocket connections
type Handler struct {
	Hub         *Hub
	authService service.AuthService
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, authService service.AuthService) *Handler {
	return &Handler{
		Hub:         hub,
		authService: authService,
	}
}

// HandleWebSocket upgrades an authenticated admin to the live inquiry feed.
// Browsers cannot set headers on websocket requests, so the token may also come from ?token=.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if tokenString == "" {
		logger.Log.Warn("[WebSocket] No token provided")
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "No token provided"})
		return
	}

	token, err := h.authService.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		logger.Log.Warnf("[WebSocket] Rejected token: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return
	}
	subject, err := h.authService.GetSubjectFromToken(token)
	if err != nil {
		logger.Log.Warnf("[WebSocket] Rejected token claims: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Log.Errorf("[WebSocket] Upgrade error: %v", err)
		return
	}

	logger.Log.Infof("[WebSocket] ✅ Client connected: user=%s", subject)

	client := NewClient(h.Hub, subject, conn)
	h.Hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

// NewClient creates a new WebSocket client
func NewClient(hub *Hub, userID string, conn *websocket.Conn) *Client {
	return &Client{
		ID:     uuid.New().String(),
		UserID: userID,
		Conn:   conn,
		Hub:    hub,
		Send:   make(chan []byte, 256),
	}
}
