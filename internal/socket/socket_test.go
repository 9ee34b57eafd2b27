package socket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Marga-Ghale/portfolio-api/internal/config"
	"github.com/Marga-Ghale/portfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func TestHubBroadcastsToRegisteredClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{ID: "c1", UserID: "owner@example.com", Hub: hub, Send: make(chan []byte, 4)}
	hub.register <- client
	require.Eventually(t, func() bool { return hub.GetConnectedClientsCount() == 1 }, time.Second, 5*time.Millisecond)

	NewBroadcaster(hub).BroadcastInquiryCreated(map[string]any{"id": "abc"})

	select {
	case raw := <-client.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, MessageInquiryCreated, msg.Type)
		assert.Equal(t, "abc", msg.Payload["id"])
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}
}

func TestHubStopClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{ID: "c1", Hub: hub, Send: make(chan []byte, 1)}
	hub.register <- client
	require.Eventually(t, func() bool { return hub.GetConnectedClientsCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Stop()
	hub.Stop()

	require.Eventually(t, func() bool { return hub.GetConnectedClientsCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-client.Send
	assert.False(t, open)
}

func TestNilBroadcasterIsSafe(t *testing.T) {
	var b *Broadcaster
	assert.NotPanics(t, func() { b.BroadcastInquiryCreated(map[string]any{}) })
}

func newTestHandler(secret string) *Handler {
	return NewHandler(NewHub(), service.NewAuthService(&config.Config{JWTSecret: secret}))
}

func TestHandleWebSocketTokenChecks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		secret string
		claims jwt.MapClaims
	}{
		{"wrong role", testSecret, jwt.MapClaims{"sub": "owner@example.com", "role": "viewer", "exp": exp}},
		{"missing expiry", testSecret, jwt.MapClaims{"sub": "owner@example.com", "role": "admin"}},
		{"expired", testSecret, jwt.MapClaims{"sub": "x", "role": "admin", "exp": time.Now().Add(-time.Minute).Unix()}},
		{"missing subject", testSecret, jwt.MapClaims{"role": "admin", "exp": exp}},
		{"other secret", "other-secret", jwt.MapClaims{"sub": "x", "role": "admin", "exp": exp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin/ws", newTestHandler(tt.secret).HandleWebSocket)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ws?token="+signed(t, tt.claims), nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestHandleWebSocketAcceptsAdminToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	r := gin.New()
	r.GET("/admin/ws", NewHandler(hub, service.NewAuthService(&config.Config{JWTSecret: testSecret})).HandleWebSocket)
	srv := httptest.NewServer(r)
	defer srv.Close()

	token := signed(t, jwt.MapClaims{"sub": "owner@example.com", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()})
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/admin/ws?token="+token, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.GetConnectedClientsCount() == 1 }, time.Second, 5*time.Millisecond)
}

func TestHandleWebSocketRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ws", newTestHandler(testSecret).HandleWebSocket)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ws?token=garbage", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
