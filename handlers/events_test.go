package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"imagemaker-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventsFixture() (*httptest.Server, *ws.Manager) {
	gin.SetMode(gin.TestMode)
	mgr := ws.NewManager()
	router := gin.New()
	router.GET("/ws", NewEventsHandler(mgr).HandleEventsWS)
	return httptest.NewServer(router), mgr
}

func TestHandleEventsWS_RequiresUserID(t *testing.T) {
	srv, _ := newEventsFixture()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleEventsWS_StreamsGenerationEvents(t *testing.T) {
	srv, mgr := newEventsFixture()
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?user_id=u1"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool {
		return mgr.SubscriberCount("u1") == 1
	}, time.Second, 10*time.Millisecond)

	mgr.PublishImageGenerated("u1", "img-1", "https://example.com/generated_image.jpg", "2024-05-01T10:00:00Z")

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event ws.Event
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, "image_generated", event.Event)
	assert.Equal(t, "img-1", event.ImageID)
	assert.Equal(t, "https://example.com/generated_image.jpg", event.ImageURL)
}
