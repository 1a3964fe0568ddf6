package handlers

import (
	"log"
	"net/http"

	"imagemaker-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// EventsHandler upgrades clients onto the generation event feed.
type EventsHandler struct {
	mgr *ws.Manager
}

func NewEventsHandler(mgr *ws.Manager) *EventsHandler {
	return &EventsHandler{mgr: mgr}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleEventsWS upgrades to websocket and streams generation events for
// one user until the client goes away.
// GET /ws?user_id=<id>
func (h *EventsHandler) HandleEventsWS(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	h.mgr.Subscribe(userID, conn)
	log.Printf("event subscriber connected for user %s", userID)

	// The feed is write-only; the read loop only detects the close.
	defer func() {
		h.mgr.Unsubscribe(userID, conn)
		log.Printf("event subscriber disconnected for user %s", userID)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("subscriber for user %s closed connection", userID)
			}
			return
		}
	}
}
