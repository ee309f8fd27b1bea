package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsHello is the first frame sent after a successful upgrade.
type wsHello struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// serveWS is an alternate transport for embeds that keep a socket open
// instead of POSTing every turn. Each inbound frame is a ChatRequest; each
// reply frame is a chat.Response. Same origin policy as the HTTP endpoint:
// anyone may connect.
func (a *API) serveWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		a.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if err := conn.WriteJSON(wsHello{Type: "connected", SessionID: sessionID}); err != nil {
		a.logger.Warn("websocket hello failed", "error", err)
		return
	}

	for {
		var req ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				a.logger.Debug("websocket read ended", "session", sessionID, "error", err)
			}
			return
		}

		resp, _ := a.respond(c.Request.Context(), req)
		if err := conn.WriteJSON(resp); err != nil {
			a.logger.Warn("websocket write failed", "session", sessionID, "error", err)
			return
		}
	}
}
