package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cennetul/muhafiz-go/internal/chat"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocketChat(t *testing.T) {
	stub := &stubCompleter{resp: &chat.Response{Text: "Selam alejkum"}}
	api := testAPI(stub)

	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello wsHello
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "connected", hello.Type)
	assert.NotEmpty(t, hello.SessionID)

	require.NoError(t, conn.WriteJSON(ChatRequest{Message: "Selam"}))

	var resp chat.Response
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "Selam alejkum", resp.Text)
	assert.Equal(t, "Selam", stub.gotMessage)
}

func TestWebsocketSessionIDFromQuery(t *testing.T) {
	api := testAPI(&stubCompleter{resp: &chat.Response{Text: "ok"}})

	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?session_id=moja-sesija"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var hello wsHello
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, "moja-sesija", hello.SessionID)
}
