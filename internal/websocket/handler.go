package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs runs the pumps for an upgraded connection until it closes.
// readPump runs on the caller's goroutine so the fiber handler blocks for the
// lifetime of the socket.
func ServeWs(hub *Hub, c *websocket.Conn, token string) {
	client := &Client{Hub: hub, Conn: c, Token: token, Send: make(chan []byte, 256)}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}
