package handler

import (
	"net/http"
	"visionserver/internal/logger"

	"github.com/gorilla/websocket"
)

// Upgrader upgrades HTTP connections to WebSocket; CheckOrigin allows all origins.
var Upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Viewers is the hub side of the live feed.
type Viewers interface {
	Register(conn *websocket.Conn)
	Unregister(conn *websocket.Conn)
}

// LiveWebsocketHandler handles GET /api/live. Each telemetry event is pushed to the
// viewer as a JSON text frame; incoming frames are discarded.
func LiveWebsocketHandler(hub Viewers, logger *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connection, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Error("WebSocket upgrade error: %v", err)
			return
		}
		connection.SetReadLimit(512)

		hub.Register(connection)
		defer hub.Unregister(connection)

		for {
			_, _, err := connection.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logger.Info("Viewer disconnected normally")
				} else {
					logger.Warning("Viewer disconnected: %v", err)
				}
				break
			}
		}
	}
}
