package sse

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/LithosProtocol_Go/internal/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The stream is read-only and authenticated by API key upstream
	CheckOrigin: func(*http.Request) bool { return true },
}

// WebSocketHandler streams the same events as Handler over a websocket,
// one JSON message per event
func WebSocketHandler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		eventTypes := ParseTypes(r.URL.Query().Get(QueryParamTypes))
		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", "websocket",
			"filters", eventTypes)

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", "websocket")
		}()

		// the read loop only services control frames and notices the close
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			conn.SetReadLimit(MaxClientMessageSize)
			_ = conn.SetReadDeadline(time.Now().Add(PongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(PongWait))
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		if err := writeJSON(conn, connectedEvent(client, eventTypes)); err != nil {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-closed:
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
						time.Now().Add(WriteTimeout))
					return
				}
				if err := writeJSON(conn, evt); err != nil {
					log.Warn(LogMsgWriteError, "error", err, "transport", "websocket")
					return
				}

			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteTimeout)); err != nil {
					return
				}
			}
		}
	}
}

func writeJSON(conn *websocket.Conn, evt Event) error {
	if err := conn.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(evt)
}
