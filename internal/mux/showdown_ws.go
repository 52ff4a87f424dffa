package mux

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"showdown-server/pkg/gamefactory"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsMessage is sent in reply to every showdown received over the websocket
type wsMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type wsClient struct {
	conn   *websocket.Conn
	send   chan wsMessage
	logger logrus.FieldLogger
}

func (m *Mux) getShowdownWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := &wsClient{
			conn:   conn,
			send:   make(chan wsMessage, 8),
			logger: m.logger.WithField("client", uuid.New().String()),
		}

		client.logger.Debug("client connected")

		writeLoopDone := make(chan bool)
		defer func() {
			close(client.send)
			<-writeLoopDone
			_ = conn.Close()
			client.logger.Debug("client disconnected")
		}()

		go m.webSocketWriteLoop(client, writeLoopDone)
		m.webSocketReadLoop(r, client, writeLoopDone)
	}
}

func (m *Mux) webSocketWriteLoop(client *wsClient, done chan bool) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
		close(done)
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-client.send:
			if !ok {
				_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(msg); err != nil {
				client.logger.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

func (m *Mux) webSocketReadLoop(r *http.Request, client *wsClient, writeLoopDone <-chan bool) {
	for {
		_, b, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				client.logger.WithError(err).Error("could not read message")
			}

			return
		}

		var msg wsMessage
		var payload gamefactory.Showdown
		if err := json.Unmarshal(b, &payload); err != nil {
			msg = wsMessage{Type: "error", Data: newErrorResponse(http.StatusBadRequest, err)}
		} else if resp, statusCode, err := m.runShowdown(r.Context(), payload); err != nil {
			msg = wsMessage{Type: "error", Data: newErrorResponse(statusCode, err)}
		} else {
			msg = wsMessage{Type: "showdown", Data: resp}
		}

		select {
		case client.send <- msg:
		case <-writeLoopDone:
			return
		}
	}
}
