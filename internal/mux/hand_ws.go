package mux

import (
	"net/http"
	"time"

	"pokerhand-server/pkg/poker"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10

type wsErrorResponse struct {
	Error string `json:"error"`
}

// getHandWS classifies hands over a websocket. Each text frame holds a
// comma-separated card list; the reply frame holds the classification, or
// an error object for bad input. Bad input does not close the connection.
func (m *Mux) getHandWS() http.HandlerFunc {
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

		defer func() {
			_ = conn.Close()
		}()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					logrus.WithError(err).Debug("websocket closed")
				}

				return
			}

			var payload interface{}
			if hand, err := parseHand(string(msg)); err != nil {
				payload = wsErrorResponse{Error: err.Error()}
			} else {
				payload = newHandResponse(poker.Best(hand))
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(payload); err != nil {
				logrus.WithError(err).Error("could not write to websocket")
				return
			}
		}
	}
}
