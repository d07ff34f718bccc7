package gamehub

import (
	"time"

	"github.com/gorilla/websocket"
)

// Watcher is one websocket client of the feed. The feed is write-only; anything the client
// sends is read and discarded so control frames keep flowing.
type Watcher struct {
	Hub     *Hub
	Conn    *websocket.Conn
	Receive chan []byte
}

func NewWatcher(hub *Hub, conn *websocket.Conn) *Watcher {
	return &Watcher{
		Hub:     hub,
		Conn:    conn,
		Receive: make(chan []byte, sendBufferSize),
	}
}

// Serve joins the hub and starts the read and write pumps. It returns once the watcher is
// registered.
func (w *Watcher) Serve() error {
	if err := w.Hub.Join(w); err != nil {
		return err
	}
	go w.WriteEvents()
	go w.ReadEvents()
	return nil
}

func (w *Watcher) ReadEvents() {
	defer func() {
		w.Hub.Leave(w)
		_ = w.Conn.Close()
	}()

	w.Conn.SetReadLimit(maxMessageSize)
	_ = w.Conn.SetReadDeadline(time.Now().Add(pongWait))
	w.Conn.SetPongHandler(func(string) error {
		return w.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := w.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (w *Watcher) WriteEvents() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = w.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-w.Receive:
			_ = w.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				_ = w.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			writer, err := w.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			_, _ = writer.Write(message)

			// Fold queued messages into the current frame.
			n := len(w.Receive)
			for i := 0; i < n; i++ {
				_, _ = writer.Write(newline)
				_, _ = writer.Write(<-w.Receive)
			}

			if err := writer.Close(); err != nil {
				return
			}
		case <-ticker.C:
			_ = w.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := w.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
