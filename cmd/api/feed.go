package main

import (
	"MatchEngineApi/internal/gamehub"
	"net/http"
	"net/url"
	"slices"

	"github.com/gorilla/websocket"
)

func (app *application) WatchFeed(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     app.checkFeedOrigin,
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		app.logError(r, err)
		return
	}

	watcher := gamehub.NewWatcher(app.hub, conn)
	if err := watcher.Serve(); err != nil {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, err.Error()))
		_ = conn.Close()
	}
}

// checkFeedOrigin accepts same-host requests, requests without an Origin header and trusted
// CORS origins.
func (app *application) checkFeedOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || slices.Contains(app.config.cors.trustedOrigins, origin) {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Host == r.Host
}
