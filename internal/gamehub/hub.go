package gamehub

import (
	"MatchEngineApi/internal/jsonlog"
	"context"
	"strconv"
)

// Hub fans finished match messages out to every connected watcher. All watcher bookkeeping
// happens on the Run goroutine.
type Hub struct {
	watchers  map[*Watcher]bool
	join      chan *Watcher
	leave     chan *Watcher
	broadcast chan []byte
	count     chan chan int
	done      chan struct{}
	logger    *jsonlog.Logger
}

func NewHub(logger *jsonlog.Logger) *Hub {
	if logger == nil {
		logger = jsonlog.Discard()
	}

	return &Hub{
		watchers:  make(map[*Watcher]bool),
		join:      make(chan *Watcher),
		leave:     make(chan *Watcher),
		broadcast: make(chan []byte),
		count:     make(chan chan int),
		done:      make(chan struct{}),
		logger:    logger,
	}
}

// Run serves the hub until ctx is done, then closes every watcher's queue.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case watcher := <-h.join:
			h.watchers[watcher] = true
		case watcher := <-h.leave:
			if _, ok := h.watchers[watcher]; ok {
				delete(h.watchers, watcher)
				close(watcher.Receive)
			}
		case msg := <-h.broadcast:
			h.toAllWatchers(msg)
		case reply := <-h.count:
			reply <- len(h.watchers)
		case <-ctx.Done():
			for watcher := range h.watchers {
				delete(h.watchers, watcher)
				close(watcher.Receive)
			}
			return
		}
	}
}

func (h *Hub) Join(w *Watcher) error {
	select {
	case h.join <- w:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) Leave(w *Watcher) {
	select {
	case h.leave <- w:
	case <-h.done:
	}
}

// Publish encodes msg and queues it for every watcher.
func (h *Hub) Publish(msg Message) error {
	js, err := msg.encode()
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- js:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) WatcherCount() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

func (h *Hub) toAllWatchers(msg []byte) {
	for watcher := range h.watchers {
		select {
		case watcher.Receive <- msg:
		default:
			close(watcher.Receive)
			delete(h.watchers, watcher)
			h.logger.PrintInfo("dropped slow feed watcher", map[string]string{
				"watchers": strconv.Itoa(len(h.watchers)),
			})
		}
	}
}
