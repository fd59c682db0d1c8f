package core

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/sirupsen/logrus"
)

// ReloadEvent is the message dev-mode pages receive on LiveReloadPath.
type ReloadEvent struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

type LiveReloaderInterface interface {
	BroadcastReload(path string)
	Handler(http.ResponseWriter, *http.Request)
}

// LiveReloader holds the websocket of every open dev-mode page and tells
// them to reload when a watched file changes.
type LiveReloader struct {
	pages    map[*websocket.Conn]struct{}
	lock     sync.Mutex
	upgrader websocket.Upgrader
}

var NewLiveReloader = func() LiveReloaderInterface {
	return &LiveReloader{
		pages: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

func (lr *LiveReloader) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Debug("live reload upgrade failed")
		return
	}

	lr.lock.Lock()
	lr.pages[conn] = struct{}{}
	lr.lock.Unlock()

	go lr.waitForClose(conn)
}

// waitForClose drains the connection; pages never send anything, so the
// first read error means the page went away.
func (lr *LiveReloader) waitForClose(conn *websocket.Conn) {
	defer lr.drop(conn)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (lr *LiveReloader) BroadcastReload(path string) {
	msg, err := newReloadMessage(path)
	if err != nil {
		logrus.WithError(err).Error("failed to encode reload event")
		return
	}

	lr.lock.Lock()
	defer lr.lock.Unlock()

	for conn := range lr.pages {
		if err := conn.WritePreparedMessage(msg); err != nil {
			conn.Close()
			delete(lr.pages, conn)
		}
	}
	logrus.WithFields(logrus.Fields{"path": path, "pages": len(lr.pages)}).Debug("live reload broadcast")
}

func newReloadMessage(path string) (*websocket.PreparedMessage, error) {
	data, err := json.Marshal(ReloadEvent{Type: "reload", Path: path})
	if err != nil {
		return nil, errors.Wrap(err, "marshal reload event")
	}
	return websocket.NewPreparedMessage(websocket.TextMessage, data)
}

func (lr *LiveReloader) drop(conn *websocket.Conn) {
	lr.lock.Lock()
	delete(lr.pages, conn)
	lr.lock.Unlock()
	conn.Close()
}

func (lr *LiveReloader) pageCount() int {
	lr.lock.Lock()
	defer lr.lock.Unlock()
	return len(lr.pages)
}
