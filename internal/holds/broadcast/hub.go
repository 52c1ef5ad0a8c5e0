// Package broadcast pushes hold activity to websocket subscribers so
// browsers viewing a bar's floor plan see tables grey out in real time.
package broadcast

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"barkeep/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

// Notice is what subscribers receive whenever a hold is placed or released.
type Notice struct {
	Event     string    `json:"event"`
	BarID     string    `json:"bar_id"`
	TableID   string    `json:"table_id"`
	Date      string    `json:"date"`
	Clock     string    `json:"clock"`
	HeldUntil time.Time `json:"held_until,omitempty"`
}

type Client struct {
	Conn      *websocket.Conn
	Send      chan []byte
	Room      string
	AccountID string
}

type broadcastMsg struct {
	Room string
	Data []byte
}

// Hub fans Notices out to every subscriber of a bar. Rooms are keyed by
// bar ID; a subscriber that cannot keep up is dropped rather than
// blocking the broadcast loop.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.Room] == nil {
				h.rooms[c.Room] = make(map[*Client]bool)
			}
			h.rooms[c.Room][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.Room]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.Room] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.Room], c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for room, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
				delete(h.rooms, room)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// NotifyHold marshals the notice and hands it to the broadcast loop.
// It is best effort: a stopped hub drops the notice instead of blocking.
func (h *Hub) NotifyHold(notice Notice) {
	data, err := json.Marshal(notice)
	if err != nil {
		return
	}

	select {
	case h.broadcast <- broadcastMsg{Room: notice.BarID, Data: data}:
	case <-h.done:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// SubscribeHandler upgrades the request and keeps the connection in the
// bar's room until the client hangs up. Subscribers are read-only;
// anything they send is discarded.
func SubscribeHandler(hub *Hub, log *logger.Logger) func(http.ResponseWriter, *http.Request, httprouter.Params, string) {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params, accountID string) {
		barID := ps.ByName("barId")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn("websocket upgrade failed", "error", err, "bar_id", barID)
			return
		}

		client := &Client{
			Conn:      conn,
			Send:      make(chan []byte, 64),
			Room:      barID,
			AccountID: accountID,
		}

		hub.register <- client
		go writePump(client)
		go readPump(client, hub)
	}
}

func writePump(c *Client) {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func readPump(c *Client, hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
