package ws

import (
	"encoding/json"
	"sync"

	"go-inventario/internal/metrics"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"
)

// ChangeEvent tells list views which entity changed so they reload it.
type ChangeEvent struct {
	Type   string `json:"type"`
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     uint   `json:"id"`
}

// broadcastQueue bounds the events waiting for Run.
const broadcastQueue = 256

type Hub struct {
	Clients    map[*websocket.Conn]bool
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*websocket.Conn]bool),
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte, broadcastQueue),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			metrics.FeedClients.Set(float64(len(h.Clients)))
			h.mutex.Unlock()
			log.Debug().Msg("change feed client connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			metrics.FeedClients.Set(float64(len(h.Clients)))
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			metrics.FeedClients.Set(float64(len(h.Clients)))
			h.mutex.Unlock()
		}
	}
}

// Notify queues a data_changed event without blocking the caller. Events are
// delivered in the order Notify was called; when the queue is full the event
// is dropped.
func (h *Hub) Notify(entity, action string, id uint) {
	msg, err := json.Marshal(ChangeEvent{Type: "data_changed", Entity: entity, Action: action, ID: id})
	if err != nil {
		log.Error().Err(err).Msg("marshal change event")
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		log.Warn().Str("entity", entity).Str("action", action).Msg("change feed queue full, event dropped")
	}
}
