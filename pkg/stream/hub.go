// Package stream serves a running simulation over websockets: every client
// receives density frames and may send impulses back.
package stream

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/TheFellow/stablefluid/pkg/fluid"
)

// Injector accepts impulses. Pass a *fluid.SourceQueue when the simulation
// steps on another goroutine.
type Injector interface {
	AddDensity(x, y int, amount float64)
	AddVelocity(x, y int, dx, dy float64)
}

// Hello is sent once when a client connects.
type Hello struct {
	Type string `json:"type"`
	Size int    `json:"size"`
}

// Frame carries one density snapshot in x-major order.
type Frame struct {
	Type    string    `json:"type"`
	Tick    uint64    `json:"tick"`
	Size    int       `json:"size"`
	Max     float64   `json:"max"`
	Density []float64 `json:"density"`
}

// Command is an impulse sent by a client. Type is "density" or "velocity".
type Command struct {
	Type   string  `json:"type"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Amount float64 `json:"amount,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
}

const (
	// writeWait bounds a single frame write; a client slower than this is
	// dropped.
	writeWait = 10 * time.Second
	// sendBuffer is the number of frames queued per client before new
	// frames are skipped for it.
	sendBuffer = 4
)

// client is one connection plus the frames waiting for its writer.
type client struct {
	conn *websocket.Conn
	send chan *Frame
}

// Hub tracks connected clients. Each client has its own writer goroutine,
// so Broadcast never waits on the network. The client set is guarded by mu.
type Hub struct {
	size      int
	sink      Injector
	upgrader  websocket.Upgrader
	writeWait time.Duration

	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
}

func NewHub(size int, sink Injector) *Hub {
	return &Hub{
		size: size,
		sink: sink,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		writeWait: writeWait,
		clients:   make(map[*websocket.Conn]*client),
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("stream: upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(h.writeWait))
	if err := conn.WriteJSON(Hello{Type: "hello", Size: h.size}); err != nil {
		log.Println("stream: hello write error:", err)
		return
	}

	c := &client{conn: conn, send: make(chan *Frame, sendBuffer)}
	h.mu.Lock()
	h.clients[conn] = c
	h.mu.Unlock()
	defer h.remove(conn)
	go h.writeFrames(c)

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Println("stream: read error:", err)
			}
			return
		}
		h.apply(cmd)
	}
}

func (h *Hub) apply(cmd Command) {
	switch cmd.Type {
	case "density":
		h.sink.AddDensity(cmd.X, cmd.Y, cmd.Amount)
	case "velocity":
		h.sink.AddVelocity(cmd.X, cmd.Y, cmd.DX, cmd.DY)
	default:
		log.Printf("stream: ignoring command type %q", cmd.Type)
	}
}

// writeFrames is the only writer on c.conn once the client is registered.
// It returns when the send channel is closed or a write fails; a failed
// write closes the connection, which ends the read loop in ServeHTTP.
func (h *Hub) writeFrames(c *client) {
	for frame := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err := c.conn.WriteJSON(frame); err != nil {
			log.Println("stream: write error:", err)
			c.conn.Close()
			return
		}
	}
}

// Broadcast queues the density snapshot for every client. A client whose
// queue is full skips this frame.
func (h *Hub) Broadcast(tick uint64, density fluid.ScalarField) {
	frame := &Frame{
		Type:    "frame",
		Tick:    tick,
		Size:    density.Size(),
		Max:     density.Max(),
		Density: density.Values(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- frame:
		default:
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(c.send)
	}
}
