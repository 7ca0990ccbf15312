package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/parameter"
	"github.com/lixenwraith/vi-snake/status"
)

// Config holds spectator hub settings
type Config struct {
	Path          string
	MaxClients    int
	SendQueueSize int
	WriteTimeout  time.Duration
}

// DefaultConfig returns default hub settings
func DefaultConfig() Config {
	return Config{
		Path:          parameter.SpectatorPath,
		MaxClients:    parameter.SpectatorMaxClients,
		SendQueueSize: parameter.SpectatorSendQueue,
		WriteTimeout:  parameter.SpectatorWriteTimeout,
	}
}

// Hub fans game state out to websocket spectators
//
// Publish and HandleEvent are called from the tick goroutine and never block:
// each message is encoded once and queued per peer, full queues drop it
type Hub struct {
	cfg      Config
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	peers  map[string]*Peer
	width  int32
	height int32

	// lastState is the most recent encoded snapshot, replayed to peers on join
	lastState []byte

	// Tick goroutine only
	lastKey stateKey
	hasLast bool
	seq     atomic.Uint64

	server  *http.Server
	running atomic.Bool

	// Telemetry
	statClients *atomic.Int64
}

// stateKey is the part of a snapshot that changes on every move, growth, spawn, rot or reset
type stateKey struct {
	round     int
	length    int
	head      core.Point
	foodCount int
	foodCells uint64
	heading   core.Direction
}

// foodFingerprint folds food cells in snapshot order into one value
// A rot and a spawn in the same tick keep the count but change the cells
func foodFingerprint(food []engine.FoodView) uint64 {
	var h uint64 = 14695981039346656037
	for _, f := range food {
		h ^= uint64(uint32(f.Position.X))<<32 | uint64(uint32(f.Position.Y))
		h *= 1099511628211
	}
	return h
}

// NewHub creates a hub; reg may be nil
func NewHub(cfg Config, reg *status.Registry) *Hub {
	if reg == nil {
		reg = status.NewRegistry()
	}
	if cfg.Path == "" {
		cfg.Path = parameter.SpectatorPath
	}
	if cfg.SendQueueSize <= 0 {
		cfg.SendQueueSize = parameter.SpectatorSendQueue
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = parameter.SpectatorWriteTimeout
	}
	return &Hub{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Read-only feed, any origin may watch
				return true
			},
			ReadBufferSize:    1024,
			WriteBufferSize:   4096,
			EnableCompression: true,
		},
		peers:       make(map[string]*Peer),
		statClients: reg.Ints.Get("spectator.clients"),
	}
}

// Handler returns the HTTP handler serving the websocket endpoint
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(h.cfg.Path, h.serveWS)
	return mux
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("spectator upgrade error: %v", err)
		return
	}

	// Check limits after upgrade so the client can receive the error message
	if h.cfg.MaxClients > 0 && h.PeerCount() >= h.cfg.MaxClients {
		sendErrorAndClose(ws, "spectator limit reached")
		return
	}
	ws.EnableWriteCompression(true)

	peer := newPeer(ws, h.cfg.SendQueueSize, h.cfg.WriteTimeout)
	h.join(peer)
	log.Printf("spectator connected: %s (%s)", peer.ID, r.RemoteAddr)

	core.Go(peer.writeLoop)
	peer.readLoop()

	h.remove(peer.ID)
	log.Printf("spectator disconnected: %s", peer.ID)
}

// sendErrorAndClose sends an error message then closes the connection
func sendErrorAndClose(ws *websocket.Conn, msg string) {
	data, _ := json.Marshal(ErrorMsg{Type: MsgError, Message: msg})
	_ = ws.WriteMessage(websocket.TextMessage, data)
	ws.Close()
}

// join registers p and queues the welcome and the current state
// Holding the write lock keeps a concurrent Publish from slipping in ahead of the welcome
func (h *Hub) join(p *Peer) {
	h.mu.Lock()
	welcome, err := json.Marshal(WelcomeMsg{Type: MsgWelcome, ID: p.ID, Width: h.width, Height: h.height})
	if err == nil {
		p.Send(welcome)
	}
	if h.lastState != nil {
		p.Send(h.lastState)
	}
	h.peers[p.ID] = p
	n := len(h.peers)
	h.mu.Unlock()
	h.statClients.Store(int64(n))
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	delete(h.peers, id)
	n := len(h.peers)
	h.mu.Unlock()
	h.statClients.Store(int64(n))
}

// PeerCount returns the number of connected spectators
func (h *Hub) PeerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// broadcast queues data on every peer, returns how many accepted it
func (h *Hub) broadcast(data []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sent := 0
	for _, p := range h.peers {
		if p.Send(data) {
			sent++
		}
	}
	return sent
}

// Publish broadcasts a snapshot when the visible state changed since the last one
// The encoded state is kept for spectators that join later
// Returns true when the message was queued to at least one peer
func (h *Hub) Publish(snap engine.Snapshot) bool {
	key := stateKey{
		round:     snap.Round,
		length:    len(snap.Snake),
		foodCount: snap.FoodCount,
		foodCells: foodFingerprint(snap.Food),
		heading:   snap.Heading,
	}
	if len(snap.Snake) > 0 {
		key.head = snap.Snake[0]
	}
	if h.hasLast && key == h.lastKey {
		return false
	}
	h.lastKey = key
	h.hasLast = true

	data, err := json.Marshal(SnapshotMsg{Type: MsgSnapshot, Seq: h.seq.Add(1), State: snap})
	if err != nil {
		log.Printf("spectator snapshot encode: %v", err)
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.width, h.height = snap.Width, snap.Height
	h.lastState = data
	sent := 0
	for _, p := range h.peers {
		if p.Send(data) {
			sent++
		}
	}
	return sent > 0
}

// EventTypes implements event.Handler
func (h *Hub) EventTypes() []event.EventType {
	return []event.EventType{event.EventGrowth, event.EventGameOver}
}

// HandleEvent implements event.Handler
func (h *Hub) HandleEvent(ev event.GameEvent) {
	if h.PeerCount() == 0 {
		return
	}
	data, err := json.Marshal(EventMsg{Type: MsgEvent, Event: ev.Type.String(), Frame: ev.Frame, Payload: ev.Payload})
	if err != nil {
		log.Printf("spectator event encode: %v", err)
		return
	}
	h.broadcast(data)
}

// Start listens on addr and serves spectators in the background
func (h *Hub) Start(addr string) (net.Addr, error) {
	if !h.running.CompareAndSwap(false, true) {
		return nil, errors.New("spectator hub already running")
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		h.running.Store(false)
		return nil, fmt.Errorf("spectator listen %s: %w", addr, err)
	}

	h.server = &http.Server{
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	core.Go(func() {
		if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("spectator server error: %v", err)
		}
	})

	log.Printf("spectator feed on ws://%s%s", ln.Addr(), h.cfg.Path)
	return ln.Addr(), nil
}

// Shutdown stops the server and disconnects every spectator
func (h *Hub) Shutdown(ctx context.Context) error {
	if !h.running.CompareAndSwap(true, false) {
		return nil
	}

	h.mu.RLock()
	for _, p := range h.peers {
		p.Close()
	}
	h.mu.RUnlock()

	return h.server.Shutdown(ctx)
}
