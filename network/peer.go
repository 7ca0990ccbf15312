package network

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Peer is one connected spectator
type Peer struct {
	ID string

	ws           *websocket.Conn
	writeTimeout time.Duration

	// Send queue
	sendCh chan []byte

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

// newPeer wraps an upgraded connection
func newPeer(ws *websocket.Conn, sendQueueSize int, writeTimeout time.Duration) *Peer {
	return &Peer{
		ID:           uuid.New().String(),
		ws:           ws,
		writeTimeout: writeTimeout,
		sendCh:       make(chan []byte, sendQueueSize),
		closeCh:      make(chan struct{}),
	}
}

// Send queues an encoded message
// Returns false if the peer is closed or its queue is full; slow spectators drop frames
func (p *Peer) Send(data []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- data:
		return true
	default:
		return false
	}
}

// Close initiates shutdown
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.ws.Close()
	})
}

// Done is closed once the peer shuts down
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readLoop drains client frames until the socket closes; spectators are read-only
func (p *Peer) readLoop() {
	defer p.Close()

	for {
		if _, _, err := p.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("spectator %s read error: %v", p.ID, err)
			}
			return
		}
	}
}

// writeLoop sends queued messages
func (p *Peer) writeLoop() {
	defer p.Close()

	for {
		select {
		case <-p.closeCh:
			return
		case data := <-p.sendCh:
			if err := p.ws.SetWriteDeadline(time.Now().Add(p.writeTimeout)); err != nil {
				return
			}
			if err := p.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}
