package network

import "github.com/lixenwraith/vi-snake/engine"

// MessageType identifies the semantic meaning of a message, sent as the "t" field
type MessageType string

const (
	MsgWelcome  MessageType = "welcome"  // First message after connect
	MsgSnapshot MessageType = "snapshot" // Full visible state
	MsgEvent    MessageType = "event"    // Game event notification
	MsgError    MessageType = "error"    // Sent before the server closes the socket
)

// WelcomeMsg tells a spectator its ID and the arena
type WelcomeMsg struct {
	Type   MessageType `json:"t"`
	ID     string      `json:"id"`
	Width  int32       `json:"width"`
	Height int32       `json:"height"`
}

// SnapshotMsg carries one state snapshot
type SnapshotMsg struct {
	Type  MessageType     `json:"t"`
	Seq   uint64          `json:"seq"`
	State engine.Snapshot `json:"state"`
}

// EventMsg carries a game event by name
type EventMsg struct {
	Type    MessageType `json:"t"`
	Event   string      `json:"event"`
	Frame   int64       `json:"frame"`
	Payload any         `json:"payload,omitempty"`
}

// ErrorMsg explains why the server is closing the connection
type ErrorMsg struct {
	Type    MessageType `json:"t"`
	Message string      `json:"message"`
}
