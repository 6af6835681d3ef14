package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Progress message types, emitted while an audit is being analyzed
const (
	MsgSectionAnalyzing  MessageType = "section_analyzing"
	MsgSectionAnalyzed   MessageType = "section_analyzed"
	MsgAnalysisComplete  MessageType = "analysis_complete"
	MsgAnalysisFailed    MessageType = "analysis_failed"
	MsgRefinementStarted MessageType = "refinement_started"
	MsgRefinementDone    MessageType = "refinement_complete"
	MsgError             MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket subscribers per audit. Multiple tabs may watch the
// same audit's progress; each audit's subscribers are independent.
type Hub struct {
	// Audit -> connections
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	AuditID string
	Send    chan []byte
	Hub     *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	AuditID string
	Message *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.AuditID] == nil {
				h.conns[conn.AuditID] = make(map[*Connection]bool)
			}
			h.conns[conn.AuditID][conn] = true
			log.Printf("Subscriber connected to audit %s", conn.AuditID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if subs, ok := h.conns[conn.AuditID]; ok {
				if subs[conn] {
					delete(subs, conn)
					close(conn.Send)
					log.Printf("Subscriber disconnected from audit %s", conn.AuditID)
				}
				if len(subs) == 0 {
					delete(h.conns, conn.AuditID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.AuditID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastToAudit sends a message to every subscriber of an audit
// (implements service.Broadcaster)
func (h *Hub) BroadcastToAudit(auditID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &BroadcastMessage{
		AuditID: auditID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// DisconnectAudit drops every subscriber of an audit (implements
// service.Broadcaster). Called when the audit is deleted.
func (h *Hub) DisconnectAudit(auditID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.conns[auditID]; ok {
		for conn := range subs {
			close(conn.Send)
		}
		delete(h.conns, auditID)
	}
}
