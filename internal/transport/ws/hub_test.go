package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConn(hub *Hub, auditID string) *Connection {
	return &Connection{AuditID: auditID, Send: make(chan []byte, 16), Hub: hub}
}

func recvMessage(t *testing.T, conn *Connection) *Message {
	t.Helper()
	select {
	case raw, ok := <-conn.Send:
		require.True(t, ok, "send channel closed")
		var msg Message
		require.NoError(t, json.Unmarshal(raw, &msg))
		return &msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for broadcast")
		return nil
	}
}

func TestHubBroadcastReachesAuditSubscribers(t *testing.T) {
	hub := NewHub()

	a1 := newConn(hub, "audit-1")
	a2 := newConn(hub, "audit-1")
	other := newConn(hub, "audit-2")
	hub.Register(a1)
	hub.Register(a2)
	hub.Register(other)

	hub.BroadcastToAudit("audit-1", string(MsgSectionAnalyzed), map[string]int{"analyzed": 1})

	for _, conn := range []*Connection{a1, a2} {
		msg := recvMessage(t, conn)
		assert.Equal(t, MsgSectionAnalyzed, msg.Type)

		var payload map[string]int
		require.NoError(t, json.Unmarshal(msg.Payload, &payload))
		assert.Equal(t, 1, payload["analyzed"])
	}

	// The other audit's subscriber sees nothing.
	select {
	case raw := <-other.Send:
		t.Fatalf("unexpected message for audit-2: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	conn := newConn(hub, "audit-1")
	hub.Register(conn)
	hub.Unregister(conn)

	select {
	case _, ok := <-conn.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHubDisconnectAudit(t *testing.T) {
	hub := NewHub()
	conn := newConn(hub, "audit-1")
	other := newConn(hub, "audit-2")
	hub.Register(conn)
	hub.Register(other)

	// Registration happens on the hub goroutine; a broadcast round trip
	// guarantees it has been processed.
	hub.BroadcastToAudit("audit-1", string(MsgSectionAnalyzing), nil)
	recvMessage(t, conn)

	hub.DisconnectAudit("audit-1")

	select {
	case _, ok := <-conn.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}

	// Unrelated audits keep their subscribers.
	hub.BroadcastToAudit("audit-2", string(MsgSectionAnalyzing), nil)
	msg := recvMessage(t, other)
	assert.Equal(t, MsgSectionAnalyzing, msg.Type)
}
