package service

// Broadcaster interface for WebSocket progress events (avoids import cycle)
type Broadcaster interface {
	BroadcastToAudit(auditID string, msgType string, payload interface{})
	DisconnectAudit(auditID string)
}
