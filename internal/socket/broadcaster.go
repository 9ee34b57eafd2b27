package socket

// Broadcaster provides high-level methods for broadcasting events
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// BroadcastInquiryCreated pushes a new inquiry to every connected admin
func (b *Broadcaster) BroadcastInquiryCreated(inquiry map[string]any) {
	if b == nil || b.hub == nil {
		return
	}
	b.hub.Broadcast(MessageInquiryCreated, inquiry)
}
