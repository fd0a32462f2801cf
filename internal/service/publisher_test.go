package service

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/websocket"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []websocket.Event
	owners []uuid.UUID
}

func (p *recordingPublisher) Publish(ownerID uuid.UUID, event websocket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.owners = append(p.owners, ownerID)
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}
