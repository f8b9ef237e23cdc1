package service

import "taxledger/internal/websocket"

// EventPublisher delivers change notifications to live dashboards
type EventPublisher interface {
	Publish(event websocket.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(websocket.Event) {}

func publisherOrNop(p EventPublisher) EventPublisher {
	if p == nil {
		return nopPublisher{}
	}
	return p
}
