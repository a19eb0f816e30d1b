// Package production provides integrations around a running machine:
// lifecycle event publishing, snapshots and visualization.
package production

import (
	"github.com/comalice/statestack"
)

// ChannelPublisher is a statestack.Observer that forwards hook events to a Go
// channel. Publishing never blocks the tick: events are dropped when the
// channel is full.
type ChannelPublisher struct {
	ch      chan<- statestack.HookEvent
	dropped uint64
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- statestack.HookEvent) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) OnHook(ev statestack.HookEvent) {
	select {
	case p.ch <- ev:
	default:
		p.dropped++ // Non-blocking drop
	}
}

// Dropped returns the number of events dropped on backpressure. Read it from
// the tick goroutine or after the machine has stopped.
func (p *ChannelPublisher) Dropped() uint64 {
	return p.dropped
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
