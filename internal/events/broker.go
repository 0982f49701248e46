package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Type string

const (
	TypeMatchReady     Type = "match.ready"
	TypeMatchStarted   Type = "match.started"
	TypeMatchCompleted Type = "match.completed"
	TypeMatchDisputed  Type = "match.disputed"
)

type Event struct {
	Type     Type      `json:"type"`
	MatchID  string    `json:"match_id"`
	WinnerID *int64    `json:"winner_id,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher is the notification boundary. Publishing is best effort: the
// engine never depends on delivery succeeding.
type Publisher interface {
	Publish(e Event)
}

// Broker fans events out to in-process subscribers (SSE streams). Slow
// subscribers lose events rather than block the publishing operation.
type Broker struct {
	mu     sync.RWMutex
	subs   map[chan Event]struct{}
	logger zerolog.Logger
}

func NewBroker(logger zerolog.Logger) *Broker {
	return &Broker{
		subs:   make(map[chan Event]struct{}),
		logger: logger,
	}
}

func (b *Broker) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.logger.Warn().Str("type", string(e.Type)).Str("match_id", e.MatchID).Msg("subscriber buffer full, event dropped")
		}
	}

	b.logger.Debug().Str("type", string(e.Type)).Str("match_id", e.MatchID).Int("subscribers", len(b.subs)).Msg("event published")
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called to release the channel.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		delete(b.subs, ch)
		b.mu.Unlock()
	}
	return ch, cancel
}
