package devwatch

import (
	"sort"
	"sync"
)

// Ledger tracks which monitored topics produced at least one message.
//
// Remarks:
//   - The topic set is fixed at the initialization; arrivals for unknown
//     topics are filtered out.
//   - Marks are monotone, a topic is never unmarked during a run.
//   - Safe for concurrent use: the transport delivery callback marks
//     arrivals while the observation loop takes snapshots.
type Ledger struct {
	mu      sync.Mutex
	arrived map[string]bool
}

// NewLedger is an initialization of Ledger.
//
// Parameters:
//   - topics - monitored topics, each is initially marked as silent.
func NewLedger(topics []string) *Ledger {
	arrived := make(map[string]bool, len(topics))

	for _, topic := range topics {
		arrived[topic] = false
	}

	return &Ledger{
		arrived: arrived,
	}
}

// HandleArrival marks the topic as seen.
//
// Remarks:
//   - Idempotent, repeated arrivals for the same topic are no-ops.
//   - Payload is never inspected, only the arrival itself matters.
func (l *Ledger) HandleArrival(topic string, _ []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.arrived[topic]; !ok {
		return
	}

	l.arrived[topic] = true
}

// Snapshot returns the observation result for the current ledger state.
func (l *Ledger) Snapshot() Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	var topics []string

	for topic, seen := range l.arrived {
		if seen {
			topics = append(topics, topic)
		}
	}

	sort.Strings(topics)

	return Result{
		AnyActivity: len(topics) > 0,
		Topics:      topics,
	}
}
