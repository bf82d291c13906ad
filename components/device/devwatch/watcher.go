package devwatch

import (
	"time"

	"github.com/open-control-systems/zigbee-watchdog/components/core"
	"github.com/open-control-systems/zigbee-watchdog/components/system/syscore"
)

// WatcherParams provides various configuration options for Watcher.
type WatcherParams struct {
	// PollInterval - how often to inspect the arrival ledger.
	PollInterval time.Duration
}

// Watcher drives a bounded-duration observation of the arrival ledger.
type Watcher struct {
	clock  syscore.MonotonicClock
	ledger *Ledger
	params WatcherParams
}

// NewWatcher is an initialization of Watcher.
//
// Parameters:
//   - clock to measure the elapsed observation time.
//   - ledger to inspect for message arrivals.
//   - params - various watcher parameters.
func NewWatcher(clock syscore.MonotonicClock, ledger *Ledger, params WatcherParams) *Watcher {
	if params.PollInterval == 0 {
		params.PollInterval = time.Second
	}

	return &Watcher{
		clock:  clock,
		ledger: ledger,
		params: params,
	}
}

// Watch observes the ledger until the deadline elapses.
//
// Remarks:
//   - The loop never exits early on activity: the final result should include
//     every topic that reported at any point of the window, and the total run
//     duration should stay predictable for cron scheduling.
//   - A non-positive deadline yields a single immediate ledger snapshot.
func (w *Watcher) Watch(deadline time.Duration) Result {
	start := w.clock.Now()

	active := false

	for w.clock.Now().Sub(start) < deadline {
		if !active && w.ledger.Snapshot().AnyActivity {
			active = true

			core.LogInf.Printf("watcher: activity observed, watching until the deadline\n")
		}

		time.Sleep(w.params.PollInterval)
	}

	return w.ledger.Snapshot()
}
