package devwatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/zigbee-watchdog/components/system/syscore"
)

func newTestWatcher(ledger *Ledger) *Watcher {
	return NewWatcher(&syscore.LocalMonotonicClock{}, ledger, WatcherParams{
		PollInterval: time.Millisecond * 5,
	})
}

func TestWatcherSilentWindow(t *testing.T) {
	ledger := NewLedger([]string{"zigbee2mqtt/r1", "zigbee2mqtt/r2"})
	watcher := newTestWatcher(ledger)

	deadline := time.Millisecond * 50

	start := time.Now()
	result := watcher.Watch(deadline)

	require.False(t, result.AnyActivity)
	require.Empty(t, result.Topics)
	require.GreaterOrEqual(t, time.Since(start), deadline)
}

func TestWatcherSilentWindowEmptyTopicSet(t *testing.T) {
	ledger := NewLedger(nil)
	watcher := newTestWatcher(ledger)

	result := watcher.Watch(time.Millisecond * 30)

	require.False(t, result.AnyActivity)
	require.Empty(t, result.Topics)
}

func TestWatcherArrivalMidWindow(t *testing.T) {
	ledger := NewLedger([]string{"zigbee2mqtt/r1", "zigbee2mqtt/r2", "zigbee2mqtt/r3"})
	watcher := newTestWatcher(ledger)

	deadline := time.Millisecond * 80

	go func() {
		time.Sleep(time.Millisecond * 20)
		ledger.HandleArrival("zigbee2mqtt/r1", []byte("{}"))
	}()

	start := time.Now()
	result := watcher.Watch(deadline)

	require.True(t, result.AnyActivity)
	require.Equal(t, []string{"zigbee2mqtt/r1"}, result.Topics)

	// Activity doesn't shorten the window.
	require.GreaterOrEqual(t, time.Since(start), deadline)
}

func TestWatcherNoEarlyExitOnActivity(t *testing.T) {
	ledger := NewLedger([]string{"zigbee2mqtt/r1"})
	watcher := newTestWatcher(ledger)

	ledger.HandleArrival("zigbee2mqtt/r1", []byte("{}"))

	deadline := time.Millisecond * 60

	start := time.Now()
	result := watcher.Watch(deadline)

	require.True(t, result.AnyActivity)
	require.GreaterOrEqual(t, time.Since(start), deadline)
}

func TestWatcherCollectsLateArrivals(t *testing.T) {
	ledger := NewLedger([]string{"zigbee2mqtt/r1", "zigbee2mqtt/r2"})
	watcher := newTestWatcher(ledger)

	ledger.HandleArrival("zigbee2mqtt/r1", nil)

	go func() {
		time.Sleep(time.Millisecond * 40)
		ledger.HandleArrival("zigbee2mqtt/r2", nil)
	}()

	result := watcher.Watch(time.Millisecond * 80)

	require.True(t, result.AnyActivity)
	require.Equal(t, []string{"zigbee2mqtt/r1", "zigbee2mqtt/r2"}, result.Topics)
}

func TestWatcherZeroDeadline(t *testing.T) {
	ledger := NewLedger([]string{"zigbee2mqtt/r1"})
	watcher := newTestWatcher(ledger)

	start := time.Now()
	result := watcher.Watch(0)

	require.False(t, result.AnyActivity)
	require.Less(t, time.Since(start), time.Millisecond*20)
}

func TestWatcherZeroDeadlineSnapshotsLedger(t *testing.T) {
	ledger := NewLedger([]string{"zigbee2mqtt/r1"})
	watcher := newTestWatcher(ledger)

	ledger.HandleArrival("zigbee2mqtt/r1", nil)

	result := watcher.Watch(0)

	require.True(t, result.AnyActivity)
	require.Equal(t, []string{"zigbee2mqtt/r1"}, result.Topics)
}

func TestWatcherDefaultPollInterval(t *testing.T) {
	ledger := NewLedger(nil)

	watcher := NewWatcher(&syscore.LocalMonotonicClock{}, ledger, WatcherParams{})
	require.Equal(t, time.Second, watcher.params.PollInterval)
}
