package busmqtt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/zigbee-watchdog/components/device/devwatch"
)

func TestBrokerURI(t *testing.T) {
	uri := brokerURI(SessionParams{
		Host: "broker.local",
	})
	require.Equal(t, "tcp://broker.local:1883", uri)
}

func TestBrokerURIResolvedAddrPreferred(t *testing.T) {
	uri := brokerURI(SessionParams{
		Host: "broker.local",
		Addr: "192.168.4.2",
	})
	require.Equal(t, "tcp://192.168.4.2:1883", uri)
}

func TestLedgerIsArrivalHandler(t *testing.T) {
	ledger := devwatch.NewLedger([]string{"zigbee2mqtt/r1"})

	var handler ArrivalHandler = ledger
	handler.HandleArrival("zigbee2mqtt/r1", []byte("{}"))

	require.True(t, ledger.Snapshot().AnyActivity)
}
