package sysnet

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/open-control-systems/zigbee-watchdog/components/status"
)

func TestResolveStoreResolveContextTimeout(t *testing.T) {
	store := NewResolveStore()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*100)
	defer cancel()

	addr, err := store.Resolve(ctx, "broker.local")
	require.Nil(t, addr)
	require.Equal(t, status.StatusTimeout, err)
}

func TestResolveStoreHandleResolveUnknownHostFiltered(t *testing.T) {
	store := NewResolveStore()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*100)
	defer cancel()

	host := "broker.local"
	netAddr := net.IPAddr{IP: net.IPv4(192, 168, 4, 2)}

	store.HandleResolve(host, &netAddr)

	addr, err := store.Resolve(ctx, host)
	require.Nil(t, addr)
	require.Equal(t, status.StatusTimeout, err)
}

func TestResolveStoreHandleResolve(t *testing.T) {
	store := NewResolveStore()

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond*100)
	defer cancel()

	host := "broker.local"
	netAddr := net.IPAddr{IP: net.IPv4(192, 168, 4, 2)}

	store.Add(host)
	store.HandleResolve(host, &netAddr)

	addr, err := store.Resolve(ctx, host)
	require.Nil(t, err)
	require.Equal(t, netAddr.String(), addr.String())
}

func TestResolveStoreHandleResolveAsync(t *testing.T) {
	store := NewResolveStore()

	host := "broker.local"
	netAddr := net.IPAddr{IP: net.IPv4(192, 168, 4, 2)}

	store.Add(host)

	go func() {
		time.Sleep(time.Millisecond * 300)
		store.HandleResolve(host, &netAddr)
	}()

	addr, err := store.Resolve(context.Background(), host)
	require.Nil(t, err)
	require.Equal(t, netAddr.String(), addr.String())
}

func TestResolveStoreResolveAfterRemove(t *testing.T) {
	store := NewResolveStore()

	host := "broker.local"
	netAddr := net.IPAddr{IP: net.IPv4(192, 168, 4, 2)}

	store.Add(host)
	store.HandleResolve(host, &netAddr)

	addr, err := store.Resolve(context.Background(), host)
	require.Nil(t, err)
	require.Equal(t, netAddr.String(), addr.String())

	store.Remove(host)

	addr, err = store.Resolve(context.Background(), host)
	require.Nil(t, addr)
	require.Equal(t, status.StatusNoData, err)
}
