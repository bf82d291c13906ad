package sysmdns

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"

	"github.com/open-control-systems/zigbee-watchdog/components/core"
	"github.com/open-control-systems/zigbee-watchdog/components/system/sysnet"
)

// ZeroconfBrowserParams represents various options for zeroconf mDNS browser.
type ZeroconfBrowserParams struct {
	// Service is a mDNS service to lookup for.
	//
	// Examples:
	//  - Lookup for all MQTT brokers over TCP protocol: "_mqtt._tcp".
	Service string

	// Domain is a mDNS domain.
	//
	// Examples:
	//  - Local domain: "local".
	Domain string

	// Timeout is a mDNS browsing timeout.
	Timeout time.Duration
}

// ZeroconfBrowser browses the local network for the mDNS services.
//
// References:
//   - https://github.com/grandcat/zeroconf
type ZeroconfBrowser struct {
	params   ZeroconfBrowserParams
	ctx      context.Context
	handler  sysnet.ResolveHandler
	resolver *zeroconf.Resolver
}

// NewZeroconfBrowser is an initialization of ZeroconfBrowser.
//
// Parameters:
//   - ctx - parent context.
//   - handler to receive hostname to address resolving results.
//   - params - various browser parameters.
func NewZeroconfBrowser(
	ctx context.Context,
	handler sysnet.ResolveHandler,
	params ZeroconfBrowserParams,
) (*ZeroconfBrowser, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, err
	}

	return &ZeroconfBrowser{
		params:   params,
		ctx:      ctx,
		handler:  handler,
		resolver: resolver,
	}, nil
}

// Run executes a single mDNS lookup operation.
func (b *ZeroconfBrowser) Run() error {
	ctx, cancel := context.WithTimeout(b.ctx, b.params.Timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry)

	if err := b.resolver.Browse(ctx, b.params.Service, b.params.Domain, entries); err != nil {
		return err
	}

	for {
		select {
		case entry := <-entries:
			b.handleEntry(entry)

		case <-ctx.Done():
			return nil
		}
	}
}

// Close closes the browser resources.
func (*ZeroconfBrowser) Close() error {
	return nil
}

func (b *ZeroconfBrowser) handleEntry(entry *zeroconf.ServiceEntry) {
	if entry == nil {
		return
	}

	if len(entry.AddrIPv4) < 1 {
		core.LogWrn.Printf("mdns-zeroconf-browser: ignore entry: service=%s domain=%s:"+
			" IPv4 address not found\n", b.params.Service, b.params.Domain)

		return
	}

	b.handler.HandleResolve(
		strings.TrimSuffix(entry.HostName, "."),
		&net.IPAddr{IP: entry.AddrIPv4[0]},
	)
}
