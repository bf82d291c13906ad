package pipwatch

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/open-control-systems/zigbee-watchdog/components/bus/busmqtt"
	"github.com/open-control-systems/zigbee-watchdog/components/core"
	"github.com/open-control-systems/zigbee-watchdog/components/device/devwatch"
	"github.com/open-control-systems/zigbee-watchdog/components/http/htclient"
	"github.com/open-control-systems/zigbee-watchdog/components/notify"
	"github.com/open-control-systems/zigbee-watchdog/components/notify/nttelegram"
	"github.com/open-control-systems/zigbee-watchdog/components/system/syscore"
	"github.com/open-control-systems/zigbee-watchdog/components/system/sysmdns"
	"github.com/open-control-systems/zigbee-watchdog/components/system/sysnet"
)

// PipelineParams provides various configuration options for Pipeline.
type PipelineParams struct {
	// Session - broker session parameters.
	Session busmqtt.SessionParams

	// Telegram - notification endpoint parameters.
	Telegram nttelegram.TelegramParams

	// Topics - monitored device topics, may be empty.
	Topics []string

	// Mode - notification mode of the run.
	Mode notify.Mode

	// Deadline - how long to listen for device messages.
	Deadline time.Duration

	// PollInterval - how often to inspect the arrival ledger.
	PollInterval time.Duration

	// MdnsBrowseTimeout - how long to browse the local network for the broker.
	MdnsBrowseTimeout time.Duration
}

// Pipeline runs a single bounded observation of the configured device topics.
type Pipeline struct {
	ctx    context.Context
	closer *core.FanoutCloser
	policy *notify.Policy
	params PipelineParams
}

// NewPipeline is an initialization of Pipeline.
//
// Parameters:
//   - ctx - parent context.
//   - closer - to register all resources that should be closed.
//   - params - various pipeline parameters.
func NewPipeline(
	ctx context.Context,
	closer *core.FanoutCloser,
	params PipelineParams,
) *Pipeline {
	if params.MdnsBrowseTimeout == 0 {
		params.MdnsBrowseTimeout = time.Second * 5
	}

	notifier := nttelegram.NewTelegram(ctx, htclient.NewDefaultClient(), params.Telegram)

	return &Pipeline{
		ctx:    ctx,
		closer: closer,
		policy: notify.NewPolicy(params.Mode, notifier),
		params: params,
	}
}

// Run performs the whole observation: broker resolving, subscription,
// bounded watch, notification.
//
// Remarks:
//   - A broker connection failure short-circuits the run: the observation
//     window never starts and the failure notification is the only output.
//   - Notification delivery failures never fail the run.
func (p *Pipeline) Run() error {
	sessionParams := p.params.Session

	if strings.HasSuffix(sessionParams.Host, ".local") {
		addr, err := p.resolveBroker(sessionParams.Host)
		if err != nil {
			core.LogErr.Printf("pipeline: failed to resolve broker: host=%s err=%v\n",
				sessionParams.Host, err)

			p.policy.ReportConnectFailure()

			return nil
		}

		sessionParams.Addr = addr.String()
	}

	ledger := devwatch.NewLedger(p.params.Topics)

	session := busmqtt.NewSession(ledger, sessionParams)

	if err := session.Open(); err != nil {
		core.LogErr.Printf("pipeline: %v\n", err)

		p.policy.ReportConnectFailure()

		return nil
	}
	p.closer.Add("mqtt-session", session)

	if err := session.Subscribe(p.params.Topics); err != nil {
		core.LogErr.Printf("pipeline: %v\n", err)

		p.policy.ReportConnectFailure()

		return nil
	}

	watcher := devwatch.NewWatcher(&syscore.LocalMonotonicClock{}, ledger,
		devwatch.WatcherParams{
			PollInterval: p.params.PollInterval,
		})

	result := watcher.Watch(p.params.Deadline)

	p.policy.ReportResult(result)

	return nil
}

func (p *Pipeline) resolveBroker(host string) (net.Addr, error) {
	store := sysnet.NewResolveStore()
	store.Add(host)

	browser, err := sysmdns.NewZeroconfBrowser(
		p.ctx,
		store,
		sysmdns.ZeroconfBrowserParams{
			Service: sysnet.MdnsServiceName(sysnet.MdnsServiceTypeMqtt, sysnet.MdnsProtoTCP),
			Domain:  "local",
			Timeout: p.params.MdnsBrowseTimeout,
		})
	if err != nil {
		return nil, err
	}
	defer browser.Close()

	if err := browser.Run(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(p.ctx, time.Second)
	defer cancel()

	return store.Resolve(ctx, host)
}
