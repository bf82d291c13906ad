package notify

import (
	"github.com/open-control-systems/zigbee-watchdog/components/core"
	"github.com/open-control-systems/zigbee-watchdog/components/device/devwatch"
)

const (
	msgConnectFailure = "Could not connect to MQTT broker. Please check your MQTT settings."

	msgCheckNoActivity = "No MQTT message was received from any device. Please check."

	msgDebugActivity = "At least one device has sent an MQTT message." +
		" Your Zigbee Router/Repeater is working properly."

	msgDebugNoActivity = "No MQTT message was received from any device." +
		" Your Zigbee Router/Repeater may not be functioning properly. Please check."
)

// Policy decides whether and what to notify for a single run outcome.
type Policy struct {
	mode     Mode
	notifier Notifier
}

// NewPolicy is an initialization of Policy.
//
// Parameters:
//   - mode - notification mode of the run.
//   - notifier to deliver the decided messages.
func NewPolicy(mode Mode, notifier Notifier) *Policy {
	return &Policy{
		mode:     mode,
		notifier: notifier,
	}
}

// ReportConnectFailure notifies that the broker connection failed.
//
// Remarks:
//   - Sent unconditionally, in any mode.
func (p *Policy) ReportConnectFailure() {
	p.send(msgConnectFailure)
}

// ReportResult notifies about the observation verdict.
//
// Remarks:
//   - In check mode a healthy verdict is silent, cron runs shouldn't be noisy.
func (p *Policy) ReportResult(result devwatch.Result) {
	switch {
	case p.mode == ModeCheck && !result.AnyActivity:
		p.send(msgCheckNoActivity)

	case p.mode == ModeDebug && result.AnyActivity:
		core.LogInf.Printf("notify-policy: reported topics: %v\n", result.Topics)

		p.send(msgDebugActivity)

	case p.mode == ModeDebug && !result.AnyActivity:
		p.send(msgDebugNoActivity)
	}
}

func (p *Policy) send(text string) {
	if err := p.notifier.Notify(text); err != nil {
		core.LogErr.Printf("notify-policy: failed to deliver notification: %v\n", err)
	}
}
