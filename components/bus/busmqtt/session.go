package busmqtt

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/open-control-systems/zigbee-watchdog/components/core"
	"github.com/open-control-systems/zigbee-watchdog/components/status"
)

const (
	// Port and keepalive are fixed constants of the deployment.
	brokerPort = 1883
	keepAlive  = time.Second * 60

	// How long to wait for in-flight messages on disconnect, in milliseconds.
	disconnectQuiesce = 250
)

// SessionParams provides various configuration options for Session.
type SessionParams struct {
	// Host - broker hostname from the configuration.
	Host string

	// Addr - optional pre-resolved broker address, used instead of Host if set.
	Addr string

	// User - broker username.
	User string

	// Password - broker password.
	Password string

	// ClientID - MQTT client identifier.
	ClientID string

	// ConnectTimeout - how long to wait for the broker connection.
	ConnectTimeout time.Duration
}

// Session owns a single MQTT broker connection for one observation run.
type Session struct {
	uri    string
	client mqtt.Client
}

// NewSession is an initialization of Session.
//
// Parameters:
//   - handler to receive message arrivals.
//   - params - various session parameters.
func NewSession(handler ArrivalHandler, params SessionParams) *Session {
	uri := brokerURI(params)

	opts := mqtt.NewClientOptions().
		AddBroker(uri).
		SetClientID(params.ClientID).
		SetUsername(params.User).
		SetPassword(params.Password).
		SetKeepAlive(keepAlive).
		SetAutoReconnect(false)

	if params.ConnectTimeout != 0 {
		opts.SetConnectTimeout(params.ConnectTimeout)
	}

	opts.SetOnConnectHandler(func(mqtt.Client) {
		core.LogInf.Printf("mqtt-session: connected to broker: uri=%s\n", uri)
	})

	opts.SetDefaultPublishHandler(func(_ mqtt.Client, msg mqtt.Message) {
		handler.HandleArrival(msg.Topic(), msg.Payload())
	})

	return &Session{
		uri:    uri,
		client: mqtt.NewClient(opts),
	}
}

// Open establishes the broker connection.
//
// Remarks:
//   - Transport and authentication failures are returned to the caller,
//     the connection is never retried internally.
func (s *Session) Open() error {
	token := s.client.Connect()
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt-session: failed to connect to broker: uri=%s: %v: %w",
			s.uri, token.Error(), status.StatusError)
	}

	return nil
}

// Subscribe registers interest in every provided topic.
//
// Remarks:
//   - Subscribing to zero topics is legal and is a no-op.
func (s *Session) Subscribe(topics []string) error {
	for _, topic := range topics {
		token := s.client.Subscribe(topic, 0, nil)
		if token.Wait() && token.Error() != nil {
			return fmt.Errorf("mqtt-session: failed to subscribe: topic=%s: %v: %w",
				topic, token.Error(), status.StatusError)
		}
	}

	return nil
}

// Close releases the broker connection.
func (s *Session) Close() error {
	s.client.Disconnect(disconnectQuiesce)

	return nil
}

func brokerURI(params SessionParams) string {
	host := params.Host
	if params.Addr != "" {
		host = params.Addr
	}

	return fmt.Sprintf("tcp://%s:%d", host, brokerPort)
}
