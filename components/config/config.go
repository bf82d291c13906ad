package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a single-run watchdog configuration.
type Config struct {
	Mqtt     MqttConfig     `yaml:"mqtt"`
	Devices  DevicesConfig  `yaml:"devices"`
	Telegram TelegramConfig `yaml:"telegram"`
}

// MqttConfig contains MQTT broker address and credentials.
type MqttConfig struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	// Broker is a broker hostname, without port. Hosts ending in ".local"
	// are resolved with mDNS before connecting.
	Broker string `yaml:"broker"`
}

// DevicesConfig contains the monitored device topics.
//
// Remarks:
//   - Topics may be empty. Subscribing to nothing is legal and yields
//     a permanently silent observation.
type DevicesConfig struct {
	Topics []string `yaml:"topics"`
}

// TelegramConfig contains the notification endpoint identity.
type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   string `yaml:"chat_id"`
}

// Load reads the configuration from the YAML file.
//
// Remarks:
//   - A missing required field fails the load; the caller is expected to
//     abort before any network activity happens.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"mqtt.user", c.Mqtt.User},
		{"mqtt.password", c.Mqtt.Password},
		{"mqtt.broker", c.Mqtt.Broker},
		{"telegram.bot_token", c.Telegram.BotToken},
		{"telegram.chat_id", c.Telegram.ChatID},
	}

	for _, field := range fields {
		if field.value == "" {
			return fmt.Errorf("config: missing required field: %s", field.name)
		}
	}

	return nil
}
