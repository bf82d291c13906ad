package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/open-control-systems/zigbee-watchdog/components/bus/busmqtt"
	"github.com/open-control-systems/zigbee-watchdog/components/config"
	"github.com/open-control-systems/zigbee-watchdog/components/core"
	"github.com/open-control-systems/zigbee-watchdog/components/notify"
	"github.com/open-control-systems/zigbee-watchdog/components/notify/nttelegram"
	"github.com/open-control-systems/zigbee-watchdog/components/pipeline/pipwatch"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		checkMode  bool
		debugMode  bool
		listenTime int
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "zigbee-watchdog",
		Short: "Monitor Zigbee Router/Repeater MQTT message reception",
		Long: "Listen for MQTT messages from the configured device topics for a fixed" +
			" amount of time and report the verdict with a Telegram notification.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			if checkMode == debugMode {
				return fmt.Errorf("exactly one of --check or --debug is required")
			}
			if listenTime < 0 {
				return fmt.Errorf("--time should be non-negative")
			}

			mode := notify.ModeCheck
			if debugMode {
				mode = notify.ModeDebug
			}

			return run(configPath, mode, time.Duration(listenTime)*time.Second)
		},
	}

	cmd.Flags().BoolVarP(&checkMode, "check", "c", false, "check for normal operation")
	cmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "enable debug mode")
	cmd.Flags().IntVarP(&listenTime, "time", "t", 0,
		"amount of time in seconds to listen for an MQTT message")
	cmd.Flags().StringVar(&configPath, "config", "config.yml",
		"path to the configuration file")

	cmd.MarkFlagsMutuallyExclusive("check", "debug")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func run(configPath string, mode notify.Mode, deadline time.Duration) error {
	if path := os.Getenv("ZIGBEE_WATCHDOG_LOG_PATH"); path != "" {
		if err := core.SetLogFile(path); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to setup log file: ", err)
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	appContext, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	fanoutCloser := &core.FanoutCloser{}
	defer fanoutCloser.Close()

	core.LogInf.Printf("main: starting observation: mode=%s deadline=%s topics=%d\n",
		mode, deadline, len(cfg.Devices.Topics))

	pipeline := pipwatch.NewPipeline(appContext, fanoutCloser, pipwatch.PipelineParams{
		Session: busmqtt.SessionParams{
			Host:           cfg.Mqtt.Broker,
			User:           cfg.Mqtt.User,
			Password:       cfg.Mqtt.Password,
			ClientID:       "zigbee-watchdog",
			ConnectTimeout: time.Second * 10,
		},
		Telegram: nttelegram.TelegramParams{
			BotToken: cfg.Telegram.BotToken,
			ChatID:   cfg.Telegram.ChatID,
		},
		Topics:   cfg.Devices.Topics,
		Mode:     mode,
		Deadline: deadline,
	})

	return pipeline.Run()
}
