package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
	"visionserver/internal/statsclient"

	"github.com/alecthomas/kong"
)

// CLI is the root command structure for statsctl.
type CLI struct {
	Server  string        `short:"s" default:"http://localhost:3000" env:"STATSCTL_SERVER" help:"Base URL of the server"`
	Timeout time.Duration `short:"t" default:"5s" help:"Request timeout"`

	Stats  StatsCmd  `cmd:"" default:"withargs" help:"Show aggregate statistics"`
	Health HealthCmd `cmd:"" help:"Show server health"`
	Events EventsCmd `cmd:"" help:"Show the most recent activity events"`
}

// Globals holds shared state for all commands.
type Globals struct {
	Client *statsclient.Client
	Stdout io.Writer
}

type StatsCmd struct{}

func (c *StatsCmd) Run(globals *Globals) error {
	stats, err := globals.Client.Stats(context.Background())
	if err != nil {
		return err
	}
	return statsclient.RenderStats(globals.Stdout, stats)
}

type HealthCmd struct{}

func (c *HealthCmd) Run(globals *Globals) error {
	health, err := globals.Client.Health(context.Background())
	if err != nil {
		return err
	}
	return statsclient.RenderHealth(globals.Stdout, health)
}

type EventsCmd struct {
	Limit int `short:"n" default:"20" help:"Number of events to show"`
}

func (c *EventsCmd) Run(globals *Globals) error {
	events, err := globals.Client.Events(context.Background(), c.Limit)
	if err != nil {
		return err
	}
	return statsclient.RenderEvents(globals.Stdout, events)
}

func main() {
	var c CLI
	ctx := kong.Parse(&c,
		kong.Name("statsctl"),
		kong.Description("Query a running vision telemetry server"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
	)

	globals := &Globals{
		Client: statsclient.New(c.Server, c.Timeout),
		Stdout: os.Stdout,
	}
	if err := ctx.Run(globals); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
