// Command sharesplit manages a shared-expense ledger: participants with fixed
// or flexible shares, the bills they split, and a Connect server exposing both.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/mmynk/sharesplitter/internal/config"
	"github.com/mmynk/sharesplitter/pkg/logging"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	register(commander)

	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	logging.Setup(cfg.LogLevel)

	os.Exit(int(commander.Execute(context.Background(), cfg)))
}

// register adds every subcommand to c.
func register(c *subcommands.Commander) {
	c.Register(&serveCmd{}, "server")

	c.Register(&participantsCmd{}, "participants")
	c.Register(&addParticipantCmd{}, "participants")
	c.Register(&updateParticipantCmd{}, "participants")
	c.Register(&removeParticipantCmd{}, "participants")

	c.Register(&billsCmd{}, "bills")
	c.Register(&addBillCmd{}, "bills")
	c.Register(&removeBillCmd{}, "bills")

	c.Register(&splitCmd{}, "reports")
	c.Register(&clearCmd{}, "")
}
