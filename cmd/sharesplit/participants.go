package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/mmynk/sharesplitter/internal/config"
	"github.com/mmynk/sharesplitter/internal/ledger"
	"github.com/mmynk/sharesplitter/internal/models"
)

type participantsCmd struct{}

func (*participantsCmd) Name() string             { return "participants" }
func (*participantsCmd) Synopsis() string         { return "list participants and their allocation modes" }
func (*participantsCmd) Usage() string            { return "sharesplit participants\n" }
func (*participantsCmd) SetFlags(_ *flag.FlagSet) {}

func (*participantsCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return withLedger(ctx, args, func(l *ledger.Ledger, cfg *config.Config) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMODE\tSHARE")
		for _, p := range l.Participants() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Mode.Kind, shareOf(p, cfg.Currency))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if warnings := l.Warnings(); warnings.PercentageOverflow {
			fmt.Fprintf(os.Stderr, "warning: %s (%.2f%%)\n", warnings.Messages()[0], l.FixedPercentageTotal())
		}
		return nil
	})
}

// shareOf describes the participant's fixed share, if any.
func shareOf(p models.Participant, currency string) string {
	switch p.Mode.Kind {
	case models.FixedPercentage:
		return fmt.Sprintf("%.2f%%", p.Mode.Value)
	case models.FixedDollar:
		return formatMoney(p.Mode.Value, currency)
	default:
		return "-"
	}
}

// participantFlags are shared by add-participant and update-participant.
// A zero percentage and dollar amount make the participant flexible.
type participantFlags struct {
	name    string
	percent float64
	dollars float64
}

func (p *participantFlags) set(f *flag.FlagSet) {
	f.StringVar(&p.name, "name", "", "Participant name (required).")
	f.Float64Var(&p.percent, "percent", 0, "Fixed percentage of every bill, 0-100.")
	f.Float64Var(&p.dollars, "dollars", 0, "Fixed amount of every bill.")
}

func (p *participantFlags) input() ledger.ParticipantInput {
	return ledger.ParticipantInput{Name: p.name, Percentage: &p.percent, DollarAmount: &p.dollars}
}

type addParticipantCmd struct {
	participantFlags
}

func (*addParticipantCmd) Name() string     { return "add-participant" }
func (*addParticipantCmd) Synopsis() string { return "add a participant" }
func (*addParticipantCmd) Usage() string {
	return `sharesplit add-participant -name <name> [-percent <pct> | -dollars <amount>]

  Without -percent or -dollars the participant is flexible and shares what
  remains of each bill equally with the other flexible participants.
`
}

func (c *addParticipantCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *addParticipantCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return withLedger(ctx, args, func(l *ledger.Ledger, _ *config.Config) error {
		p, err := l.AddParticipant(ctx, c.input())
		if err != nil {
			return err
		}
		fmt.Printf("added %s (%s) as %s\n", p.Name, p.ID, p.Mode)
		return nil
	})
}

type updateParticipantCmd struct {
	participantFlags
	id string
}

func (*updateParticipantCmd) Name() string     { return "update-participant" }
func (*updateParticipantCmd) Synopsis() string { return "replace a participant's name and allocation mode" }
func (*updateParticipantCmd) Usage() string {
	return "sharesplit update-participant -id <id> -name <name> [-percent <pct> | -dollars <amount>]\n"
}

func (c *updateParticipantCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Participant id (required).")
	c.set(f)
}

func (c *updateParticipantCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return withLedger(ctx, args, func(l *ledger.Ledger, _ *config.Config) error {
		p, err := l.UpdateParticipant(ctx, c.id, c.input())
		if err != nil {
			return err
		}
		fmt.Printf("updated %s (%s) to %s\n", p.Name, p.ID, p.Mode)
		return nil
	})
}

type removeParticipantCmd struct{}

func (*removeParticipantCmd) Name() string             { return "remove-participant" }
func (*removeParticipantCmd) Synopsis() string         { return "remove participants by id" }
func (*removeParticipantCmd) Usage() string            { return "sharesplit remove-participant <id>...\n" }
func (*removeParticipantCmd) SetFlags(_ *flag.FlagSet) {}

func (*removeParticipantCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return withLedger(ctx, args, func(l *ledger.Ledger, _ *config.Config) error {
		for _, id := range f.Args() {
			if err := l.RemoveParticipant(ctx, id); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", id)
		}
		return nil
	})
}
