package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/mmynk/sharesplitter/internal/config"
	"github.com/mmynk/sharesplitter/internal/ledger"
)

type splitCmd struct {
	bill      string
	breakdown bool
	plain     bool
}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "show who owes what" }
func (*splitCmd) Usage() string {
	return `sharesplit split [-bill <id> | -breakdown] [-plain]

  Without flags, splits the sum of all bills across the participants.
  -bill splits a single bill; -breakdown splits every bill separately and
  totals each participant's share.
`
}

func (c *splitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.bill, "bill", "", "Split only this bill.")
	f.BoolVar(&c.breakdown, "breakdown", false, "Split each bill separately and total per participant.")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of a styled report.")
}

func (c *splitCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return withLedger(ctx, args, func(l *ledger.Ledger, cfg *config.Config) error {
		md, err := c.report(l, cfg.Currency)
		if err != nil {
			return err
		}
		if !c.plain {
			if md, err = renderMarkdown(md); err != nil {
				return err
			}
		}
		fmt.Print(md)
		return nil
	})
}

func (c *splitCmd) report(l *ledger.Ledger, currency string) (string, error) {
	switch {
	case c.bill != "":
		bill, err := l.Bill(c.bill)
		if err != nil {
			return "", err
		}
		split, err := l.BillSplit(c.bill)
		if err != nil {
			return "", err
		}
		return splitMarkdown(billTitle(bill), split, currency), nil
	case c.breakdown:
		return breakdownMarkdown(l.Breakdown(), currency), nil
	default:
		return splitMarkdown("All bills", l.AggregateSplit(), currency), nil
	}
}
